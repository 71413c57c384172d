package service

import (
	"testing"

	"epochrank/app_error"
	"epochrank/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	created := createTestAdmin(t, db)
	require.Nil(t, created.LastLoginAt)

	admin, token, err := NewAdminService(db).Login("admin", "admin123")
	require.NoError(t, err)
	require.NotNil(t, admin.LastLoginAt)
	assert.Equal(t, created.Id, admin.Id)

	parsed, err := auth.ParseToken(token)
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims := &auth.Claims{}
	claims.FromJWTClaims(parsed.Claims)
	assert.Equal(t, admin.Id, claims.AdminId)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	createTestAdmin(t, db)

	_, _, err := NewAdminService(db).Login("admin", "nope")

	assert.ErrorIs(t, err, app_error.ErrInvalidCredentials)
}

func TestLoginUnknownUsername(t *testing.T) {
	db := setupTestDB(t)

	_, _, err := NewAdminService(db).Login("ghost", "admin123")

	assert.ErrorIs(t, err, app_error.ErrInvalidCredentials)
}
