package service

import (
	"testing"

	"epochrank/app_error"
	"epochrank/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItemBackfillsScoresForAllPlayers(t *testing.T) {
	db := setupTestDB(t)
	playerOne := createTestPlayer(t, db, "Player1")
	playerTwo := createTestPlayer(t, db, "Player2")

	item := createTestItem(t, db, "COC", 10)

	scoreRepository := repository.NewScoreRepository(db)
	for _, player := range []*repository.Player{playerOne, playerTwo} {
		score, err := scoreRepository.GetScoreByPlayerAndItem(player.Id, item.Id)
		require.NoError(t, err)
		assert.Equal(t, 0, score.Total)
		assert.False(t, score.AlreadyReceived)
	}
}

func TestCreateItemDefaultThreshold(t *testing.T) {
	db := setupTestDB(t)

	item := createTestItem(t, db, "Pena", 0)

	assert.Equal(t, 10, item.ResetThreshold)
}

func TestCreateItemDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	createTestItem(t, db, "COC", 10)

	_, err := NewItemService(db).CreateItem("COC", 10, "")

	var duplicate *app_error.DuplicateNameError
	require.ErrorAs(t, err, &duplicate)

	count, err := repository.NewItemRepository(db).Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUpdateItem(t *testing.T) {
	db := setupTestDB(t)
	item := createTestItem(t, db, "COC", 10)

	updated, err := NewItemService(db).UpdateItem(item.Id, "Colar", 8, "Colar of Covenant")
	require.NoError(t, err)
	assert.Equal(t, "Colar", updated.Name)
	assert.Equal(t, 8, updated.ResetThreshold)
	assert.Equal(t, "Colar of Covenant", updated.Description)
}

func TestUpdateItemThresholdFallsBackToDefault(t *testing.T) {
	db := setupTestDB(t)
	item := createTestItem(t, db, "COC", 8)

	updated, err := NewItemService(db).UpdateItem(item.Id, "COC", 0, "")
	require.NoError(t, err)
	assert.Equal(t, 10, updated.ResetThreshold)
}

func TestUpdateItemDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	createTestItem(t, db, "COC", 10)
	item := createTestItem(t, db, "Pena", 10)

	_, err := NewItemService(db).UpdateItem(item.Id, "COC", 10, "")

	var duplicate *app_error.DuplicateNameError
	assert.ErrorAs(t, err, &duplicate)
}

func TestUpdateItemNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewItemService(db).UpdateItem(42, "COC", 10, "")

	assert.True(t, app_error.IsNotFound(err))
}
