package service

import (
	"testing"

	"epochrank/app_error"
	"epochrank/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePlayerBackfillsScoresForAllItems(t *testing.T) {
	db := setupTestDB(t)
	for _, name := range []string{"COC", "Pena", "Condor", "Baú"} {
		createTestItem(t, db, name, 10)
	}

	player := createTestPlayer(t, db, "Player6")

	scores, err := repository.NewScoreRepository(db).GetScoresForPlayer(player.Id)
	require.NoError(t, err)
	assert.Len(t, scores, 4)
	for _, score := range scores {
		assert.Equal(t, 0, score.Total)
		assert.Equal(t, 0, score.WeeklyReputation)
		assert.Equal(t, 0, score.BossParticipations)
		assert.Equal(t, 0, score.CastleParticipations)
		assert.False(t, score.AlreadyReceived)
	}
}

func TestCreatePlayerWithoutItemsCreatesNoScores(t *testing.T) {
	db := setupTestDB(t)

	player := createTestPlayer(t, db, "Loner")

	count, err := repository.NewScoreRepository(db).CountForPlayer(player.Id)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreatePlayerDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	createTestPlayer(t, db, "Player1")

	_, err := NewPlayerService(db).CreatePlayer("Player1")

	var duplicate *app_error.DuplicateNameError
	require.ErrorAs(t, err, &duplicate)

	count, err := repository.NewPlayerRepository(db).Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCreatePlayerEmptyName(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewPlayerService(db).CreatePlayer("")

	var validation *app_error.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestUpdatePlayerDeactivates(t *testing.T) {
	db := setupTestDB(t)
	player := createTestPlayer(t, db, "Player1")

	updated, err := NewPlayerService(db).UpdatePlayer(player.Id, "Player1", false)
	require.NoError(t, err)
	assert.False(t, updated.Active)

	reloaded, err := repository.NewPlayerRepository(db).GetPlayerById(player.Id)
	require.NoError(t, err)
	assert.False(t, reloaded.Active)
}

func TestUpdatePlayerDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	createTestPlayer(t, db, "Player1")
	player := createTestPlayer(t, db, "Player2")

	_, err := NewPlayerService(db).UpdatePlayer(player.Id, "Player1", true)

	var duplicate *app_error.DuplicateNameError
	assert.ErrorAs(t, err, &duplicate)
}

func TestUpdatePlayerKeepingOwnNameIsAllowed(t *testing.T) {
	db := setupTestDB(t)
	player := createTestPlayer(t, db, "Player1")

	updated, err := NewPlayerService(db).UpdatePlayer(player.Id, "Player1", true)
	require.NoError(t, err)
	assert.Equal(t, "Player1", updated.Name)
}
