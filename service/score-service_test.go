package service

import (
	"strconv"
	"testing"

	"epochrank/app_error"
	"epochrank/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setWeeklyReputation(t *testing.T, db *gorm.DB, itemId int, playerId int, value int) {
	t.Helper()
	result, err := NewScoreService(db).BulkUpdateScores(itemId, FieldWeeklyReputation, map[int]string{
		playerId: strconv.Itoa(value),
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Applied)
}

func TestRankPlayersOrdersByTotalThenName(t *testing.T) {
	db := setupTestDB(t)
	item := createTestItem(t, db, "COC", 10)
	bravo := createTestPlayer(t, db, "Bravo")
	alpha := createTestPlayer(t, db, "Alpha")
	zed := createTestPlayer(t, db, "Zed")

	setWeeklyReputation(t, db, item.Id, bravo.Id, 10)
	setWeeklyReputation(t, db, item.Id, alpha.Id, 10)
	setWeeklyReputation(t, db, item.Id, zed.Id, 20)

	scores, err := NewScoreService(db).RankPlayers(item.Id)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	// Zed leads, then the tie between Alpha and Bravo breaks on name
	assert.Equal(t, "Zed", scores[0].Player.Name)
	assert.Equal(t, "Alpha", scores[1].Player.Name)
	assert.Equal(t, "Bravo", scores[2].Player.Name)
	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, scores[i-1].Total, scores[i].Total)
	}
}

func TestRankPlayersExcludesInactive(t *testing.T) {
	db := setupTestDB(t)
	item := createTestItem(t, db, "COC", 10)
	active := createTestPlayer(t, db, "Active")
	inactive := createTestPlayer(t, db, "Inactive")

	_, err := NewPlayerService(db).UpdatePlayer(inactive.Id, "Inactive", false)
	require.NoError(t, err)

	scores, err := NewScoreService(db).RankPlayers(item.Id)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, active.Id, scores[0].PlayerId)
}

func TestRankPlayersUnknownItem(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewScoreService(db).RankPlayers(42)

	assert.True(t, app_error.IsNotFound(err))
}

func TestBulkUpdateRecomputesTotals(t *testing.T) {
	db := setupTestDB(t)
	item := createTestItem(t, db, "COC", 10)
	player := createTestPlayer(t, db, "Player1")

	setWeeklyReputation(t, db, item.Id, player.Id, 12)

	score, err := repository.NewScoreRepository(db).GetScoreByPlayerAndItem(player.Id, item.Id)
	require.NoError(t, err)
	assert.Equal(t, 12, score.WeeklyReputation)
	assert.Equal(t, 74, score.Total) // 12*2 + 50 bonus
}

func TestBulkUpdateSkipsBadValues(t *testing.T) {
	db := setupTestDB(t)
	item := createTestItem(t, db, "COC", 10)
	good := createTestPlayer(t, db, "Good")
	garbled := createTestPlayer(t, db, "Garbled")
	negative := createTestPlayer(t, db, "Negative")

	result, err := NewScoreService(db).BulkUpdateScores(item.Id, FieldBossParticipations, map[int]string{
		good.Id:     "3",
		garbled.Id:  "many",
		negative.Id: "-1",
		9999:        "5",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Applied)
	assert.ElementsMatch(t, []int{garbled.Id, negative.Id, 9999}, result.SkippedPlayerIds)

	score, err := repository.NewScoreRepository(db).GetScoreByPlayerAndItem(good.Id, item.Id)
	require.NoError(t, err)
	assert.Equal(t, 3, score.BossParticipations)
	assert.Equal(t, 59, score.Total) // 3*3 + 50 bonus

	untouched, err := repository.NewScoreRepository(db).GetScoreByPlayerAndItem(garbled.Id, item.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, untouched.BossParticipations)
}

func TestBulkUpdateUnknownField(t *testing.T) {
	db := setupTestDB(t)
	item := createTestItem(t, db, "COC", 10)

	_, err := NewScoreService(db).BulkUpdateScores(item.Id, ScoreField("charisma"), map[int]string{})

	var validation *app_error.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestBulkUpdateUnknownItem(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewScoreService(db).BulkUpdateScores(42, FieldWeeklyReputation, map[int]string{})

	assert.True(t, app_error.IsNotFound(err))
}
