package service

import (
	"testing"

	"epochrank/app_error"
	"epochrank/auth"
	"epochrank/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNotifier struct {
	notified []*repository.Item
}

func (n *fakeNotifier) NotifyThresholdReached(item *repository.Item) error {
	n.notified = append(n.notified, item)
	return nil
}

func createTestAdmin(t *testing.T, db *gorm.DB) *repository.Admin {
	t.Helper()
	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)
	admin, err := repository.NewAdminRepository(db).SaveAdmin(&repository.Admin{
		Username:     "admin",
		PasswordHash: hash,
		DisplayName:  "Administrator",
	})
	require.NoError(t, err)
	return admin
}

func TestConfirmDelivery(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestAdmin(t, db)
	item := createTestItem(t, db, "COC", 10)
	player := createTestPlayer(t, db, "Player1")
	setWeeklyReputation(t, db, item.Id, player.Id, 10)

	thresholdReached, err := NewDeliveryService(db, nil).ConfirmDelivery(player.Id, item.Id, admin.Id)
	require.NoError(t, err)
	assert.False(t, thresholdReached)

	// exactly one audit row
	count, err := repository.NewDeliveryRepository(db).CountForItem(item.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// score wiped, flag set, total recomputed without the bonus
	score, err := repository.NewScoreRepository(db).GetScoreByPlayerAndItem(player.Id, item.Id)
	require.NoError(t, err)
	assert.True(t, score.AlreadyReceived)
	assert.Equal(t, 0, score.WeeklyReputation)
	assert.Equal(t, 0, score.BossParticipations)
	assert.Equal(t, 0, score.CastleParticipations)
	assert.Equal(t, 0, score.Total)

	reloaded, err := repository.NewItemRepository(db).GetItemById(item.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.DeliveryCount)
}

func TestConfirmDeliveryThresholdSignal(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestAdmin(t, db)
	item := createTestItem(t, db, "COC", 2)
	playerOne := createTestPlayer(t, db, "Player1")
	playerTwo := createTestPlayer(t, db, "Player2")

	notifier := &fakeNotifier{}
	deliveryService := NewDeliveryService(db, notifier)

	thresholdReached, err := deliveryService.ConfirmDelivery(playerOne.Id, item.Id, admin.Id)
	require.NoError(t, err)
	assert.False(t, thresholdReached)
	assert.Empty(t, notifier.notified)

	thresholdReached, err = deliveryService.ConfirmDelivery(playerTwo.Id, item.Id, admin.Id)
	require.NoError(t, err)
	assert.True(t, thresholdReached)
	require.Len(t, notifier.notified, 1)
	assert.Equal(t, item.Id, notifier.notified[0].Id)
}

func TestConfirmDeliveryUnknownPlayer(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestAdmin(t, db)
	item := createTestItem(t, db, "COC", 10)

	_, err := NewDeliveryService(db, nil).ConfirmDelivery(42, item.Id, admin.Id)
	assert.True(t, app_error.IsNotFound(err))

	count, err := repository.NewDeliveryRepository(db).CountForItem(item.Id)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestConfirmDeliveryUnknownItem(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestAdmin(t, db)
	player := createTestPlayer(t, db, "Player1")

	_, err := NewDeliveryService(db, nil).ConfirmDelivery(player.Id, 42, admin.Id)
	assert.True(t, app_error.IsNotFound(err))
}

func TestConfirmDeliveryWithoutScoreRow(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestAdmin(t, db)
	item := createTestItem(t, db, "COC", 10)
	player := createTestPlayer(t, db, "Player1")

	// drop the score row; the delivery must still be recorded
	require.NoError(t, db.Where("player_id = ? AND item_id = ?", player.Id, item.Id).Delete(&repository.Score{}).Error)

	_, err := NewDeliveryService(db, nil).ConfirmDelivery(player.Id, item.Id, admin.Id)
	require.NoError(t, err)

	count, err := repository.NewDeliveryRepository(db).CountForItem(item.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	reloaded, err := repository.NewItemRepository(db).GetItemById(item.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.DeliveryCount)
}

func TestResetItemIdempotent(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestAdmin(t, db)
	item := createTestItem(t, db, "COC", 10)
	player := createTestPlayer(t, db, "Player1")
	setWeeklyReputation(t, db, item.Id, player.Id, 10)

	deliveryService := NewDeliveryService(db, nil)
	_, err := deliveryService.ConfirmDelivery(player.Id, item.Id, admin.Id)
	require.NoError(t, err)

	snapshot := func() (*repository.Score, *repository.Item) {
		score, err := repository.NewScoreRepository(db).GetScoreByPlayerAndItem(player.Id, item.Id)
		require.NoError(t, err)
		reloaded, err := repository.NewItemRepository(db).GetItemById(item.Id)
		require.NoError(t, err)
		return score, reloaded
	}

	require.NoError(t, deliveryService.ResetItem(item.Id))
	scoreAfterFirst, itemAfterFirst := snapshot()
	assert.False(t, scoreAfterFirst.AlreadyReceived)
	assert.Equal(t, 50, scoreAfterFirst.Total) // zeroed counters, bonus restored
	assert.Equal(t, 0, itemAfterFirst.DeliveryCount)

	require.NoError(t, deliveryService.ResetItem(item.Id))
	scoreAfterSecond, itemAfterSecond := snapshot()
	assert.Equal(t, scoreAfterFirst.AlreadyReceived, scoreAfterSecond.AlreadyReceived)
	assert.Equal(t, scoreAfterFirst.Total, scoreAfterSecond.Total)
	assert.Equal(t, scoreAfterFirst.WeeklyReputation, scoreAfterSecond.WeeklyReputation)
	assert.Equal(t, itemAfterFirst.DeliveryCount, itemAfterSecond.DeliveryCount)
}

func TestResetItemUnknownItem(t *testing.T) {
	db := setupTestDB(t)

	err := NewDeliveryService(db, nil).ResetItem(42)
	assert.True(t, app_error.IsNotFound(err))
}

func TestGetHistoryFilters(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestAdmin(t, db)
	itemOne := createTestItem(t, db, "COC", 10)
	itemTwo := createTestItem(t, db, "Pena", 10)
	player := createTestPlayer(t, db, "Player1")

	deliveryService := NewDeliveryService(db, nil)
	_, err := deliveryService.ConfirmDelivery(player.Id, itemOne.Id, admin.Id)
	require.NoError(t, err)
	_, err = deliveryService.ConfirmDelivery(player.Id, itemTwo.Id, admin.Id)
	require.NoError(t, err)

	all, err := deliveryService.GetHistory(nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := deliveryService.GetHistory(&itemOne.Id, nil)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, itemOne.Id, filtered[0].ItemId)
	assert.Equal(t, "Player1", filtered[0].Player.Name)
	assert.Equal(t, "Administrator", filtered[0].Admin.DisplayName)
}
