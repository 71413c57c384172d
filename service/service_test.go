package service

import (
	"testing"

	"epochrank/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// one in-memory sqlite database per connection, so pin the pool to one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&repository.Admin{},
		&repository.Player{},
		&repository.Item{},
		&repository.Score{},
		&repository.Delivery{},
	))
	return db
}

func createTestPlayer(t *testing.T, db *gorm.DB, name string) *repository.Player {
	t.Helper()
	player, err := NewPlayerService(db).CreatePlayer(name)
	require.NoError(t, err)
	return player
}

func createTestItem(t *testing.T, db *gorm.DB, name string, resetThreshold int) *repository.Item {
	t.Helper()
	item, err := NewItemService(db).CreateItem(name, resetThreshold, "")
	require.NoError(t, err)
	return item
}
