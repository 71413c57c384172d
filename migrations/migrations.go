// Package migrations seeds an empty database with the fixed starter data
// the guild expects on first startup. Schema creation itself happens via
// AutoMigrate in config.InitDB.
package migrations

import (
	"time"

	"epochrank/auth"
	"epochrank/config"
	"epochrank/repository"
	"epochrank/scoring"

	"gorm.io/gorm"
)

func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := seedAdmin(db, cfg); err != nil {
		return err
	}
	if err := seedItems(db); err != nil {
		return err
	}
	return seedPlayers(db)
}

func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	adminRepository := repository.NewAdminRepository(db)
	count, err := adminRepository.Count()
	if err != nil || count > 0 {
		return err
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	_, err = adminRepository.SaveAdmin(&repository.Admin{
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
		DisplayName:  "Administrator",
	})
	return err
}

func seedItems(db *gorm.DB) error {
	itemRepository := repository.NewItemRepository(db)
	count, err := itemRepository.Count()
	if err != nil || count > 0 {
		return err
	}

	starterItems := []*repository.Item{
		{Name: "COC", ResetThreshold: 10, Description: "Colar of Covenant"},
		{Name: "Pena", ResetThreshold: 10, Description: "Pena da Fênix"},
		{Name: "Condor", ResetThreshold: 10, Description: "Condor Flame"},
		{Name: "Baú", ResetThreshold: 8, Description: "Baú do Tesouro"},
	}
	for _, item := range starterItems {
		if _, err := itemRepository.SaveItem(item); err != nil {
			return err
		}
	}
	return nil
}

func seedPlayers(db *gorm.DB) error {
	playerRepository := repository.NewPlayerRepository(db)
	itemRepository := repository.NewItemRepository(db)
	scoreRepository := repository.NewScoreRepository(db)

	count, err := playerRepository.Count()
	if err != nil || count > 0 {
		return err
	}

	names := []string{"Player1", "Player2", "Player3", "Player4", "Player5"}
	for _, name := range names {
		player := &repository.Player{
			Name:         name,
			Active:       true,
			RegisteredAt: time.Now().UTC(),
		}
		if _, err := playerRepository.SavePlayer(player); err != nil {
			return err
		}
	}

	players, err := playerRepository.GetAllPlayers()
	if err != nil {
		return err
	}
	items, err := itemRepository.GetAllItems()
	if err != nil {
		return err
	}

	// deterministic sample counters so a fresh install has something to show
	for _, player := range players {
		for _, item := range items {
			score := &repository.Score{
				PlayerId:             player.Id,
				ItemId:               item.Id,
				WeeklyReputation:     5 + player.Id%5,
				BossParticipations:   3 + player.Id%4,
				CastleParticipations: 2 + player.Id%3,
				UpdatedAt:            time.Now().UTC(),
			}
			score.Total = scoring.Total(score.WeeklyReputation, score.BossParticipations, score.CastleParticipations, score.AlreadyReceived)
			if _, err := scoreRepository.SaveScore(score); err != nil {
				return err
			}
		}
	}
	return nil
}
