package service

import (
	"time"

	"epochrank/app_error"
	"epochrank/repository"

	"gorm.io/gorm"
)

type PlayerService struct {
	db               *gorm.DB
	playerRepository *repository.PlayerRepository
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		db:               db,
		playerRepository: repository.NewPlayerRepository(db),
	}
}

func (s *PlayerService) GetAllPlayers() ([]*repository.Player, error) {
	return s.playerRepository.GetAllPlayers()
}

func (s *PlayerService) GetPlayerById(playerId int) (*repository.Player, error) {
	return s.playerRepository.GetPlayerById(playerId)
}

// CreatePlayer registers a new guild member and backfills one zero score
// row per existing item, so the (player, item) cross product stays
// complete. The stored total starts at 0 and only picks up the formula's
// bonus on the first recomputation.
func (s *PlayerService) CreatePlayer(name string) (*repository.Player, error) {
	if name == "" {
		return nil, &app_error.ValidationError{Message: "name is required"}
	}

	var player *repository.Player
	err := s.db.Transaction(func(tx *gorm.DB) error {
		playerRepository := repository.NewPlayerRepository(tx)
		itemRepository := repository.NewItemRepository(tx)
		scoreRepository := repository.NewScoreRepository(tx)

		if _, err := playerRepository.GetPlayerByName(name); err == nil {
			return &app_error.DuplicateNameError{Entity: "player", Name: name}
		} else if !app_error.IsNotFound(err) {
			return err
		}

		player = &repository.Player{
			Name:         name,
			Active:       true,
			RegisteredAt: time.Now().UTC(),
		}
		if _, err := playerRepository.SavePlayer(player); err != nil {
			return err
		}

		items, err := itemRepository.GetAllItems()
		if err != nil {
			return err
		}
		for _, item := range items {
			score := &repository.Score{
				PlayerId:  player.Id,
				ItemId:    item.Id,
				UpdatedAt: time.Now().UTC(),
			}
			if _, err := scoreRepository.SaveScore(score); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return player, nil
}

// UpdatePlayer renames a player and/or toggles the soft-active flag.
// Deactivation hides the player from rankings without deleting anything.
func (s *PlayerService) UpdatePlayer(playerId int, name string, active bool) (*repository.Player, error) {
	if name == "" {
		return nil, &app_error.ValidationError{Message: "name is required"}
	}

	player, err := s.playerRepository.GetPlayerById(playerId)
	if err != nil {
		return nil, err
	}

	existing, err := s.playerRepository.GetPlayerByName(name)
	if err == nil && existing.Id != playerId {
		return nil, &app_error.DuplicateNameError{Entity: "player", Name: name}
	} else if err != nil && !app_error.IsNotFound(err) {
		return nil, err
	}

	player.Name = name
	player.Active = active
	return s.playerRepository.SavePlayer(player)
}
