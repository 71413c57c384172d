package repository

import (
	"errors"
	"fmt"
	"time"

	"epochrank/app_error"

	"gorm.io/gorm"
)

type Player struct {
	Id           int       `gorm:"primaryKey"`
	Name         string    `gorm:"not null;uniqueIndex"`
	Active       bool      `gorm:"not null;default:true"`
	RegisteredAt time.Time `gorm:"not null"`

	Scores     []*Score    `gorm:"foreignKey:PlayerId;constraint:OnDelete:CASCADE"`
	Deliveries []*Delivery `gorm:"foreignKey:PlayerId;constraint:OnDelete:CASCADE"`
}

type PlayerRepository struct {
	DB *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{DB: db}
}

func (r *PlayerRepository) GetAllPlayers() ([]*Player, error) {
	var players []*Player
	result := r.DB.Order("name ASC").Find(&players)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find players: %v", result.Error)
	}
	return players, nil
}

func (r *PlayerRepository) GetPlayerById(playerId int) (*Player, error) {
	var player Player
	result := r.DB.First(&player, playerId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, app_error.NewNotFoundError("player", playerId)
		}
		return nil, fmt.Errorf("failed to find player: %v", result.Error)
	}
	return &player, nil
}

func (r *PlayerRepository) GetPlayerByName(name string) (*Player, error) {
	var player Player
	result := r.DB.First(&player, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, app_error.NewNotFoundError("player", name)
		}
		return nil, fmt.Errorf("failed to find player: %v", result.Error)
	}
	return &player, nil
}

func (r *PlayerRepository) SavePlayer(player *Player) (*Player, error) {
	result := r.DB.Save(player)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save player: %v", result.Error)
	}
	return player, nil
}

func (r *PlayerRepository) CountActive() (int64, error) {
	var count int64
	result := r.DB.Model(&Player{}).Where("active = ?", true).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count players: %v", result.Error)
	}
	return count, nil
}

func (r *PlayerRepository) Count() (int64, error) {
	var count int64
	result := r.DB.Model(&Player{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count players: %v", result.Error)
	}
	return count, nil
}
