package repository

import (
	"errors"
	"fmt"
	"time"

	"epochrank/app_error"

	"gorm.io/gorm"
)

// Score is the one-per-(player, item) record the ranking is built from.
type Score struct {
	Id                   int       `gorm:"primaryKey"`
	PlayerId             int       `gorm:"not null;uniqueIndex:idx_scores_player_item"`
	ItemId               int       `gorm:"not null;uniqueIndex:idx_scores_player_item"`
	WeeklyReputation     int       `gorm:"not null;default:0"`
	BossParticipations   int       `gorm:"not null;default:0"`
	CastleParticipations int       `gorm:"not null;default:0"`
	AlreadyReceived      bool      `gorm:"not null;default:false"`
	Total                int       `gorm:"not null;default:0"`
	UpdatedAt            time.Time `gorm:"not null"`

	Player *Player `gorm:"foreignKey:PlayerId"`
	Item   *Item   `gorm:"foreignKey:ItemId"`
}

type ScoreRepository struct {
	DB *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{DB: db}
}

func (r *ScoreRepository) GetScoreByPlayerAndItem(playerId int, itemId int) (*Score, error) {
	var score Score
	result := r.DB.First(&score, "player_id = ? AND item_id = ?", playerId, itemId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, app_error.NewNotFoundError("score", fmt.Sprintf("player=%d item=%d", playerId, itemId))
		}
		return nil, fmt.Errorf("failed to find score: %v", result.Error)
	}
	return &score, nil
}

func (r *ScoreRepository) GetScoresForItem(itemId int) ([]*Score, error) {
	var scores []*Score
	result := r.DB.Where("item_id = ?", itemId).Find(&scores)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find scores for item: %v", result.Error)
	}
	return scores, nil
}

func (r *ScoreRepository) GetScoresForPlayer(playerId int) ([]*Score, error) {
	var scores []*Score
	result := r.DB.Where("player_id = ?", playerId).Find(&scores)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find scores for player: %v", result.Error)
	}
	return scores, nil
}

// RankScoresForItem returns the scores of active players for one item,
// best first. Ties on total are broken by player name ascending so equal
// totals always render in the same order.
func (r *ScoreRepository) RankScoresForItem(itemId int) ([]*Score, error) {
	var scores []*Score
	result := r.DB.
		Joins("JOIN players ON players.id = scores.player_id").
		Where("players.active = ? AND scores.item_id = ?", true, itemId).
		Order("scores.total DESC, players.name ASC").
		Preload("Player").
		Find(&scores)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to rank scores for item: %v", result.Error)
	}
	return scores, nil
}

func (r *ScoreRepository) SaveScore(score *Score) (*Score, error) {
	result := r.DB.Save(score)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save score: %v", result.Error)
	}
	return score, nil
}

func (r *ScoreRepository) CountForPlayer(playerId int) (int64, error) {
	var count int64
	result := r.DB.Model(&Score{}).Where("player_id = ?", playerId).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count scores: %v", result.Error)
	}
	return count, nil
}
