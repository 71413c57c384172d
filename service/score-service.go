package service

import (
	"sort"
	"strconv"
	"time"

	"epochrank/app_error"
	"epochrank/metrics"
	"epochrank/repository"
	"epochrank/scoring"
	"epochrank/utils"

	"gorm.io/gorm"
)

type ScoreField string

const (
	FieldWeeklyReputation     ScoreField = "weekly_reputation"
	FieldBossParticipations   ScoreField = "boss_participations"
	FieldCastleParticipations ScoreField = "castle_participations"
)

var scoreFields = []ScoreField{
	FieldWeeklyReputation,
	FieldBossParticipations,
	FieldCastleParticipations,
}

type ScoreService struct {
	db              *gorm.DB
	itemRepository  *repository.ItemRepository
	scoreRepository *repository.ScoreRepository
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{
		db:              db,
		itemRepository:  repository.NewItemRepository(db),
		scoreRepository: repository.NewScoreRepository(db),
	}
}

// RankPlayers returns the item's scores for active players, best total
// first, ties broken by player name.
func (s *ScoreService) RankPlayers(itemId int) ([]*repository.Score, error) {
	if _, err := s.itemRepository.GetItemById(itemId); err != nil {
		return nil, err
	}
	return s.scoreRepository.RankScoresForItem(itemId)
}

type BulkUpdateResult struct {
	Applied          int
	SkippedPlayerIds []int
}

// BulkUpdateScores sets one counter field for many players of one item in a
// single transaction. Unparseable and negative values, and players without
// a score row, are skipped and reported rather than failing the batch.
func (s *ScoreService) BulkUpdateScores(itemId int, field ScoreField, values map[int]string) (*BulkUpdateResult, error) {
	if !utils.Contains(scoreFields, field) {
		return nil, &app_error.ValidationError{Message: "unknown score field " + string(field)}
	}

	result := &BulkUpdateResult{SkippedPlayerIds: []int{}}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		itemRepository := repository.NewItemRepository(tx)
		scoreRepository := repository.NewScoreRepository(tx)

		if _, err := itemRepository.GetItemById(itemId); err != nil {
			return err
		}

		for playerId, raw := range values {
			value, err := strconv.Atoi(raw)
			if err != nil || value < 0 {
				result.SkippedPlayerIds = append(result.SkippedPlayerIds, playerId)
				continue
			}

			score, err := scoreRepository.GetScoreByPlayerAndItem(playerId, itemId)
			if err != nil {
				if app_error.IsNotFound(err) {
					result.SkippedPlayerIds = append(result.SkippedPlayerIds, playerId)
					continue
				}
				return err
			}

			switch field {
			case FieldWeeklyReputation:
				score.WeeklyReputation = value
			case FieldBossParticipations:
				score.BossParticipations = value
			case FieldCastleParticipations:
				score.CastleParticipations = value
			}
			score.Total = scoring.Total(score.WeeklyReputation, score.BossParticipations, score.CastleParticipations, score.AlreadyReceived)
			score.UpdatedAt = time.Now().UTC()
			if _, err := scoreRepository.SaveScore(score); err != nil {
				return err
			}
			result.Applied++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Ints(result.SkippedPlayerIds)
	metrics.ScoreFieldsUpdatedCounter.Add(float64(result.Applied))
	metrics.ScoreFieldsSkippedCounter.Add(float64(len(result.SkippedPlayerIds)))
	return result, nil
}
