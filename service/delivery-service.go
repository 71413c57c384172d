package service

import (
	"log"
	"time"

	"epochrank/app_error"
	"epochrank/metrics"
	"epochrank/repository"
	"epochrank/scoring"

	"gorm.io/gorm"
)

// ThresholdNotifier warns the guild when an item hits its reset threshold.
type ThresholdNotifier interface {
	NotifyThresholdReached(item *repository.Item) error
}

type DeliveryService struct {
	db                 *gorm.DB
	deliveryRepository *repository.DeliveryRepository
	notifier           ThresholdNotifier
}

func NewDeliveryService(db *gorm.DB, notifier ThresholdNotifier) *DeliveryService {
	return &DeliveryService{
		db:                 db,
		deliveryRepository: repository.NewDeliveryRepository(db),
		notifier:           notifier,
	}
}

// ConfirmDelivery records that an admin handed the item to the player. In
// one transaction it appends the audit row, resets the player's score for
// the item (when one exists; a missing row only skips the reset step) and
// bumps the item's delivery counter. The returned flag tells the caller
// whether the counter has reached the item's reset threshold; reaching it
// does not reset anything by itself.
func (s *DeliveryService) ConfirmDelivery(playerId int, itemId int, adminId int) (bool, error) {
	var item *repository.Item
	err := s.db.Transaction(func(tx *gorm.DB) error {
		playerRepository := repository.NewPlayerRepository(tx)
		itemRepository := repository.NewItemRepository(tx)
		scoreRepository := repository.NewScoreRepository(tx)
		deliveryRepository := repository.NewDeliveryRepository(tx)

		if _, err := playerRepository.GetPlayerById(playerId); err != nil {
			return err
		}
		var err error
		item, err = itemRepository.GetItemById(itemId)
		if err != nil {
			return err
		}

		delivery := &repository.Delivery{
			PlayerId:    playerId,
			ItemId:      itemId,
			AdminId:     adminId,
			DeliveredAt: time.Now().UTC(),
		}
		if _, err := deliveryRepository.CreateDelivery(delivery); err != nil {
			return err
		}

		score, err := scoreRepository.GetScoreByPlayerAndItem(playerId, itemId)
		if err == nil {
			score.AlreadyReceived = true
			score.WeeklyReputation = 0
			score.BossParticipations = 0
			score.CastleParticipations = 0
			score.Total = scoring.Total(0, 0, 0, true)
			score.UpdatedAt = time.Now().UTC()
			if _, err := scoreRepository.SaveScore(score); err != nil {
				return err
			}
		} else if !app_error.IsNotFound(err) {
			return err
		}

		item.DeliveryCount++
		_, err = itemRepository.SaveItem(item)
		return err
	})
	if err != nil {
		return false, err
	}

	metrics.DeliveriesConfirmedCounter.Inc()
	thresholdReached := item.DeliveryCount >= item.ResetThreshold
	if thresholdReached {
		metrics.ThresholdReachedCounter.Inc()
		if s.notifier != nil {
			// notification failures must not fail the delivery
			if err := s.notifier.NotifyThresholdReached(item); err != nil {
				log.Printf("threshold notification for item %d failed: %v", item.Id, err)
			}
		}
	}
	return thresholdReached, nil
}

// ResetItem clears the already-received flags of every score belonging to
// the item, recomputes their totals and zeroes the delivery counter.
// Running it twice without intervening deliveries is a no-op the second
// time.
func (s *DeliveryService) ResetItem(itemId int) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		itemRepository := repository.NewItemRepository(tx)
		scoreRepository := repository.NewScoreRepository(tx)

		item, err := itemRepository.GetItemById(itemId)
		if err != nil {
			return err
		}

		scores, err := scoreRepository.GetScoresForItem(itemId)
		if err != nil {
			return err
		}
		for _, score := range scores {
			score.AlreadyReceived = false
			score.Total = scoring.Total(score.WeeklyReputation, score.BossParticipations, score.CastleParticipations, false)
			score.UpdatedAt = time.Now().UTC()
			if _, err := scoreRepository.SaveScore(score); err != nil {
				return err
			}
		}

		item.DeliveryCount = 0
		_, err = itemRepository.SaveItem(item)
		return err
	})
	if err != nil {
		return err
	}
	metrics.ItemResetCounter.Inc()
	return nil
}

func (s *DeliveryService) GetHistory(itemId *int, playerId *int) ([]*repository.Delivery, error) {
	return s.deliveryRepository.FindDeliveries(itemId, playerId)
}
