package service

import (
	"epochrank/repository"
	"epochrank/utils"

	"gorm.io/gorm"
)

type DashboardStats struct {
	ActivePlayers    int64
	TotalItems       int64
	RecentDeliveries []*repository.Delivery
	Items            []*repository.Item
	ItemsAtThreshold []*repository.Item
}

type DashboardService struct {
	playerRepository   *repository.PlayerRepository
	itemRepository     *repository.ItemRepository
	deliveryRepository *repository.DeliveryRepository
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{
		playerRepository:   repository.NewPlayerRepository(db),
		itemRepository:     repository.NewItemRepository(db),
		deliveryRepository: repository.NewDeliveryRepository(db),
	}
}

func (s *DashboardService) GetStats() (*DashboardStats, error) {
	activePlayers, err := s.playerRepository.CountActive()
	if err != nil {
		return nil, err
	}
	totalItems, err := s.itemRepository.Count()
	if err != nil {
		return nil, err
	}
	recent, err := s.deliveryRepository.GetRecentDeliveries(5)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepository.GetAllItems()
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		ActivePlayers:    activePlayers,
		TotalItems:       totalItems,
		RecentDeliveries: recent,
		Items:            items,
		ItemsAtThreshold: utils.Filter(items, func(item *repository.Item) bool {
			return item.DeliveryCount >= item.ResetThreshold
		}),
	}, nil
}
