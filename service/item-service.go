package service

import (
	"time"

	"epochrank/app_error"
	"epochrank/repository"

	"gorm.io/gorm"
)

const defaultResetThreshold = 10

type ItemService struct {
	db             *gorm.DB
	itemRepository *repository.ItemRepository
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{
		db:             db,
		itemRepository: repository.NewItemRepository(db),
	}
}

func (s *ItemService) GetAllItems() ([]*repository.Item, error) {
	return s.itemRepository.GetAllItems()
}

func (s *ItemService) GetItemById(itemId int) (*repository.Item, error) {
	return s.itemRepository.GetItemById(itemId)
}

// CreateItem adds a reward item and backfills one zero score row per
// existing player, mirroring what CreatePlayer does per item.
func (s *ItemService) CreateItem(name string, resetThreshold int, description string) (*repository.Item, error) {
	if name == "" {
		return nil, &app_error.ValidationError{Message: "name is required"}
	}
	if resetThreshold <= 0 {
		resetThreshold = defaultResetThreshold
	}

	var item *repository.Item
	err := s.db.Transaction(func(tx *gorm.DB) error {
		itemRepository := repository.NewItemRepository(tx)
		playerRepository := repository.NewPlayerRepository(tx)
		scoreRepository := repository.NewScoreRepository(tx)

		if _, err := itemRepository.GetItemByName(name); err == nil {
			return &app_error.DuplicateNameError{Entity: "item", Name: name}
		} else if !app_error.IsNotFound(err) {
			return err
		}

		item = &repository.Item{
			Name:           name,
			ResetThreshold: resetThreshold,
			Description:    description,
		}
		if _, err := itemRepository.SaveItem(item); err != nil {
			return err
		}

		players, err := playerRepository.GetAllPlayers()
		if err != nil {
			return err
		}
		for _, player := range players {
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
	return item, nil
}

func (s *ItemService) UpdateItem(itemId int, name string, resetThreshold int, description string) (*repository.Item, error) {
	if name == "" {
		return nil, &app_error.ValidationError{Message: "name is required"}
	}
	if resetThreshold <= 0 {
		resetThreshold = defaultResetThreshold
	}

	item, err := s.itemRepository.GetItemById(itemId)
	if err != nil {
		return nil, err
	}

	existing, err := s.itemRepository.GetItemByName(name)
	if err == nil && existing.Id != itemId {
		return nil, &app_error.DuplicateNameError{Entity: "item", Name: name}
	} else if err != nil && !app_error.IsNotFound(err) {
		return nil, err
	}

	item.Name = name
	item.ResetThreshold = resetThreshold
	item.Description = description
	return s.itemRepository.SaveItem(item)
}
