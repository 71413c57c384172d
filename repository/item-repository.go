package repository

import (
	"errors"
	"fmt"

	"epochrank/app_error"

	"gorm.io/gorm"
)

type Item struct {
	Id             int    `gorm:"primaryKey"`
	Name           string `gorm:"not null;uniqueIndex"`
	DeliveryCount  int    `gorm:"not null;default:0"`
	ResetThreshold int    `gorm:"not null;default:10"`
	Description    string `gorm:"null"`

	Scores     []*Score    `gorm:"foreignKey:ItemId;constraint:OnDelete:CASCADE"`
	Deliveries []*Delivery `gorm:"foreignKey:ItemId;constraint:OnDelete:CASCADE"`
}

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) GetAllItems() ([]*Item, error) {
	var items []*Item
	result := r.DB.Order("id ASC").Find(&items)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find items: %v", result.Error)
	}
	return items, nil
}

func (r *ItemRepository) GetItemById(itemId int) (*Item, error) {
	var item Item
	result := r.DB.First(&item, itemId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, app_error.NewNotFoundError("item", itemId)
		}
		return nil, fmt.Errorf("failed to find item: %v", result.Error)
	}
	return &item, nil
}

func (r *ItemRepository) GetItemByName(name string) (*Item, error) {
	var item Item
	result := r.DB.First(&item, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, app_error.NewNotFoundError("item", name)
		}
		return nil, fmt.Errorf("failed to find item: %v", result.Error)
	}
	return &item, nil
}

func (r *ItemRepository) SaveItem(item *Item) (*Item, error) {
	result := r.DB.Save(item)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save item: %v", result.Error)
	}
	return item, nil
}

func (r *ItemRepository) Count() (int64, error) {
	var count int64
	result := r.DB.Model(&Item{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count items: %v", result.Error)
	}
	return count, nil
}
