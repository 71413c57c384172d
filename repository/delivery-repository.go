package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Delivery is an append-only audit row; nothing ever updates or deletes one.
type Delivery struct {
	Id          int       `gorm:"primaryKey"`
	PlayerId    int       `gorm:"not null"`
	ItemId      int       `gorm:"not null"`
	AdminId     int       `gorm:"not null"`
	DeliveredAt time.Time `gorm:"not null"`

	Player *Player `gorm:"foreignKey:PlayerId"`
	Item   *Item   `gorm:"foreignKey:ItemId"`
	Admin  *Admin  `gorm:"foreignKey:AdminId"`
}

type DeliveryRepository struct {
	DB *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) *DeliveryRepository {
	return &DeliveryRepository{DB: db}
}

func (r *DeliveryRepository) CreateDelivery(delivery *Delivery) (*Delivery, error) {
	result := r.DB.Create(delivery)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create delivery: %v", result.Error)
	}
	return delivery, nil
}

func (r *DeliveryRepository) GetRecentDeliveries(limit int) ([]*Delivery, error) {
	var deliveries []*Delivery
	result := r.DB.
		Preload("Player").
		Preload("Item").
		Preload("Admin").
		Order("delivered_at DESC").
		Limit(limit).
		Find(&deliveries)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find recent deliveries: %v", result.Error)
	}
	return deliveries, nil
}

// FindDeliveries returns the audit log newest first, optionally narrowed to
// one item and/or one player.
func (r *DeliveryRepository) FindDeliveries(itemId *int, playerId *int) ([]*Delivery, error) {
	var deliveries []*Delivery
	query := r.DB.
		Preload("Player").
		Preload("Item").
		Preload("Admin")
	if itemId != nil {
		query = query.Where("item_id = ?", *itemId)
	}
	if playerId != nil {
		query = query.Where("player_id = ?", *playerId)
	}
	result := query.Order("delivered_at DESC").Find(&deliveries)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find deliveries: %v", result.Error)
	}
	return deliveries, nil
}

func (r *DeliveryRepository) CountForItem(itemId int) (int64, error) {
	var count int64
	result := r.DB.Model(&Delivery{}).Where("item_id = ?", itemId).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count deliveries: %v", result.Error)
	}
	return count, nil
}
