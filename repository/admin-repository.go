package repository

import (
	"errors"
	"fmt"
	"time"

	"epochrank/app_error"

	"gorm.io/gorm"
)

type Admin struct {
	Id           int        `gorm:"primaryKey"`
	Username     string     `gorm:"not null;uniqueIndex"`
	PasswordHash string     `gorm:"not null"`
	DisplayName  string     `gorm:"not null"`
	LastLoginAt  *time.Time `gorm:"null"`
}

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) GetAdminById(adminId int) (*Admin, error) {
	var admin Admin
	result := r.DB.First(&admin, adminId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, app_error.NewNotFoundError("admin", adminId)
		}
		return nil, fmt.Errorf("failed to find admin: %v", result.Error)
	}
	return &admin, nil
}

func (r *AdminRepository) GetAdminByUsername(username string) (*Admin, error) {
	var admin Admin
	result := r.DB.First(&admin, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, app_error.NewNotFoundError("admin", username)
		}
		return nil, fmt.Errorf("failed to find admin: %v", result.Error)
	}
	return &admin, nil
}

func (r *AdminRepository) SaveAdmin(admin *Admin) (*Admin, error) {
	result := r.DB.Save(admin)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save admin: %v", result.Error)
	}
	return admin, nil
}

func (r *AdminRepository) Count() (int64, error) {
	var count int64
	result := r.DB.Model(&Admin{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count admins: %v", result.Error)
	}
	return count, nil
}
