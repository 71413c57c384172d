package service

import (
	"time"

	"epochrank/app_error"
	"epochrank/auth"
	"epochrank/repository"

	"gorm.io/gorm"
)

type AdminService struct {
	adminRepository *repository.AdminRepository
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{
		adminRepository: repository.NewAdminRepository(db),
	}
}

// Login checks the credentials, stamps the admin's last login and mints a
// session token. Unknown usernames and wrong passwords are reported the
// same way.
func (s *AdminService) Login(username string, password string) (*repository.Admin, string, error) {
	admin, err := s.adminRepository.GetAdminByUsername(username)
	if err != nil {
		if app_error.IsNotFound(err) {
			return nil, "", app_error.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.CheckPassword(admin.PasswordHash, password) {
		return nil, "", app_error.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	admin.LastLoginAt = &now
	if _, err := s.adminRepository.SaveAdmin(admin); err != nil {
		return nil, "", err
	}

	token, err := auth.CreateToken(admin)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

func (s *AdminService) GetAdminById(adminId int) (*repository.Admin, error) {
	return s.adminRepository.GetAdminById(adminId)
}
