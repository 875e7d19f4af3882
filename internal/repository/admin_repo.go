package repository

import (
	"strings"

	"ramahomes/internal/models"

	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(a *models.AdminUser) error {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	return r.db.Create(a).Error
}

func (r *AdminRepository) GetByID(id uint) (*models.AdminUser, error) {
	var a models.AdminUser
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) GetByEmail(email string) (*models.AdminUser, error) {
	var a models.AdminUser
	err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}
