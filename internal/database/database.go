package database

import (
	"errors"

	"ramahomes/config"
	"ramahomes/internal/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AdminUser{},
		&models.Property{},
		&models.Media{},
	)
}

const bcryptCost = 12

// EnsureDefaultAdmin creates the configured admin account when no
// account exists for that email. Returns the existing or created admin.
func EnsureDefaultAdmin(db *gorm.DB, cfg *config.AdminConfig) (*models.AdminUser, error) {
	var existing models.AdminUser
	err := db.Where("email = ?", cfg.Email).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	admin := &models.AdminUser{
		Name:         cfg.Name,
		Email:        cfg.Email,
		PasswordHash: string(hash),
	}
	if err := db.Create(admin).Error; err != nil {
		return nil, err
	}
	logrus.WithField("email", cfg.Email).Info("default admin created")
	return admin, nil
}
