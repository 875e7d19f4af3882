package service

import (
	"errors"
	"strings"

	"ramahomes/config"
	"ramahomes/internal/auth"
	"ramahomes/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCreds = errors.New("invalid email or password")

// AdminStore is the admin lookup surface used for login and token resolution.
type AdminStore interface {
	GetByID(id uint) (*models.AdminUser, error)
	GetByEmail(email string) (*models.AdminUser, error)
}

type AuthService struct {
	cfg   *config.Config
	store AdminStore
}

func NewAuthService(cfg *config.Config, store AdminStore) *AuthService {
	return &AuthService{cfg: cfg, store: store}
}

// Login checks credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*models.AdminUser, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.store.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCreds
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCreds
	}

	token, err := auth.GenerateToken(&s.cfg.JWT, admin.ID)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}
