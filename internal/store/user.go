package store

import (
	"errors"

	"keyblogger/internal/models"
	"keyblogger/internal/utils"

	"gorm.io/gorm"
)

// ErrBadCredentials is returned on login with an unknown username or a
// wrong password, deliberately without saying which.
var ErrBadCredentials = errors.New("invalid username or password")

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Register creates a user with a bcrypt-hashed password.
func (s *UserStore) Register(username, password string) (*models.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{Username: username, Password: hash}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return &user, nil
}

// Get returns a user with their blogs.
func (s *UserStore) Get(username string) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Blogs").Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate checks a username/password pair and returns the user.
func (s *UserStore) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrBadCredentials
	}
	return &user, nil
}
