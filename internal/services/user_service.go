package services

import (
	"errors"
	"strings"

	"github.com/riskspace/emopop/internal/models"
	"gorm.io/gorm"
)

var ErrMissingName = errors.New("name is required")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// FindOrCreate looks a user up by display name, creating the row on first
// sign-in. Names are matched after trimming only; case is preserved.
func (s *UserService) FindOrCreate(name string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}
	var user models.User
	if err := s.db.Where("name = ?", name).FirstOrCreate(&user, models.User{Name: name}).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// HasDataToday reports whether the user already has a daily log for the
// current server date.
func (s *UserService) HasDataToday(userID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.DailyLog{}).
		Where("user_id = ? AND date = ?", userID, today()).
		Count(&count).Error
	return count > 0, err
}
