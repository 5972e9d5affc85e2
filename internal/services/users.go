package services

import (
	"errors"

	"github.com/ansdud923/fairytale-app/internal/models"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// findUserByUsername resolves the caller's identity. Every domain service
// starts here; an unknown username maps to a NotFound at the REST boundary.
func findUserByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
