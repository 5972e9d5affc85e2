package models

import (
	"time"

	"github.com/google/uuid"
)

// Baby is a child profile attached to an account. Kept for the account data
// model; it has no REST surface in this service.
type Baby struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string     `gorm:"size:100;not null" json:"name"`
	BirthDate *time.Time `json:"birth_date"`
	Gender    string     `gorm:"size:10" json:"gender"`
	CreatedAt time.Time  `json:"created_at"`
}
