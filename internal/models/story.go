package models

import (
	"time"

	"github.com/google/uuid"
)

// Story is a generated fairytale. Image holds the base illustration URL and
// is nullable; stories without an image never appear in gallery views.
type Story struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Image     *string   `gorm:"type:text" json:"image"`
	VoiceURL  *string   `gorm:"type:text" json:"voice_url"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
