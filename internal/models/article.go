package models

import (
	"time"

	"github.com/google/uuid"
)

// Article is a parenting article bookmarked/authored by a user. Kept for the
// account data model; it has no REST surface in this service.
type Article struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
