package models

import (
	"time"

	"github.com/google/uuid"
)

// Gallery pairs a story's base illustration with the user's colored overlay.
// StoryTitle and ColorImageURL are copied from the story when the row is
// first created, so the gallery shows a snapshot rather than a live join.
// At most one row exists per (story, user).
type Gallery struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	StoryID          uint      `gorm:"not null;uniqueIndex:idx_gallery_story_user" json:"story_id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_gallery_story_user" json:"user_id"`
	StoryTitle       string    `gorm:"size:255" json:"story_title"`
	ColorImageURL    string    `gorm:"type:text" json:"color_image_url"`
	ColoringImageURL *string   `gorm:"type:text" json:"coloring_image_url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
