package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ShareSourceStory   = "story"
	ShareSourceGallery = "gallery"
)

// SharePost is a public post materialized from a story or a gallery entry.
// MediaURL is fixed at share time; LikeCount mirrors the number of Like rows
// pointing at the post.
type SharePost struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	SourceType string    `gorm:"size:20;not null" json:"source_type"`
	StoryID    *uint     `gorm:"index" json:"story_id"`
	GalleryID  *uint     `gorm:"index" json:"gallery_id"`
	Title      string    `gorm:"size:255" json:"title"`
	MediaURL   string    `gorm:"type:text;not null" json:"media_url"`
	LikeCount  int       `gorm:"not null;default:0" json:"like_count"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// Like marks that a user has liked a share post. The composite unique index
// makes the toggle a membership test.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post;index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
