package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the account record. Username is the identity every other service
// resolves callers by; the provider IDs are unique when present so one
// external account can only ever link to one user.
type User struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username       string         `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Nickname       string         `gorm:"size:100;not null;uniqueIndex" json:"nickname"`
	Email          *string        `gorm:"size:200;uniqueIndex" json:"email"`
	HashedPassword string         `gorm:"size:512" json:"-"`
	GoogleID       *string        `gorm:"size:100;uniqueIndex" json:"-"`
	KakaoID        *string        `gorm:"size:100;uniqueIndex" json:"-"`
	AppleID        *string        `gorm:"size:100;uniqueIndex" json:"-"`
	CreatedAt      time.Time      `json:"created_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Stories  []Story   `gorm:"foreignKey:UserID" json:"-"`
	Articles []Article `gorm:"foreignKey:UserID" json:"-"`
	Babies   []Baby    `gorm:"foreignKey:UserID" json:"-"`
	Likes    []Like    `gorm:"foreignKey:UserID" json:"-"`
}
