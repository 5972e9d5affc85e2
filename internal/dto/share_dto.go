package dto

import "time"

// SharePost is the feed representation of a shared post. LikedByMe is
// computed against the viewer and stays false for anonymous listings.
type SharePost struct {
	ID             uint      `json:"id"`
	AuthorNickname string    `json:"authorNickname"`
	SourceType     string    `json:"sourceType"`
	StoryID        *uint     `json:"storyId"`
	GalleryID      *uint     `json:"galleryId"`
	Title          string    `json:"title"`
	MediaURL       string    `json:"mediaUrl"`
	LikeCount      int       `json:"likeCount"`
	LikedByMe      bool      `json:"likedByMe"`
	CreatedAt      time.Time `json:"createdAt"`
}
