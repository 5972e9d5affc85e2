package dto

import "time"

// GalleryImage is a story's base illustration merged with the caller's
// colored overlay. ColoringImageURL stays null until the user colors it.
type GalleryImage struct {
	StoryID          uint      `json:"storyId"`
	StoryTitle       string    `json:"storyTitle"`
	ColorImageURL    string    `json:"colorImageUrl"`
	ColoringImageURL *string   `json:"coloringImageUrl"`
	CreatedAt        time.Time `json:"createdAt"`
}

type GalleryStats struct {
	TotalImages    int64   `json:"totalImages"`
	ColoringImages int64   `json:"coloringImages"`
	TotalStories   int64   `json:"totalStories"`
	CompletionRate float64 `json:"completionRate"`
}

type ColoringImageRequest struct {
	ColoringImageURL string `json:"coloringImageUrl" validate:"required,url"`
}
