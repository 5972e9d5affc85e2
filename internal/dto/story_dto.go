package dto

import "time"

type CreateStoryRequest struct {
	Title    string  `json:"title" validate:"required,max=255"`
	Image    *string `json:"image" validate:"omitempty,url"`
	VoiceURL *string `json:"voiceUrl" validate:"omitempty,url"`
}

type StoryResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Image     *string   `json:"image"`
	VoiceURL  *string   `json:"voiceUrl"`
	CreatedAt time.Time `json:"createdAt"`
}
