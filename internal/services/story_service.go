package services

import (
	"errors"
	"fmt"

	"github.com/ansdud923/fairytale-app/internal/dto"
	"github.com/ansdud923/fairytale-app/internal/models"
	"github.com/ansdud923/fairytale-app/internal/scope"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrStoryNotFound = errors.New("story not found")

type StoryService struct {
	db *gorm.DB
}

func NewStoryService(db *gorm.DB) *StoryService {
	return &StoryService{db: db}
}

func (s *StoryService) CreateStory(username string, req *dto.CreateStoryRequest) (*dto.StoryResponse, error) {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	story := models.Story{
		UserID:   user.ID,
		Title:    req.Title,
		Image:    req.Image,
		VoiceURL: req.VoiceURL,
	}
	if err := s.db.Create(&story).Error; err != nil {
		return nil, fmt.Errorf("failed to create story: %w", err)
	}

	return toStoryResponse(&story), nil
}

func (s *StoryService) GetUserStories(username string) ([]dto.StoryResponse, error) {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	var stories []models.Story
	if err := s.db.Scopes(scope.OwnedBy(user.ID)).
		Order("created_at DESC").
		Find(&stories).Error; err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}

	out := make([]dto.StoryResponse, len(stories))
	for i := range stories {
		out[i] = *toStoryResponse(&stories[i])
	}
	return out, nil
}

func (s *StoryService) GetStory(storyID uint, username string) (*dto.StoryResponse, error) {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	story, err := findOwnedStory(s.db, storyID, user.ID)
	if err != nil {
		return nil, err
	}
	return toStoryResponse(story), nil
}

func (s *StoryService) DeleteStory(storyID uint, username string) error {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return err
	}

	result := s.db.Scopes(scope.OwnedBy(user.ID)).Where("id = ?", storyID).Delete(&models.Story{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete story: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStoryNotFound
	}
	return nil
}

// findOwnedStory looks a story up by id and owner in one predicate, so a
// foreign story is indistinguishable from a missing one.
func findOwnedStory(db *gorm.DB, storyID uint, userID uuid.UUID) (*models.Story, error) {
	var story models.Story
	err := db.Where("id = ? AND user_id = ?", storyID, userID).First(&story).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoryNotFound
		}
		return nil, err
	}
	return &story, nil
}

func toStoryResponse(story *models.Story) *dto.StoryResponse {
	return &dto.StoryResponse{
		ID:        story.ID,
		Title:     story.Title,
		Image:     story.Image,
		VoiceURL:  story.VoiceURL,
		CreatedAt: story.CreatedAt,
	}
}
