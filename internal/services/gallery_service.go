package services

import (
	"errors"
	"fmt"

	"github.com/ansdud923/fairytale-app/internal/dto"
	"github.com/ansdud923/fairytale-app/internal/models"
	"github.com/ansdud923/fairytale-app/internal/scope"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

var ErrGalleryNotFound = errors.New("gallery entry not found")

// GalleryService merges story base illustrations with the per-user colored
// overlays kept in the gallery table.
type GalleryService struct {
	db *gorm.DB
}

func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{db: db}
}

// GetUserGalleryImages lists the caller's story images newest first, with
// coloring overlays merged in by story id. Order follows the story query.
func (s *GalleryService) GetUserGalleryImages(username string) ([]dto.GalleryImage, error) {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	var stories []models.Story
	if err := s.db.Scopes(scope.OwnedBy(user.ID)).
		Where("image IS NOT NULL").
		Order("created_at DESC").
		Find(&stories).Error; err != nil {
		return nil, fmt.Errorf("failed to list story images: %w", err)
	}

	images := lo.Map(stories, func(story models.Story, _ int) dto.GalleryImage {
		return toGalleryImage(&story, nil)
	})

	var galleries []models.Gallery
	if err := s.db.Scopes(scope.OwnedBy(user.ID)).Find(&galleries).Error; err != nil {
		return nil, fmt.Errorf("failed to list gallery entries: %w", err)
	}

	return mergeColoringImages(images, galleries), nil
}

// GetStoryGalleryImage returns one story's gallery record. The story lookup
// is ownership-scoped; a foreign story reads as not found.
func (s *GalleryService) GetStoryGalleryImage(storyID uint, username string) (*dto.GalleryImage, error) {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	story, err := findOwnedStory(s.db, storyID, user.ID)
	if err != nil {
		return nil, err
	}

	image := toGalleryImage(story, nil)
	if gallery, err := s.findGalleryEntry(storyID, user.ID); err == nil {
		image.ColoringImageURL = gallery.ColoringImageURL
	} else if !errors.Is(err, ErrGalleryNotFound) {
		return nil, err
	}
	return &image, nil
}

// UpdateColoringImage upserts the gallery entry for (story, user). The story
// title and base image are denormalized when the row is first created and
// deliberately not refreshed afterwards.
func (s *GalleryService) UpdateColoringImage(storyID uint, coloringImageURL, username string) (*dto.GalleryImage, error) {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	story, err := findOwnedStory(s.db, storyID, user.ID)
	if err != nil {
		return nil, err
	}

	var gallery models.Gallery
	err = s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Scopes(scope.OwnedBy(user.ID)).Where("story_id = ?", storyID).First(&gallery).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			gallery = models.Gallery{
				StoryID:    storyID,
				UserID:     user.ID,
				StoryTitle: story.Title,
			}
			if story.Image != nil {
				gallery.ColorImageURL = *story.Image
			}
		} else if err != nil {
			return fmt.Errorf("failed to load gallery entry: %w", err)
		}

		gallery.ColoringImageURL = &coloringImageURL
		return tx.Save(&gallery).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save coloring image: %w", err)
	}

	image := toGalleryImage(story, &gallery)
	return &image, nil
}

// DeleteGalleryImage removes the entry for (story, user). Returns false when
// there was nothing to delete.
func (s *GalleryService) DeleteGalleryImage(storyID uint, username string) (bool, error) {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return false, err
	}

	result := s.db.Scopes(scope.OwnedBy(user.ID)).Where("story_id = ?", storyID).Delete(&models.Gallery{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete gallery entry: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *GalleryService) GetGalleryStats(username string) (*dto.GalleryStats, error) {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	var totalImages, coloringImages, totalStories int64
	if err := s.db.Model(&models.Story{}).Scopes(scope.OwnedBy(user.ID)).
		Where("image IS NOT NULL").Count(&totalImages).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Gallery{}).Scopes(scope.OwnedBy(user.ID)).
		Where("coloring_image_url IS NOT NULL").Count(&coloringImages).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Story{}).Scopes(scope.OwnedBy(user.ID)).
		Count(&totalStories).Error; err != nil {
		return nil, err
	}

	return &dto.GalleryStats{
		TotalImages:    totalImages,
		ColoringImages: coloringImages,
		TotalStories:   totalStories,
		CompletionRate: completionRate(coloringImages, totalImages),
	}, nil
}

func (s *GalleryService) findGalleryEntry(storyID uint, userID uuid.UUID) (*models.Gallery, error) {
	var gallery models.Gallery
	err := s.db.Scopes(scope.OwnedBy(userID)).Where("story_id = ?", storyID).First(&gallery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, err
	}
	return &gallery, nil
}

// completionRate is colored/total as a percentage, 0 when there are no
// images at all.
func completionRate(colored, total int64) float64 {
	if total <= 0 {
		return 0.0
	}
	return float64(colored) / float64(total) * 100
}

// mergeColoringImages overlays gallery coloring URLs onto the story-ordered
// image list, keyed by story id.
func mergeColoringImages(images []dto.GalleryImage, galleries []models.Gallery) []dto.GalleryImage {
	byStory := lo.KeyBy(galleries, func(g models.Gallery) uint { return g.StoryID })

	for i := range images {
		if gallery, ok := byStory[images[i].StoryID]; ok {
			images[i].ColoringImageURL = gallery.ColoringImageURL
		}
	}
	return images
}

func toGalleryImage(story *models.Story, gallery *models.Gallery) dto.GalleryImage {
	image := dto.GalleryImage{
		StoryID:    story.ID,
		StoryTitle: story.Title,
		CreatedAt:  story.CreatedAt,
	}
	if story.Image != nil {
		image.ColorImageURL = *story.Image
	}
	if gallery != nil {
		image.ColoringImageURL = gallery.ColoringImageURL
	}
	return image
}
