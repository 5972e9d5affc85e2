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
	"gorm.io/gorm/clause"
)

var (
	ErrPostNotFound = errors.New("share post not found")
	ErrNotPostOwner = errors.New("only the owner can delete this post")
	ErrNoShareMedia = errors.New("story has no media to share")
)

type ShareService struct {
	db *gorm.DB
}

func NewShareService(db *gorm.DB) *ShareService {
	return &ShareService{db: db}
}

// ShareFromStory materializes a public post from one of the caller's stories.
func (s *ShareService) ShareFromStory(storyID uint, username string) (*dto.SharePost, error) {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	story, err := findOwnedStory(s.db, storyID, user.ID)
	if err != nil {
		return nil, err
	}
	if story.Image == nil {
		return nil, ErrNoShareMedia
	}

	post := models.SharePost{
		UserID:     user.ID,
		SourceType: models.ShareSourceStory,
		StoryID:    &story.ID,
		Title:      story.Title,
		MediaURL:   *story.Image,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to create share post: %w", err)
	}

	out := toSharePost(&post, user.Nickname, false)
	return &out, nil
}

// ShareFromGallery materializes a post from a gallery entry, preferring the
// colored overlay and falling back to the base image when uncolored.
func (s *ShareService) ShareFromGallery(galleryID uint, username string) (*dto.SharePost, error) {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	var gallery models.Gallery
	err = s.db.Scopes(scope.OwnedBy(user.ID)).Where("id = ?", galleryID).First(&gallery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, err
	}

	mediaURL := gallery.ColorImageURL
	if gallery.ColoringImageURL != nil {
		mediaURL = *gallery.ColoringImageURL
	}

	post := models.SharePost{
		UserID:     user.ID,
		SourceType: models.ShareSourceGallery,
		StoryID:    &gallery.StoryID,
		GalleryID:  &gallery.ID,
		Title:      gallery.StoryTitle,
		MediaURL:   mediaURL,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to create share post: %w", err)
	}

	out := toSharePost(&post, user.Nickname, false)
	return &out, nil
}

// GetAllSharePosts returns the whole feed, newest first. viewerUsername may
// be empty for anonymous callers, leaving every liked-by-me flag false.
func (s *ShareService) GetAllSharePosts(viewerUsername string) ([]dto.SharePost, error) {
	var posts []models.SharePost
	if err := s.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list share posts: %w", err)
	}

	return s.buildFeed(posts, viewerUsername)
}

func (s *ShareService) GetUserSharePosts(username string) ([]dto.SharePost, error) {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	var posts []models.SharePost
	if err := s.db.Scopes(scope.OwnedBy(user.ID)).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list share posts: %w", err)
	}

	return s.buildFeed(posts, username)
}

// DeleteSharePost removes the caller's post together with its likes. Unlike
// the gallery lookups this checks existence and ownership separately so a
// foreign post yields an explicit forbidden signal.
func (s *ShareService) DeleteSharePost(postID uint, username string) error {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return err
	}

	var post models.SharePost
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	if post.UserID != user.ID {
		return ErrNotPostOwner
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}

// ToggleLike adds the caller to the post's liking set or removes them if
// already present. The post row is locked for the duration so concurrent
// toggles serialize in the store.
func (s *ShareService) ToggleLike(postID uint, username string) (*dto.SharePost, error) {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	var post models.SharePost
	var liked bool
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&post, "id = ?", postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		var existing models.Like
		err := tx.Where("user_id = ? AND post_id = ?", user.ID, post.ID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			post.LikeCount--
			liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.Like{UserID: user.ID, PostID: post.ID}).Error; err != nil {
				return err
			}
			post.LikeCount++
			liked = true
		default:
			return err
		}

		return tx.Model(&models.SharePost{}).Where("id = ?", post.ID).
			UpdateColumn("like_count", post.LikeCount).Error
	})
	if err != nil {
		return nil, err
	}

	nickname := s.authorNickname(post.UserID)
	out := toSharePost(&post, nickname, liked)
	return &out, nil
}

// buildFeed resolves author nicknames and the viewer's liked set in two
// batch queries, then maps posts to DTOs preserving order.
func (s *ShareService) buildFeed(posts []models.SharePost, viewerUsername string) ([]dto.SharePost, error) {
	if len(posts) == 0 {
		return []dto.SharePost{}, nil
	}

	authorIDs := lo.Uniq(lo.Map(posts, func(p models.SharePost, _ int) uuid.UUID { return p.UserID }))
	var authors []models.User
	if err := s.db.Where("id IN ?", authorIDs).Find(&authors).Error; err != nil {
		return nil, fmt.Errorf("failed to load post authors: %w", err)
	}
	nicknames := lo.SliceToMap(authors, func(u models.User) (uuid.UUID, string) {
		return u.ID, u.Nickname
	})

	likedSet := map[uint]struct{}{}
	if viewerUsername != "" {
		viewer, err := findUserByUsername(s.db, viewerUsername)
		if err != nil && !errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		if viewer != nil {
			postIDs := lo.Map(posts, func(p models.SharePost, _ int) uint { return p.ID })
			var likes []models.Like
			if err := s.db.Where("user_id = ? AND post_id IN ?", viewer.ID, postIDs).
				Find(&likes).Error; err != nil {
				return nil, fmt.Errorf("failed to load viewer likes: %w", err)
			}
			for _, like := range likes {
				likedSet[like.PostID] = struct{}{}
			}
		}
	}

	out := make([]dto.SharePost, len(posts))
	for i := range posts {
		_, liked := likedSet[posts[i].ID]
		out[i] = toSharePost(&posts[i], nicknames[posts[i].UserID], liked)
	}
	return out, nil
}

func (s *ShareService) authorNickname(userID uuid.UUID) string {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return ""
	}
	return user.Nickname
}

func toSharePost(post *models.SharePost, authorNickname string, likedByMe bool) dto.SharePost {
	return dto.SharePost{
		ID:             post.ID,
		AuthorNickname: authorNickname,
		SourceType:     post.SourceType,
		StoryID:        post.StoryID,
		GalleryID:      post.GalleryID,
		Title:          post.Title,
		MediaURL:       post.MediaURL,
		LikeCount:      post.LikeCount,
		LikedByMe:      likedByMe,
		CreatedAt:      post.CreatedAt,
	}
}
