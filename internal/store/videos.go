package store

import (
	"context"
	"errors"
	"strings"

	"github.com/petermazzocco/go-video-project/internal/media"
	"github.com/petermazzocco/go-video-project/models"
	"gorm.io/gorm"
)

type VideoStore struct {
	db *gorm.DB
}

func NewVideoStore(db *gorm.DB) *VideoStore {
	return &VideoStore{db: db}
}

func (s *VideoStore) Create(ctx context.Context, video *models.Video) error {
	return s.db.WithContext(ctx).Create(video).Error
}

func (s *VideoStore) ByID(ctx context.Context, id uint) (*models.Video, error) {
	var video models.Video
	if err := s.db.WithContext(ctx).First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

// FilterLibrary lists videos newest first. query matches title or category
// case-insensitively as a substring, category narrows to an exact
// case-insensitive match, and a nonzero ownerID narrows to that owner's
// videos. Blank or whitespace-only filters are ignored. Filters combine
// with AND.
func (s *VideoStore) FilterLibrary(ctx context.Context, query, category string, ownerID uint) ([]models.Video, error) {
	q := s.db.WithContext(ctx).Model(&models.Video{})

	if query = strings.TrimSpace(query); query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			s.db.Where("LOWER(title) LIKE ?", pattern).Or("LOWER(category) LIKE ?", pattern),
		)
	}
	if category = strings.TrimSpace(category); category != "" {
		q = q.Where("LOWER(category) = ?", strings.ToLower(category))
	}
	if ownerID != 0 {
		q = q.Where("user_id = ?", ownerID)
	}

	var videos []models.Video
	// id breaks created_at ties so the order is stable.
	if err := q.Order("created_at DESC, id DESC").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// DeleteResult tells the caller whether the external asset went away too.
// The local row is always gone when Delete returns without error.
type DeleteResult struct {
	RemoteDeleted bool
	RemoteErr     error
}

// Delete removes the video's asset from the media host, best effort, then
// deletes the local row unconditionally. A remote failure is reported in
// the result for the caller to log, never surfaced to the user.
func (s *VideoStore) Delete(ctx context.Context, video *models.Video, host media.Host) (DeleteResult, error) {
	res := DeleteResult{RemoteDeleted: true}
	if err := host.Delete(ctx, video.PublicID); err != nil {
		res.RemoteDeleted = false
		res.RemoteErr = err
	}

	if err := s.db.WithContext(ctx).Delete(&models.Video{}, video.ID).Error; err != nil {
		return res, err
	}
	return res, nil
}
