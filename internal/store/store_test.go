package store

import (
	"context"
	"io"
	"testing"

	"github.com/petermazzocco/go-video-project/internal/media"
	"github.com/petermazzocco/go-video-project/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Video{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// fakeHost implements media.Host for store and handler tests.
type fakeHost struct {
	deleteErr error
	deleted   []string
}

func (f *fakeHost) Store(ctx context.Context, body io.Reader, filename, contentType string) (*media.Asset, error) {
	return &media.Asset{PublicID: "videos/originals/fake_" + filename, URL: "https://media.example.com/" + filename}, nil
}

func (f *fakeHost) ThumbnailURL(publicID string, offsetSeconds, width, height int, crop string) (string, error) {
	return "https://media.example.com/thumb.jpg", nil
}

func (f *fakeHost) Delete(ctx context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return f.deleteErr
}
