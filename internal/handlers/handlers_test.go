package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/petermazzocco/go-video-project/internal/auth"
	"github.com/petermazzocco/go-video-project/internal/media"
	"github.com/petermazzocco/go-video-project/internal/metrics"
	"github.com/petermazzocco/go-video-project/internal/store"
	"github.com/petermazzocco/go-video-project/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeHost implements media.Host for handler tests.
type fakeHost struct {
	storeErr  error
	thumbErr  error
	deleteErr error
	stored    []string
	deleted   []string
}

func (f *fakeHost) Store(ctx context.Context, body io.Reader, filename, contentType string) (*media.Asset, error) {
	if f.storeErr != nil {
		return nil, f.storeErr
	}
	f.stored = append(f.stored, filename)
	return &media.Asset{
		PublicID: "videos/originals/fake_" + filename,
		URL:      "https://media.example.com/videos/originals/fake_" + filename,
	}, nil
}

func (f *fakeHost) ThumbnailURL(publicID string, offsetSeconds, width, height int, crop string) (string, error) {
	if f.thumbErr != nil {
		return "", f.thumbErr
	}
	return "https://media.example.com/" + publicID + ".jpg", nil
}

func (f *fakeHost) Delete(ctx context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return f.deleteErr
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
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

func newTestHandler(t *testing.T) (*Handler, *gorm.DB, *fakeHost) {
	t.Helper()

	db := newTestDB(t)
	host := &fakeHost{}
	h := New(
		store.NewUserStore(db),
		store.NewVideoStore(db),
		host,
		auth.NewSessionManager("test-secret", 3600, false),
		metrics.NewCollector(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return h, db, host
}

// withUser injects an authenticated user id the way the middleware would.
func withUser(r *http.Request, userID uint) *http.Request {
	return r.WithContext(auth.ContextWithUserID(r.Context(), userID))
}

// withVideoID attaches the chi URL parameter for {videoID} routes.
func withVideoID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("videoID", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// multipartUpload builds a multipart body with an optional video file part.
func multipartUpload(t *testing.T, filename string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		fw, err := mw.CreateFormFile("video", filename)
		if err != nil {
			t.Fatalf("CreateFormFile() error = %v", err)
		}
		if _, err := fw.Write([]byte("not really video bytes")); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%s) error = %v", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func decodeBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return out
}

func countVideos(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.Video{}).Count(&count).Error; err != nil {
		t.Fatalf("count videos: %v", err)
	}
	return count
}
