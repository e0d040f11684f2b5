package store

import (
	"context"
	"errors"
	"testing"

	"github.com/petermazzocco/go-video-project/models"
)

func TestUserStore_Create_DuplicateEmail(t *testing.T) {
	s := NewUserStore(newTestDB(t))
	ctx := context.Background()

	if err := s.Create(ctx, &models.User{Email: "a@example.com", PasswordHash: "x"}); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	err := s.Create(ctx, &models.User{Email: "a@example.com", PasswordHash: "y"})
	if !errors.Is(err, models.ErrEmailTaken) {
		t.Errorf("second Create() error = %v, want ErrEmailTaken", err)
	}
}

func TestUserStore_Create_EmailIsCaseSensitive(t *testing.T) {
	s := NewUserStore(newTestDB(t))
	ctx := context.Background()

	if err := s.Create(ctx, &models.User{Email: "a@example.com"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	// Stored case-sensitively, so a different casing is a different account.
	if err := s.Create(ctx, &models.User{Email: "A@example.com"}); err != nil {
		t.Errorf("Create() with different casing error = %v, want nil", err)
	}
}

func TestUserStore_ByEmail_NotFound(t *testing.T) {
	s := NewUserStore(newTestDB(t))

	_, err := s.ByEmail(context.Background(), "missing@example.com")
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("ByEmail() error = %v, want ErrNotFound", err)
	}
}

func TestUserStore_ByID(t *testing.T) {
	s := NewUserStore(newTestDB(t))
	ctx := context.Background()

	user := &models.User{Email: "a@example.com", PasswordHash: "x"}
	if err := s.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := s.ByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("ByID() error = %v", err)
	}
	if got.Email != "a@example.com" {
		t.Errorf("Email = %q, want %q", got.Email, "a@example.com")
	}

	if _, err := s.ByID(ctx, 999); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("ByID(999) error = %v, want ErrNotFound", err)
	}
}
