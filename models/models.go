package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"size:255;not null;unique" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	Videos       []Video   `json:"videos,omitempty"`
}

// ProviderOnly reports whether the account was created through an external
// identity provider and has no usable local password.
func (u *User) ProviderOnly() bool {
	return u.PasswordHash == ""
}

type Video struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	PublicID     string    `gorm:"size:255;not null;uniqueIndex" json:"public_id"`
	URL          string    `gorm:"size:1024;not null" json:"url"`
	ThumbnailURL string    `gorm:"size:1024" json:"thumbnail_url,omitempty"`
	Category     string    `gorm:"size:100;default:Uncategorized" json:"category"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         *User     `json:"user,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
