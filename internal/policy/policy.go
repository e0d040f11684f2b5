// Package policy decides which user may act on which video.
package policy

import (
	"github.com/petermazzocco/go-video-project/models"
)

// CanDelete allows deletion only by the owner. There is no admin override.
func CanDelete(userID uint, video *models.Video) bool {
	return userID != 0 && userID == video.UserID
}

// CanView is open: watching a single video needs no session. Listing the
// library is gated separately by the session middleware.
func CanView(userID uint, video *models.Video) bool {
	return true
}
