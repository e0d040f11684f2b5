package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/petermazzocco/go-video-project/internal/auth"
	"github.com/petermazzocco/go-video-project/internal/policy"
	"github.com/petermazzocco/go-video-project/models"
)

// Thumbnail derivation parameters: a still two seconds in, 300x200, filled.
const (
	thumbOffsetSeconds = 2
	thumbWidth         = 300
	thumbHeight        = 200
	thumbCrop          = "fill"
)

// ListVideos serves the library, filtered by the q, category and my_videos
// query parameters.
func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	var ownerID uint
	if strings.TrimSpace(r.URL.Query().Get("my_videos")) != "" {
		ownerID = userID
	}

	videos, err := h.Videos.FilterLibrary(r.Context(), query, category, ownerID)
	if err != nil {
		h.Log.Error("failed to list videos", "error", err)
		http.Error(w, "Failed to list videos", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"videos": videos})
}

// Upload stores the raw bytes with the media host, then records the video.
// A row exists if and only if the host accepted the bytes.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]any{
			"error": "No video part",
			"field": "video",
		})
		return
	}
	defer file.Close()

	if header.Filename == "" {
		respondJSON(w, http.StatusBadRequest, map[string]any{
			"error": "No selected file",
			"field": "video",
		})
		return
	}

	category := strings.TrimSpace(r.FormValue("category"))
	if category == "" {
		category = "Uncategorized"
	}
	description := strings.TrimSpace(r.FormValue("description"))

	asset, err := h.Media.Store(r.Context(), file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		h.Metrics.RecordUploadFail()
		h.Log.Error("media host rejected upload", "filename", header.Filename, "error", err)
		respondJSON(w, http.StatusBadGateway, map[string]any{"error": "Upload failed"})
		return
	}

	// Best effort: a video without a thumbnail still plays.
	thumbnailURL, err := h.Media.ThumbnailURL(asset.PublicID, thumbOffsetSeconds, thumbWidth, thumbHeight, thumbCrop)
	if err != nil {
		h.Log.Warn("thumbnail derivation failed", "public_id", asset.PublicID, "error", err)
		thumbnailURL = ""
	}

	video := &models.Video{
		Title:        header.Filename,
		PublicID:     asset.PublicID,
		URL:          asset.URL,
		ThumbnailURL: thumbnailURL,
		Category:     category,
		Description:  description,
		UserID:       userID,
	}

	if err := h.Videos.Create(r.Context(), video); err != nil {
		// The stored asset is orphaned here; there is no reconciliation.
		h.Log.Error("failed to save video", "public_id", asset.PublicID, "error", err)
		http.Error(w, "Error saving video", http.StatusInternalServerError)
		return
	}

	h.Metrics.RecordUploadSuccess()
	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Video uploaded successfully",
		"video":   video,
	})
}

// DeleteVideo removes an owned video and, best effort, its remote asset.
func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	video, err := h.videoFromURL(r)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, map[string]any{"error": "Video not found"})
			return
		}
		h.Log.Error("failed to load video", "error", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	if !policy.CanDelete(userID, video) {
		respondJSON(w, http.StatusForbidden, map[string]any{
			"error": "You can only delete your own videos",
		})
		return
	}

	res, err := h.Videos.Delete(r.Context(), video, h.Media)
	if err != nil {
		h.Log.Error("failed to delete video", "video_id", video.ID, "error", err)
		http.Error(w, "Failed to delete video", http.StatusInternalServerError)
		return
	}
	if !res.RemoteDeleted {
		h.Metrics.RecordDeleteRemoteFail()
		h.Log.Warn("media host delete failed, local record removed",
			"public_id", video.PublicID, "error", res.RemoteErr)
	}

	h.Metrics.RecordDelete()
	respondJSON(w, http.StatusOK, map[string]any{"message": "Video deleted successfully"})
}

// Watch serves a single video plus the library for the sidebar. No session
// is required.
func (h *Handler) Watch(w http.ResponseWriter, r *http.Request) {
	video, err := h.videoFromURL(r)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, map[string]any{"error": "Video not found"})
			return
		}
		h.Log.Error("failed to load video", "error", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	userID, _ := h.Sessions.CurrentUserID(r)
	if !policy.CanView(userID, video) {
		respondJSON(w, http.StatusForbidden, map[string]any{"error": "Not allowed"})
		return
	}

	videos, err := h.Videos.FilterLibrary(r.Context(), "", "", 0)
	if err != nil {
		h.Log.Error("failed to list videos", "error", err)
		http.Error(w, "Failed to list videos", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"video":  video,
		"videos": videos,
	})
}

func (h *Handler) videoFromURL(r *http.Request) (*models.Video, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "videoID"), 10, 64)
	if err != nil {
		return nil, models.ErrNotFound
	}
	return h.Videos.ByID(r.Context(), uint(id))
}
