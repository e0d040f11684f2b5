package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/markbates/goth/gothic"
	"github.com/petermazzocco/go-video-project/internal/auth"
	"github.com/petermazzocco/go-video-project/models"
)

// RegisterPage and LoginPage exist so redirects from protected routes land
// somewhere useful; the API itself is form-post driven.
func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"message": "POST email, password and confirm_password to register",
	})
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"message": "POST email and password to log in",
	})
}

func validateRegistration(email, password, confirm string) *models.ValidationError {
	if email == "" {
		return models.NewValidationError("email", "Email is required")
	}
	if password == "" {
		return models.NewValidationError("password", "Password is required")
	}
	if password != confirm {
		return models.NewValidationError("confirm_password", "Passwords do not match")
	}
	return nil
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	confirm := r.FormValue("confirm_password")

	if ve := validateRegistration(email, password, confirm); ve != nil {
		respondJSON(w, http.StatusBadRequest, map[string]any{
			"error": ve.Message,
			"field": ve.Field,
		})
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		h.Log.Error("failed to hash password", "error", err)
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	user := &models.User{Email: email, PasswordHash: hash}
	if err := h.Users.Create(r.Context(), user); err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			respondJSON(w, http.StatusBadRequest, map[string]any{
				"error": "Email already exists",
				"field": "email",
			})
			return
		}
		h.Log.Error("failed to create user", "error", err)
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Account created successfully, please log in",
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	// Unknown email and wrong password get the same answer so the response
	// never reveals which field was wrong. Provider-only accounts have an
	// empty hash and can never pass the password check.
	user, err := h.Users.ByEmail(r.Context(), email)
	if err != nil || !auth.CheckPassword(user.PasswordHash, password) {
		h.Metrics.RecordLoginFail()
		respondJSON(w, http.StatusUnauthorized, map[string]any{
			"error": "Invalid email or password",
		})
		return
	}

	if err := h.Sessions.SignIn(w, r, user.ID); err != nil {
		h.Log.Error("failed to save session", "error", err)
		http.Error(w, "Failed to log in", http.StatusInternalServerError)
		return
	}

	h.Metrics.RecordLogin("local")
	respondJSON(w, http.StatusOK, map[string]any{"message": "Logged in successfully"})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.SignOut(w, r); err != nil {
		h.Log.Error("failed to clear session", "error", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// BeginOAuth starts the provider handshake, or skips straight to the library
// when the provider already knows the user.
func (h *Handler) BeginOAuth(w http.ResponseWriter, r *http.Request) {
	if _, err := gothic.CompleteUserAuth(w, r); err == nil {
		http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
		return
	}
	gothic.BeginAuthHandler(w, r)
}

// OAuthCallback finishes the handshake. A first-time provider sign-in
// creates a user with no local password.
func (h *Handler) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	gothUser, err := gothic.CompleteUserAuth(w, r)
	if err != nil {
		h.Log.Error("provider handshake failed", "error", err)
		http.Error(w, "Authentication failed", http.StatusBadGateway)
		return
	}

	user, err := h.Users.ByEmail(r.Context(), gothUser.Email)
	if errors.Is(err, models.ErrNotFound) {
		user = &models.User{Email: gothUser.Email}
		if err := h.Users.Create(r.Context(), user); err != nil {
			h.Log.Error("failed to create user", "error", err)
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}
	} else if err != nil {
		h.Log.Error("failed to look up user", "error", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	if err := h.Sessions.SignIn(w, r, user.ID); err != nil {
		h.Log.Error("failed to save session", "error", err)
		http.Error(w, "Failed to log in", http.StatusInternalServerError)
		return
	}

	h.Metrics.RecordLogin("google")
	http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
}
