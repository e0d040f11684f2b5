package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "video_session"

// SessionManager is the explicit session-token to user-id lookup used by the
// middleware and handlers. It wraps a gorilla cookie store so the same store
// can also back the OAuth handshake.
type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(secret string, maxAge int, secure bool) *SessionManager {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(maxAge)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	return &SessionManager{store: store}
}

// Store exposes the underlying cookie store for gothic.
func (m *SessionManager) Store() *sessions.CookieStore {
	return m.store
}

// SignIn records the user id in the session cookie.
func (m *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, userID uint) error {
	// Get returns a fresh session when the cookie is missing or invalid.
	session, _ := m.store.Get(r, sessionName)
	session.Values["user_id"] = userID
	return session.Save(r, w)
}

// SignOut drops the session cookie.
func (m *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	delete(session.Values, "user_id")
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// CurrentUserID returns the authenticated user id attached to the request,
// or false when the request carries no valid session.
func (m *SessionManager) CurrentUserID(r *http.Request) (uint, bool) {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return 0, false
	}
	userID, ok := session.Values["user_id"].(uint)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}
