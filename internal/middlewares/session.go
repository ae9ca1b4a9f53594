package middlewares

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	SessionCookie = "gym_session"

	sessionTTL = 24 * time.Hour
)

var ErrInvalidSessionToken = errors.New("invalid session token")

// Session is the server-side record for a logged-in admin.
type Session struct {
	AdminID   uint      `json:"admin_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"-"`
}

// SessionStore is an in-memory session store keyed by opaque ids.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]Session)}
}

// Create stores a session for the admin and returns its id.
func (ss *SessionStore) Create(adminID uint, name, email string) string {
	sid := uuid.NewString()
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.sessions[sid] = Session{
		AdminID:   adminID,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}
	return sid
}

// Get retrieves a live session; expired sessions are dropped on access.
func (ss *SessionStore) Get(sid string) (Session, bool) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	session, ok := ss.sessions[sid]
	if !ok {
		return Session{}, false
	}
	if time.Since(session.CreatedAt) > sessionTTL {
		delete(ss.sessions, sid)
		return Session{}, false
	}
	return session, true
}

func (ss *SessionStore) Delete(sid string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.sessions, sid)
}

// SignSessionID wraps a session id in an HS256 token for the cookie.
func SignSessionID(sid, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(sessionTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseSessionID recovers the session id from a signed cookie value.
func ParseSessionID(value, secret string) (string, error) {
	token, err := jwt.Parse(value, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidSessionToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidSessionToken
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", ErrInvalidSessionToken
	}
	return sid, nil
}
