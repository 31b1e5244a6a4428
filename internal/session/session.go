// Package session maps a signed browser cookie to a user record. The
// cookie carries a JWT whose sid claim references a row in the sessions
// table; logout deletes the row, so a stolen cookie cannot outlive it.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"goblog/internal/models"
	"goblog/internal/repository"
)

const CookieName = "blog_session"

type contextKey struct{}

var userKey contextKey

// Service is the identity surface the handlers depend on.
type Service interface {
	Issue(ctx context.Context, w http.ResponseWriter, user *models.User) error
	CurrentUser(ctx context.Context, r *http.Request) (*models.User, error)
	Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

type Manager struct {
	sessions repository.SessionRepository
	secret   []byte
	duration time.Duration
}

func NewManager(sessions repository.SessionRepository, secret string, duration time.Duration) *Manager {
	return &Manager{
		sessions: sessions,
		secret:   []byte(secret),
		duration: duration,
	}
}

// Issue creates a session row for the user and sets the signed cookie.
func (m *Manager) Issue(ctx context.Context, w http.ResponseWriter, user *models.User) error {
	token := uuid.New().String()
	expiresAt := time.Now().Add(m.duration)

	if err := m.sessions.Create(ctx, token, user.ID, expiresAt); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	signed, err := m.sign(token, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// CurrentUser resolves the request's session cookie to a user. A missing,
// tampered or expired cookie resolves to (nil, nil): the anonymous visitor.
func (m *Manager) CurrentUser(ctx context.Context, r *http.Request) (*models.User, error) {
	token, ok := m.tokenFromRequest(r)
	if !ok {
		return nil, nil
	}

	user, err := m.sessions.GetUser(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

// Clear deletes the session row and expires the cookie. Safe to call for
// anonymous requests.
func (m *Manager) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if token, ok := m.tokenFromRequest(r); ok {
		if err := m.sessions.Delete(ctx, token); err != nil {
			return err
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (m *Manager) sign(token string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid": token,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) tokenFromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}

	parsed, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", false
	}

	return sid, true
}

// WithUser returns a context carrying the resolved user. A nil user marks
// the anonymous visitor.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFrom returns the user stored by the session middleware, or nil.
func UserFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
