package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	handlers "goblog/internal/handler"
	"goblog/internal/models"
	"goblog/internal/session"
)

func TestAdminOnly(t *testing.T) {
	var reached bool
	gated := handlers.AdminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("anonymous is forbidden before the handler runs", func(t *testing.T) {
		reached = false

		w := httptest.NewRecorder()
		gated.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/new-post", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, reached)
	})

	t.Run("reader is forbidden before the handler runs", func(t *testing.T) {
		reached = false
		reader := &models.User{ID: 2, Role: models.RoleReader}

		w := httptest.NewRecorder()
		gated.ServeHTTP(w, asUser(httptest.NewRequest(http.MethodGet, "/new-post", nil), reader))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, reached)
	})

	t.Run("admin passes through", func(t *testing.T) {
		reached = false
		admin := &models.User{ID: 1, Role: models.RoleAdmin}

		w := httptest.NewRecorder()
		gated.ServeHTTP(w, asUser(httptest.NewRequest(http.MethodGet, "/new-post", nil), admin))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, reached)
	})
}

func TestAdminOnlyProtectsTheStore(t *testing.T) {
	// a non-admin hitting a gated route must never reach the service
	h, m := newTestHandlers(t)
	reader := &models.User{ID: 2, Role: models.RoleReader}

	gated := handlers.AdminOnly(http.HandlerFunc(h.DeletePost))

	w := httptest.NewRecorder()
	gated.ServeHTTP(w, asUser(withPostID(httptest.NewRequest(http.MethodGet, "/delete/7", nil), "7"), reader))

	assert.Equal(t, http.StatusForbidden, w.Code)
	m.post.AssertNotCalled(t, "Delete")
}

func TestSessionMiddleware(t *testing.T) {
	t.Run("puts the resolved user into the context", func(t *testing.T) {
		sessions := new(MockSessionService)
		user := &models.User{ID: 1, Name: "Alice"}
		sessions.On("CurrentUser", mock.Anything, mock.Anything).Return(user, nil)

		var seen *models.User
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = session.UserFrom(r.Context())
		})

		w := httptest.NewRecorder()
		handlers.SessionMiddleware(sessions)(next).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, user, seen)
	})

	t.Run("lookup failure degrades to anonymous", func(t *testing.T) {
		sessions := new(MockSessionService)
		sessions.On("CurrentUser", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		var called bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			assert.Nil(t, session.UserFrom(r.Context()))
		})

		w := httptest.NewRecorder()
		handlers.SessionMiddleware(sessions)(next).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, called)
	})
}
