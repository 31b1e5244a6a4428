package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_Create(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewSessionRepository(sqlxDB)
	ctx := context.Background()

	token := uuid.New().String()
	expiresAt := time.Now().Add(time.Hour)

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(token, 1, expiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(ctx, token, 1, expiresAt)

	assert.NoError(t, err)
}

func TestSessionRepository_GetUser(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewSessionRepository(sqlxDB)
	ctx := context.Background()

	token := uuid.New().String()

	t.Run("valid session resolves to user", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "role", "created_at"}).
			AddRow(1, "a@x.com", "hashed", "Alice", "admin", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM sessions s").
			WithArgs(token).
			WillReturnRows(rows)

		user, err := repo.GetUser(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("unknown or expired token maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM sessions s").
			WithArgs(token).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		user, err := repo.GetUser(ctx, token)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionRepository_Delete(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewSessionRepository(sqlxDB)
	ctx := context.Background()

	token := uuid.New().String()

	mock.ExpectExec("DELETE FROM sessions WHERE token").
		WithArgs(token).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(ctx, token))
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewSessionRepository(sqlxDB)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM sessions WHERE expires_at").
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
