package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"goblog/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, email, passwordHash, name string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id int) (*models.Post, error)
	ListNewestFirst(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, id int, title, subtitle, body, imgURL string) error
	Delete(ctx context.Context, id int) error
}

type CommentRepository interface {
	Create(ctx context.Context, text string, authorID, postID int) (*models.Comment, error)
	ListByPost(ctx context.Context, postID int) ([]models.Comment, error)
}

type SessionRepository interface {
	Create(ctx context.Context, token string, userID int, expiresAt time.Time) error
	GetUser(ctx context.Context, token string) (*models.User, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
	Session SessionRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
		Session: NewSessionRepository(db),
	}
}
