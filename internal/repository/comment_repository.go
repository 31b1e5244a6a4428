package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"goblog/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, text string, authorID, postID int) (*models.Comment, error) {
	query := `
		INSERT INTO comments (text, author_id, post_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	comment := &models.Comment{
		Text:     text,
		AuthorID: authorID,
		PostID:   postID,
	}

	row := r.db.QueryRowxContext(ctx, query, text, authorID, postID)
	if err := row.Scan(&comment.ID, &comment.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID int) ([]models.Comment, error) {
	query := `
		SELECT c.id, c.text, c.author_id, c.post_id, c.created_at,
		       u.name AS author_name
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.id ASC
	`

	comments := []models.Comment{}
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}
