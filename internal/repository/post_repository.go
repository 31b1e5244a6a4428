package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"goblog/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO blog_posts (author_id, title, subtitle, date, body, img_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	row := r.db.QueryRowxContext(ctx, query,
		post.AuthorID, post.Title, post.Subtitle, post.Date, post.Body, post.ImgURL)
	if err := row.Scan(&post.ID); err != nil {
		if isUniqueViolation(err, "title") {
			return ErrDuplicateTitle
		}
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id int) (*models.Post, error) {
	var post models.Post

	query := `
		SELECT p.id, p.author_id, p.title, p.subtitle, p.date, p.body, p.img_url,
		       u.name AS author_name
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`

	err := r.db.GetContext(ctx, &post, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *postRepository) ListNewestFirst(ctx context.Context) ([]models.Post, error) {
	query := `
		SELECT p.id, p.author_id, p.title, p.subtitle, p.date, p.body, p.img_url,
		       u.name AS author_name
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.id DESC
	`

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// Update overwrites the mutable fields only; id, author and date are
// immutable after creation.
func (r *postRepository) Update(ctx context.Context, id int, title, subtitle, body, imgURL string) error {
	query := `
		UPDATE blog_posts
		SET title = $1, subtitle = $2, body = $3, img_url = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query, title, subtitle, body, imgURL, id)
	if err != nil {
		if isUniqueViolation(err, "title") {
			return ErrDuplicateTitle
		}
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the post and all its comments in one transaction, so a
// partial delete is never visible.
func (r *postRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	return nil
}
