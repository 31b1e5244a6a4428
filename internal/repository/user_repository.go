package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"goblog/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. The first user ever registered becomes the
// admin. Under READ COMMITTED two registrations racing on an empty table
// can both pick 'admin'; the users_single_admin partial unique index
// rejects the loser, which is re-inserted as a reader.
func (r *userRepository) Create(ctx context.Context, email, passwordHash, name string) (*models.User, error) {
	query := `
		INSERT INTO users (email, password_hash, name, role)
		VALUES ($1, $2, $3,
			CASE WHEN EXISTS (SELECT 1 FROM users) THEN 'reader' ELSE 'admin' END)
		RETURNING id, role, created_at
	`

	user := &models.User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
	}

	err := r.db.QueryRowxContext(ctx, query, email, passwordHash, name).
		Scan(&user.ID, &user.Role, &user.CreatedAt)
	if isUniqueViolation(err, "single_admin") {
		retry := `
			INSERT INTO users (email, password_hash, name, role)
			VALUES ($1, $2, $3, 'reader')
			RETURNING id, role, created_at
		`
		err = r.db.QueryRowxContext(ctx, retry, email, passwordHash, name).
			Scan(&user.ID, &user.Role, &user.CreatedAt)
	}
	if err != nil {
		if isUniqueViolation(err, "email") {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User

	query := `SELECT id, email, password_hash, name, role, created_at FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT id, email, password_hash, name, role, created_at FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}
