package service

import (
	"context"
	"errors"
	"fmt"

	"goblog/internal/auth"
	"goblog/internal/models"
	"goblog/internal/repository"
)

// The two login failures stay distinct on purpose: the original site told
// the visitor which one happened, and the handlers preserve that wording.
var (
	ErrUnknownEmail  = errors.New("no account with that email")
	ErrWrongPassword = errors.New("incorrect password")
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register hashes the password and creates the account. Email uniqueness
// is the database constraint, not a pre-check, so two concurrent
// registrations with the same email cannot both succeed.
func (s *authService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	user, err := s.userRepo.Create(ctx, email, passwordHash, name)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownEmail
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrWrongPassword
	}

	return user, nil
}
