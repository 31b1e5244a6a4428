package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"goblog/internal/mailer"
	"goblog/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, email, passwordHash, name string) (*models.User, error) {
	args := m.Called(ctx, email, passwordHash, name)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int) (*models.Post, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*models.Post)
	return post, args.Error(1)
}

func (m *MockPostRepository) ListNewestFirst(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	posts, _ := args.Get(0).([]models.Post)
	return posts, args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, id int, title, subtitle, body, imgURL string) error {
	args := m.Called(ctx, id, title, subtitle, body, imgURL)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, text string, authorID, postID int) (*models.Comment, error) {
	args := m.Called(ctx, text, authorID, postID)
	comment, _ := args.Get(0).(*models.Comment)
	return comment, args.Error(1)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID int) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	comments, _ := args.Get(0).([]models.Comment)
	return comments, args.Error(1)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
