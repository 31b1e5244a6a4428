package service

import (
	"context"

	"goblog/internal/models"
	"goblog/internal/repository"
)

type CommentService interface {
	Add(ctx context.Context, text string, author *models.User, postID int) (*models.Comment, error)
	ListByPost(ctx context.Context, postID int) ([]models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{commentRepo: commentRepo, postRepo: postRepo}
}

// Add creates a comment bound to an existing post and its author. The
// parent post is looked up first so a comment can never reference a post
// that was deleted in the meantime.
func (s *commentService) Add(ctx context.Context, text string, author *models.User, postID int) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.Create(ctx, text, author.ID, postID)
	if err != nil {
		return nil, err
	}

	comment.AuthorName = author.Name
	return comment, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID int) ([]models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}
