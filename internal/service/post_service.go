package service

import (
	"context"
	"time"

	"goblog/internal/models"
	"goblog/internal/repository"
)

// dateLayout matches the human-readable creation date the original site
// showed on every post.
const dateLayout = "January 02, 2006"

type CreatePostRequest struct {
	Title    string `validate:"required"`
	Subtitle string `validate:"required"`
	Body     string `validate:"required"`
	ImgURL   string `validate:"required,url"`
}

type PostService interface {
	List(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id int) (*models.Post, error)
	Create(ctx context.Context, req CreatePostRequest, author *models.User) (*models.Post, error)
	Update(ctx context.Context, id int, req CreatePostRequest) error
	Delete(ctx context.Context, id int) error
}

type postService struct {
	postRepo repository.PostRepository
	now      func() time.Time
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo, now: time.Now}
}

func (s *postService) List(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.ListNewestFirst(ctx)
}

func (s *postService) Get(ctx context.Context, id int) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// Create stamps the post with today's date and the acting admin as author.
func (s *postService) Create(ctx context.Context, req CreatePostRequest, author *models.User) (*models.Post, error) {
	post := &models.Post{
		AuthorID:   author.ID,
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		Date:       s.now().Format(dateLayout),
		Body:       req.Body,
		ImgURL:     req.ImgURL,
		AuthorName: author.Name,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// Update overwrites the four mutable fields; id, author and date survive.
func (s *postService) Update(ctx context.Context, id int, req CreatePostRequest) error {
	return s.postRepo.Update(ctx, id, req.Title, req.Subtitle, req.Body, req.ImgURL)
}

func (s *postService) Delete(ctx context.Context, id int) error {
	return s.postRepo.Delete(ctx, id)
}
