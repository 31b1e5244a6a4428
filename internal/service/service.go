package service

import (
	"goblog/internal/mailer"
	"goblog/internal/repository"
)

type Service struct {
	Auth    AuthService
	Post    PostService
	Comment CommentService
	Contact ContactService
}

func NewService(repo *repository.Repository, sender mailer.Sender) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User),
		Post:    NewPostService(repo.Post),
		Comment: NewCommentService(repo.Comment, repo.Post),
		Contact: NewContactService(sender),
	}
}
