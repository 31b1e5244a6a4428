package service

import (
	"context"

	"goblog/internal/mailer"
)

type ContactMessage struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"required"`
	Message string `validate:"required"`
}

type ContactService interface {
	Send(ctx context.Context, msg ContactMessage) error
}

type contactService struct {
	sender mailer.Sender
}

func NewContactService(sender mailer.Sender) ContactService {
	return &contactService{sender: sender}
}

// Send relays the visitor's message to the blog owner. A mailer.ErrDelivery
// comes back unwrapped so the contact handler can tell the visitor.
func (s *contactService) Send(ctx context.Context, msg ContactMessage) error {
	return s.sender.Send(ctx, mailer.Message{
		Name:  msg.Name,
		Email: msg.Email,
		Phone: msg.Phone,
		Body:  msg.Message,
	})
}
