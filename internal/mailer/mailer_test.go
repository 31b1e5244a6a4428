package mailer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goblog/internal/config"
)

func TestFormatMessage(t *testing.T) {
	msg := Message{
		Name:  "Carol",
		Email: "carol@example.com",
		Phone: "555-0100",
		Body:  "I love the blog!",
	}

	out := string(formatMessage("owner@example.com", "inbox@example.com", msg))

	headers, body, found := strings.Cut(out, "\r\n\r\n")
	assert.True(t, found, "message must separate headers from body")

	assert.Contains(t, headers, "Subject: New Blog Message")
	assert.Contains(t, headers, "From: owner@example.com")
	assert.Contains(t, headers, "To: inbox@example.com")

	assert.Contains(t, body, "Name: Carol")
	assert.Contains(t, body, "Email: carol@example.com")
	assert.Contains(t, body, "Phone: 555-0100")
	assert.Contains(t, body, "Message: I love the blog!")
}

func TestSendUnreachableRelay(t *testing.T) {
	// a failed connection must surface as ErrDelivery so the contact
	// handler can tell the visitor
	sender := NewSMTPSender(config.SMTP{
		Host:      "127.0.0.1",
		Port:      1,
		User:      "owner@example.com",
		Password:  "secret",
		From:      "owner@example.com",
		Recipient: "inbox@example.com",
	})

	err := sender.Send(context.Background(), Message{Name: "Carol"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDelivery)
}
