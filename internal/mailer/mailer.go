// Package mailer relays contact-form submissions to the blog owner over
// a plain SMTP relay with STARTTLS.
package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"strconv"

	"goblog/internal/config"
)

// ErrDelivery marks any relay failure: connection, STARTTLS, auth or
// transmission. The contact handler branches on it.
var ErrDelivery = errors.New("message delivery failed")

const subject = "New Blog Message"

type Message struct {
	Name  string
	Email string
	Phone string
	Body  string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPSender struct {
	cfg config.SMTP
}

func NewSMTPSender(cfg config.SMTP) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send transmits the message to the configured recipient. The dial honors
// ctx; the SMTP conversation itself is a blocking call on the request
// goroutine, no retry.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: connect to %s: %v", ErrDelivery, addr, err)
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("%w: handshake: %v", ErrDelivery, err)
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
		return fmt.Errorf("%w: starttls: %v", ErrDelivery, err)
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("%w: auth: %v", ErrDelivery, err)
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return fmt.Errorf("%w: mail from: %v", ErrDelivery, err)
	}
	if err := client.Rcpt(s.cfg.Recipient); err != nil {
		return fmt.Errorf("%w: rcpt to: %v", ErrDelivery, err)
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("%w: data: %v", ErrDelivery, err)
	}
	if _, err := wc.Write(formatMessage(s.cfg.From, s.cfg.Recipient, msg)); err != nil {
		wc.Close()
		return fmt.Errorf("%w: write: %v", ErrDelivery, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("%w: close: %v", ErrDelivery, err)
	}

	// The relay accepts the message when the data stream closes; a
	// failed QUIT after that point is not a delivery failure.
	if err := client.Quit(); err != nil {
		log.Printf("mailer: quit after delivery: %v", err)
	}

	return nil
}

func formatMessage(from, to string, msg Message) []byte {
	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\nName: %s\nEmail: %s\nPhone: %s\nMessage: %s\n",
		from, to, subject, msg.Name, msg.Email, msg.Phone, msg.Body,
	)
	return []byte(body)
}
