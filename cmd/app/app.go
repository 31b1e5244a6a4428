package app

import (
	"context"
	"log"

	"goblog/internal/config"
	"goblog/internal/database"
	"goblog/internal/mailer"
	"goblog/internal/repository"
	"goblog/internal/service"
)

// App wires config, database, repositories and services together.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	repo := repository.NewRepository(db.DB)

	// drop sessions that expired while the server was down
	if n, err := repo.Session.DeleteExpired(context.Background()); err != nil {
		log.Printf("Warning: failed to clean up expired sessions: %v", err)
	} else if n > 0 {
		log.Printf("Removed %d expired sessions", n)
	}

	sender := mailer.NewSMTPSender(cfg.SMTP)
	services := service.NewService(repo, sender)

	return db, repo, services
}
