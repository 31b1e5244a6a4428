package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"goblog/cmd/app"
	"goblog/internal/config"
	handlers "goblog/internal/handler"
	"goblog/internal/session"
	"goblog/internal/view"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	sessions := session.NewManager(repo.Session, cfg.SessionSecret, cfg.SessionDuration)

	renderer, err := view.New()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	h := handlers.NewHandlers(services, sessions, renderer)

	r := mux.NewRouter()
	r.HandleFunc("/", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/register", h.Register).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/logout", h.Logout).Methods(http.MethodGet)
	r.HandleFunc("/post/{id:[0-9]+}", h.ShowPost).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/about", h.About).Methods(http.MethodGet)
	r.HandleFunc("/contact", h.Contact).Methods(http.MethodGet, http.MethodPost)

	// admin-only routes
	r.Handle("/new-post", handlers.AdminOnly(http.HandlerFunc(h.NewPost))).Methods(http.MethodGet, http.MethodPost)
	r.Handle("/edit-post/{id:[0-9]+}", handlers.AdminOnly(http.HandlerFunc(h.EditPost))).Methods(http.MethodGet, http.MethodPost)
	r.Handle("/delete/{id:[0-9]+}", handlers.AdminOnly(http.HandlerFunc(h.DeletePost))).Methods(http.MethodGet)

	handlerChain := handlers.Chain(
		r,
		handlers.LoggingMiddleware,
		handlers.SessionMiddleware(sessions),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
