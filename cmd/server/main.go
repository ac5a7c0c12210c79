package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobify/internal/ai"
	"jobify/internal/auth"
	"jobify/internal/config"
	"jobify/internal/database"
	"jobify/internal/extract"
	"jobify/internal/handlers"
	"jobify/internal/server"
	"jobify/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := database.Open(cfg.DB)
	if err != nil {
		log.Fatalf("failed to connect DB: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	if err := database.SeedAdmin(db, cfg.Admin); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	store, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatalf("storage error: %v", err)
	}

	var analyzer *ai.Analyzer
	model, err := ai.NewModel(context.Background(), cfg.AI)
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		log.Printf("AI API key not set, resume analysis is disabled")
	case err != nil:
		log.Fatalf("AI model error: %v", err)
	default:
		analyzer = ai.NewAnalyzer(model)
	}

	sessionStore, err := auth.NewStore(cfg.Session.Secret, cfg.Production())
	if err != nil {
		log.Fatalf("session store error: %v", err)
	}

	h := handlers.New(db, store, extract.NewFetcher(), extract.New(), analyzer, cfg.Server.WebDir)
	r := server.NewRouter(cfg, h, sessionStore)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
