package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/isowyrm/isowyrm/internal/api"
	"github.com/isowyrm/isowyrm/internal/config"
	"github.com/isowyrm/isowyrm/internal/database"
	"github.com/isowyrm/isowyrm/internal/repository"
)

func main() {
	cfg := config.Load()

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		log.Fatal("Failed to create data directory:", err)
	}
	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	repo := repository.NewActivityRepository(database.GetDB())
	router := api.SetupRouter(cfg, repo)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
