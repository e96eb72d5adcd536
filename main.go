package main

import (
	"net/http"

	"catatanku/config/database"
	"catatanku/internal/config"
	"catatanku/pkg/logger"
	"catatanku/router"

	"github.com/joho/godotenv"
)

func main() {
	logger.Init()

	if err := godotenv.Load(); err != nil {
		logger.Sugar.Info("No .env file found, using environment variables from OS")
	}

	cfg := config.LoadConfig()

	db := database.Connect(cfg)
	defer db.Close()
	database.Migrate(db)

	addr := cfg.Host + ":" + cfg.Port
	logger.Sugar.Infof("Server berjalan pada http://%s", addr)
	if err := http.ListenAndServe(addr, router.Setup(db, cfg)); err != nil {
		logger.Sugar.Fatalf("Server stopped: %v", err)
	}
}
