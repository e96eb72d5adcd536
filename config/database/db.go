package database

import (
	"database/sql"
	"time"

	"catatanku/config/database/migrations"
	"catatanku/internal/config"
	"catatanku/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func Connect(cfg *config.Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		logger.Sugar.Fatalf("Failed to open database connection: %v", err)
	}

	// Retry a few times in case of temporary DNS/network blips
	for i := 0; i < 5; i++ {
		if err = db.Ping(); err == nil {
			logger.Sugar.Info("Successfully connected to the database")
			return db
		}
		logger.Sugar.Infof("Database connection failed, retrying in 2s... (%v)", err)
		time.Sleep(2 * time.Second)
	}
	logger.Sugar.Fatalf("Could not connect to database after retries: %v", err)
	return nil
}

// Migrate applies the embedded schema migrations.
func Migrate(db *sql.DB) {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Sugar.Fatalf("Failed to set migration dialect: %v", err)
	}
	if err := goose.Up(db, "."); err != nil {
		logger.Sugar.Fatalf("Failed to run migrations: %v", err)
	}
}
