package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	Host string
	Port string

	AccessTokenKey  string
	RefreshTokenKey string
	AccessTokenAge  time.Duration
}

func LoadConfig() *Config {
	accessTokenAge := 1800
	if raw := os.Getenv("ACCESS_TOKEN_AGE"); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil {
			accessTokenAge = val
		}
	}

	sslMode := strings.TrimSpace(os.Getenv("DB_SSLMODE"))
	if sslMode == "" {
		sslMode = "disable"
	}

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "5000"
	}

	return &Config{
		DBUser:     strings.TrimSpace(os.Getenv("DB_USER")),
		DBPassword: strings.TrimSpace(os.Getenv("DB_PASSWORD")),
		DBHost:     strings.TrimSpace(os.Getenv("DB_HOST")),
		DBPort:     strings.TrimSpace(os.Getenv("DB_PORT")),
		DBName:     strings.TrimSpace(os.Getenv("DB_NAME")),
		DBSSLMode:  sslMode,

		Host: strings.TrimSpace(os.Getenv("HOST")),
		Port: port,

		AccessTokenKey:  os.Getenv("ACCESS_TOKEN_KEY"),
		RefreshTokenKey: os.Getenv("REFRESH_TOKEN_KEY"),
		AccessTokenAge:  time.Duration(accessTokenAge) * time.Second,
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}
