package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	PublicDir   string // built SPA assets served at /
	LogFile     string
	CORSOrigins string // comma-separated, "*" allows all
	Seed        bool   // load demo catalog on startup
}

func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		PublicDir:   getEnv("PUBLIC_DIR", "./web/public"),
		LogFile:     getEnv("LOG_FILE", "./homeharbor.log"),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		Seed:        getEnv("SEED_DEMO_DATA", "true") != "false",
	}

	log.Printf("[config] PORT=%s PUBLIC_DIR=%s LOG_FILE=%s CORS=%s SEED=%t",
		cfg.Port, cfg.PublicDir, cfg.LogFile, cfg.CORSOrigins, cfg.Seed)
	return cfg
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
