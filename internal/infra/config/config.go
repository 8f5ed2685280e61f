package config

import (
	"log"
	"os"
)

type Config struct {
	Port           string
	WebhookURL     string
	AllowedOrigins []string
}

func Load() *Config {
	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		WebhookURL: getEnv("WEBHOOK_URL", "https://n8n.liguemed.app/webhook/whatsapp-template-send"),
		AllowedOrigins: []string{
			getEnv("CLIENT_URL", "http://localhost:5173"),
			"*",
		},
	}

	if cfg.WebhookURL == "" {
		log.Fatal("WEBHOOK_URL is required")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
