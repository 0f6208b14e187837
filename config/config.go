package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Email holds mailer settings for the optional signup confirmation emails.
type Email struct {
	Provider           string
	FromAddress        string
	FromName           string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string
}

// Config holds all configuration for the server.
type Config struct {
	Environment        string
	Port               string
	CORSAllowedOrigins []string
	Email              Email
}

// Load loads configuration from environment variables, attempting to load a
// .env file first when not in production. A missing .env is not an error:
// in production we rely on system environment variables.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		Port:        os.Getenv("PORT"),
		Email: Email{
			Provider:           os.Getenv("EMAIL_PROVIDER"),
			FromAddress:        os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:           os.Getenv("EMAIL_FROM_NAME"),
			SESRegion:          os.Getenv("SES_REGION"),
			SESAccessKeyID:     os.Getenv("SES_ACCESS_KEY_ID"),
			SESSecretAccessKey: os.Getenv("SES_SECRET_ACCESS_KEY"),
		},
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}
