package config

import (
	"fmt"
	"os"
	"strings"
)

// Config is built once at process start and handed to each component at
// construction time; nothing reads the environment after Load returns.
type Config struct {
	Addr    string
	BaseURL string

	MongoURL string
	DBName   string

	StripeAPIKey        string
	StripeWebhookSecret string
	Currency            string

	JWTSecret string

	CORSOrigins []string

	ContactNotifyTo string
	SMTPAddr        string
	SMTPFrom        string
}

func Load() (Config, error) {
	cfg := Config{
		Addr:    envOr("ADDR", ":8080"),
		BaseURL: envOr("BASE_URL", "http://localhost:8080"),

		MongoURL: os.Getenv("MONGO_URL"),
		DBName:   envOr("DB_NAME", "gulum_mobilya"),

		StripeAPIKey:        os.Getenv("STRIPE_API_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		Currency:            envOr("CURRENCY", "eur"),

		JWTSecret: envOr("JWT_SECRET", "gulum-mobilya-secret-key-2024"),

		ContactNotifyTo: os.Getenv("CONTACT_NOTIFY_TO"),
		SMTPAddr:        os.Getenv("SMTP_ADDR"),
		SMTPFrom:        os.Getenv("SMTP_FROM"),
	}

	for _, o := range strings.Split(envOr("CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if cfg.MongoURL == "" {
		return Config{}, fmt.Errorf("MONGO_URL environment variable is required")
	}
	return cfg, nil
}

// StripeConfigured reports whether hosted checkout can be used at all.
// The API stays up without it; checkout endpoints return an error.
func (c Config) StripeConfigured() bool { return c.StripeAPIKey != "" }

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
