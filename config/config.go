package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Resend email configuration
	ResendAPIKey     string
	FromEmail        string
	ContactToEmail   string
	SubscribeToEmail string // optional, falls back to ContactToEmail
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		FrontendURL:      strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		ResendAPIKey:     getEnv("RESEND_API_KEY", ""),
		FromEmail:        getEnv("RESEND_FROM_EMAIL", ""),
		ContactToEmail:   getEnv("CONTACT_TO_EMAIL", ""),
		SubscribeToEmail: getEnv("BLOG_SUBSCRIBE_TO_EMAIL", ""),
	}

	// Missing email settings are reported per request by the intake
	// endpoints, never at startup.
	return cfg, nil
}

// ContactConfigured reports whether the contact intake can dispatch email.
func (c *Config) ContactConfigured() bool {
	return c.ResendAPIKey != "" && c.FromEmail != "" && c.ContactToEmail != ""
}

// SubscribeToAddress resolves the newsletter recipient, preferring the
// dedicated address and falling back to the contact inbox.
func (c *Config) SubscribeToAddress() string {
	if c.SubscribeToEmail != "" {
		return c.SubscribeToEmail
	}
	return c.ContactToEmail
}

// SubscribeConfigured reports whether the subscribe intake can dispatch email.
func (c *Config) SubscribeConfigured() bool {
	return c.ResendAPIKey != "" && c.FromEmail != "" && c.SubscribeToAddress() != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
