package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the service needs at startup. It is loaded once
// from the environment and passed into constructors, never read ambiently.
type Config struct {
	// Server
	ServerPort string

	// Database
	DatabaseURL string

	// Session
	SessionSecret string
	SessionMaxAge int
	CookieSecure  bool

	// OAuth
	GoogleKey         string
	GoogleSecret      string
	GoogleCallbackURL string

	// Media host (S3-compatible)
	AccountID       string
	AccessKeyID     string
	AccessKeySecret string
	BucketName      string

	// PublicURL is a fmt pattern with a single %s for the object key,
	// e.g. "https://media.example.com/%s".
	PublicURL string
}

// Load reads the Config from environment variables. Missing required
// variables are reported together so a broken deploy fails with one message.
func Load() (*Config, error) {
	cfg := &Config{}

	var missing []string
	required := func(key string) string {
		v := os.Getenv(key)
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}

	cfg.DatabaseURL = required("DSN")
	cfg.SessionSecret = required("SESSION_SECRET")
	cfg.GoogleKey = required("GOOGLE_KEY")
	cfg.GoogleSecret = required("GOOGLE_SECRET")
	cfg.AccountID = required("ACCOUNT_ID")
	cfg.AccessKeyID = required("ACCESS_KEY_ID")
	cfg.AccessKeySecret = required("ACCESS_KEY_SECRET")
	cfg.BucketName = required("BUCKET_NAME")
	cfg.PublicURL = required("PUBLIC_URL")

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	cfg.ServerPort = getEnvString("SERVER_PORT", "3000")
	cfg.SessionMaxAge = getEnvInt("SESSION_MAX_AGE", 86400*30)
	cfg.CookieSecure = getEnvBool("COOKIE_SECURE", false)
	cfg.GoogleCallbackURL = getEnvString("GOOGLE_CALLBACK_URL",
		fmt.Sprintf("http://localhost:%s/auth/google/callback", cfg.ServerPort))

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}
