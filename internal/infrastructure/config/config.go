package config

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs session tokens. The process refuses to start without it.
	JWTSecret string `env:"JWT_SECRET, required"`

	// AdminEmails is the comma-separated admin allow-list, matched
	// case-insensitively against the account email on every request.
	AdminEmails string `env:"ADMIN_EMAILS"`

	TokenTTL      time.Duration `env:"TOKEN_TTL,       default=168h"`
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL, default=1h"`
	ResetBaseURL  string        `env:"RESET_BASE_URL,  default=http://localhost:3000/reset-password"`

	Mongo MongoConfig
	Redis RedisConfig
	SMTP  SMTPConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=backoffice"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASS"`
	From     string `env:"SMTP_FROM,    default=no-reply@example.com"`
	ContactTo string `env:"CONTACT_INBOX, default=hello@example.com"`
}

// Load reads configuration from environment variables using go-envconfig.
// Missing required settings fail fast here rather than degrade later.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("config: JWT_SECRET must not be empty")
	}
	return &cfg, nil
}

// AdminAllowList splits the configured admin emails, trimming blanks.
func (c *Config) AdminAllowList() []string {
	if c.AdminEmails == "" {
		return nil
	}
	parts := strings.Split(c.AdminEmails, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
