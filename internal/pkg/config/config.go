package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port           string `env:"PORT,            default=8080"`
	Env            string `env:"ENV,             default=development"`
	LogLevel       string `env:"LOG_LEVEL,       default=info"`
	FrontendOrigin string `env:"FRONTEND_ORIGIN, default=http://localhost:3000"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Session   SessionConfig
	Hash      HashConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI,          default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,           default=dailymate"`

	// Transactions requires a replica set.
	Transactions bool `env:"MONGO_TRANSACTIONS, default=false"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,      default=localhost:6379"`
	DB       int    `env:"REDIS_DB,        default=0"`
	Password string `env:"REDIS_PASSWORD"`
	PoolSize int    `env:"REDIS_POOL_SIZE, default=10"`
}

type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE, default=dailymate.sid"`
	TTL        time.Duration `env:"SESSION_TTL,    default=1h"`
	Secure     bool          `env:"SESSION_SECURE, default=false"`
}

type HashConfig struct {
	Workers int `env:"HASH_WORKERS, default=4"`
	Cost    int `env:"HASH_COST,    default=10"`
}

type MailConfig struct {
	// Provider is one of log, smtp or sendgrid.
	Provider       string `env:"MAIL_PROVIDER,    default=log"`
	From           string `env:"MAIL_FROM,        default=no-reply@dailymate.app"`
	SMTPHost       string `env:"SMTP_HOST"`
	SMTPPort       int    `env:"SMTP_PORT,        default=587"`
	SMTPUser       string `env:"SMTP_USER"`
	SMTPPass       string `env:"SMTP_PASS"`
	SendgridAPIKey string `env:"SENDGRID_API_KEY"`
}

type RateLimitConfig struct {
	// Rate is requests per second per client on the auth endpoints.
	Rate  float64 `env:"AUTH_RATE_LIMIT, default=1"`
	Burst int     `env:"AUTH_RATE_BURST, default=5"`
}

func (c *Config) IsProduction() bool { return c.Env == "production" }

// Load reads a .env file when present and then the environment, which
// takes precedence.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := load(context.Background(), nil)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	ecfg := &envconfig.Config{Target: &cfg, Lookuper: lookuper}
	if lookuper == nil {
		ecfg.Lookuper = envconfig.OsLookuper()
	}
	if err := envconfig.ProcessWith(ctx, ecfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Mail.Provider {
	case "log":
	case "smtp":
		if c.Mail.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST is required when MAIL_PROVIDER=smtp")
		}
	case "sendgrid":
		if c.Mail.SendgridAPIKey == "" {
			return fmt.Errorf("SENDGRID_API_KEY is required when MAIL_PROVIDER=sendgrid")
		}
	default:
		return fmt.Errorf("unknown MAIL_PROVIDER %q", c.Mail.Provider)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Hash.Workers < 1 {
		return fmt.Errorf("HASH_WORKERS must be at least 1")
	}
	return nil
}
