package initializers

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverMySQL  = "mysql"
	DriverMemory = "memory"

	MailSMTP = "smtp"
	MailHTTP = "http"
)

type Config struct {
	Port string

	StoreDriver string
	DatabaseDSN string

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	ResetCodeTTL     time.Duration
	ResetMaxAttempts int

	RedisAddr     string
	RedisPassword string

	MailTransport     string
	FromEmail         string
	FromEmailPassword string
	FromEmailSMTP     string
	SMTPAddress       string
	MailAPIURL        string
	MailAPIKey        string

	AllowedOrigins []string
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getDuration(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, raw)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	raw := getEnv(key, strconv.Itoa(fallback))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, raw, err)
	}
	return n, nil
}

// LoadConfig reads the process environment and rejects values the server cannot run with.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		StoreDriver:       strings.ToLower(getEnv("STORE_DRIVER", DriverMySQL)),
		DatabaseDSN:       getEnv("DATABASE_DSN", ""),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		MailTransport:     strings.ToLower(getEnv("MAIL_TRANSPORT", MailSMTP)),
		FromEmail:         getEnv("FROM_EMAIL", ""),
		FromEmailPassword: os.Getenv("FROM_EMAIL_PASSWORD"),
		FromEmailSMTP:     getEnv("FROM_EMAIL_SMTP", ""),
		SMTPAddress:       getEnv("SMTP_ADDRESS", ""),
		MailAPIURL:        getEnv("MAIL_API_URL", ""),
		MailAPIKey:        os.Getenv("MAIL_API_KEY"),
	}

	var err error
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", "720h"); err != nil {
		return Config{}, err
	}
	if cfg.ResetCodeTTL, err = getDuration("RESET_CODE_TTL", "10m"); err != nil {
		return Config{}, err
	}
	if cfg.BcryptCost, err = getInt("BCRYPT_COST", 10); err != nil {
		return Config{}, err
	}
	if cfg.ResetMaxAttempts, err = getInt("RESET_MAX_ATTEMPTS", 5); err != nil {
		return Config{}, err
	}
	if cfg.ResetMaxAttempts < 1 {
		return Config{}, errors.New("RESET_MAX_ATTEMPTS: must be at least 1")
	}

	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	switch cfg.StoreDriver {
	case DriverMySQL:
		if cfg.DatabaseDSN == "" {
			return Config{}, errors.New("DATABASE_DSN is required with the mysql store driver")
		}
	case DriverMemory:
	default:
		return Config{}, fmt.Errorf("STORE_DRIVER: unknown driver %q", cfg.StoreDriver)
	}

	switch cfg.MailTransport {
	case MailSMTP, MailHTTP:
	default:
		return Config{}, fmt.Errorf("MAIL_TRANSPORT: unknown transport %q", cfg.MailTransport)
	}

	for _, origin := range strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:4200"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	return cfg, nil
}
