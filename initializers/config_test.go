package initializers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_DSN", "TOKEN_TTL", "BCRYPT_COST", "RESET_CODE_TTL", "RESET_MAX_ATTEMPTS",
		"REDIS_ADDR", "MAIL_TRANSPORT", "ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORE_DRIVER", "memory")
}

func TestLoadConfigDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, 720*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10*time.Minute, cfg.ResetCodeTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 5, cfg.ResetMaxAttempts)
	assert.Equal(t, MailSMTP, cfg.MailTransport)
	assert.Equal(t, []string{"http://localhost:4200"}, cfg.AllowedOrigins)
}

func TestLoadConfigOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("RESET_MAX_ATTEMPTS", "3")
	t.Setenv("MAIL_TRANSPORT", "HTTP")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 3, cfg.ResetMaxAttempts)
	assert.Equal(t, MailHTTP, cfg.MailTransport)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadConfigRejects(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"missing secret", "JWT_SECRET", ""},
		{"bad ttl", "TOKEN_TTL", "forever"},
		{"negative ttl", "RESET_CODE_TTL", "-1m"},
		{"bad cost", "BCRYPT_COST", "ten"},
		{"zero attempts", "RESET_MAX_ATTEMPTS", "0"},
		{"unknown driver", "STORE_DRIVER", "sqlite"},
		{"mysql without dsn", "STORE_DRIVER", "mysql"},
		{"unknown transport", "MAIL_TRANSPORT", "pigeon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
