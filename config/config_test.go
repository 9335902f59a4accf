package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/securedash?sslmode=disable")
	t.Setenv("PORT", "8080")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "development")
	t.Setenv("SESSION_SECRET", "")

	cfg := Load()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "secure-dash", cfg.Service.Name)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, DevSessionSecret, cfg.Session.Secret)
	assert.True(t, cfg.Session.UsingDevSecret)
	assert.False(t, cfg.Session.CookieSecure)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "")

	cfg := Load()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestLoad_ProductionRejectsDevSecret(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", DevSessionSecret)

	cfg := Load()
	require.Error(t, cfg.Validate())
}

func TestLoad_ProductionForcesSecureCookie(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "an-actually-strong-secret")
	t.Setenv("SESSION_COOKIE_SECURE", "false")

	cfg := Load()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Session.CookieSecure)
	assert.False(t, cfg.Session.UsingDevSecret)
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "missing database url",
			env:  map[string]string{"DATABASE_URL": ""},
			want: "DATABASE_URL",
		},
		{
			name: "non numeric port",
			env:  map[string]string{"PORT": "http"},
			want: "PORT",
		},
		{
			name: "short secret",
			env:  map[string]string{"SESSION_SECRET": "tiny"},
			want: "SESSION_SECRET",
		},
		{
			name: "bad sample rate",
			env:  map[string]string{"TRACING_SAMPLE_RATE": "3.5"},
			want: "TRACING_SAMPLE_RATE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv("APP_ENV", "development")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := Load().Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_SessionTTLOverride(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "development")
	t.Setenv("SESSION_TTL", "1h")

	cfg := Load()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.Hour, cfg.Session.TTL)
}
