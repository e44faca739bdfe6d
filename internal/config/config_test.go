package config

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {
	override := Config{
		Server: ServerConfig{
			Port:        7070,
			MetricsPort: 9200,
			CorsOrigins: "https://jobs.example.vn,https://admin.example.vn",
		},
		DB: DBConfig{
			Host:     "db.internal",
			Port:     5433,
			Name:     "jobboard",
			User:     "jobboard",
			Password: "overridePassword",
		},
		Auth: AuthConfig{
			JWTSecret:     "overrideSecret",
			TokenTTL:      12 * time.Hour,
			AdminUsername: "root",
			AdminPassword: "rootPassword",
			AdminEmail:    "root@example.vn",
		},
	}

	t.Setenv("PORT", strconv.Itoa(override.Server.Port))
	t.Setenv("METRICS_PORT", strconv.Itoa(override.Server.MetricsPort))
	t.Setenv("CORS_ORIGINS", override.Server.CorsOrigins)
	t.Setenv("DB_HOST", override.DB.Host)
	t.Setenv("DB_PORT", strconv.Itoa(override.DB.Port))
	t.Setenv("DB_NAME", override.DB.Name)
	t.Setenv("DB_USER", override.DB.User)
	t.Setenv("DB_PASSWORD", override.DB.Password)
	t.Setenv("JWT_SECRET", override.Auth.JWTSecret)
	t.Setenv("TOKEN_TTL", "12h")
	t.Setenv("ADMIN_USERNAME", override.Auth.AdminUsername)
	t.Setenv("ADMIN_PASSWORD", override.Auth.AdminPassword)
	t.Setenv("ADMIN_EMAIL", override.Auth.AdminEmail)

	cfg, err := loadConfig("../../configs/config.yaml")
	require.NoError(t, err)

	assert.Equal(t, override.Server.Port, cfg.Server.Port)
	assert.Equal(t, override.Server.MetricsPort, cfg.Server.MetricsPort)
	assert.Equal(t, override.Server.CorsOrigins, cfg.Server.CorsOrigins)
	assert.Equal(t, override.DB.Host, cfg.DB.Host)
	assert.Equal(t, override.DB.Port, cfg.DB.Port)
	assert.Equal(t, override.DB.Name, cfg.DB.Name)
	assert.Equal(t, override.DB.User, cfg.DB.User)
	assert.Equal(t, override.DB.Password, cfg.DB.Password)
	assert.Equal(t, override.Auth.JWTSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, override.Auth.TokenTTL, cfg.Auth.TokenTTL)
	assert.Equal(t, override.Auth.AdminUsername, cfg.Auth.AdminUsername)
	assert.Equal(t, override.Auth.AdminPassword, cfg.Auth.AdminPassword)
	assert.Equal(t, override.Auth.AdminEmail, cfg.Auth.AdminEmail)
}

func Test_Config_MissingSecret_ShouldFailValidation(t *testing.T) {
	cfg := Config{
		Server: ServerConfig{Port: 5000},
		DB: DBConfig{
			Host:     "localhost",
			Name:     "jobboard",
			User:     "jobboard",
			Password: "secret",
		},
		Auth: AuthConfig{TokenTTL: 24 * time.Hour},
	}

	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}

func Test_ServerConfig_CorsOriginList(t *testing.T) {
	assert.Nil(t, ServerConfig{}.CorsOriginList())
	assert.Equal(t, []string{"https://a.vn", "https://b.vn"},
		ServerConfig{CorsOrigins: "https://a.vn, https://b.vn"}.CorsOriginList())
}
