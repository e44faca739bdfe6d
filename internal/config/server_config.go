package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	CorsOrigins string `mapstructure:"cors_origins"`
}

// CorsOriginList splits the configured comma list; empty means allow all.
func (config ServerConfig) CorsOriginList() []string {
	if config.CorsOrigins == "" {
		return nil
	}

	var origins []string
	for _, origin := range strings.Split(config.CorsOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (config ServerConfig) validate() error {
	if config.Port <= 0 {
		return fmt.Errorf("invalid variable: port must be positive")
	}
	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("server.port", "PORT"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("server.metrics_port", "METRICS_PORT"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("server.cors_origins", "CORS_ORIGINS"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
