package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type DBConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Name            string        `mapstructure:"name"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

func (config DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		config.Host, config.User, config.Password, config.Name, config.Port, config.SSLMode)
}

func (config DBConfig) validate() error {

	var missingFields []string

	if config.Host == "" {
		missingFields = append(missingFields, "host")
	}

	if config.Name == "" {
		missingFields = append(missingFields, "name")
	}

	if config.User == "" {
		missingFields = append(missingFields, "user")
	}

	if config.Password == "" {
		missingFields = append(missingFields, "password")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func (config DBConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("db.host", "DB_HOST"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("db.port", "DB_PORT"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("db.name", "DB_NAME"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("db.user", "DB_USER"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("db.password", "DB_PASSWORD"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("db.ssl_mode", "DB_SSL_MODE"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
