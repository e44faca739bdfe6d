package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
	AdminUsername string        `mapstructure:"admin_username"`
	AdminPassword string        `mapstructure:"admin_password"`
	AdminEmail    string        `mapstructure:"admin_email"`
}

func (config AuthConfig) validate() error {

	if config.JWTSecret == "" {
		return fmt.Errorf("missing variable: jwt_secret")
	}

	if config.TokenTTL <= 0 {
		return fmt.Errorf("invalid variable: token_ttl must be positive")
	}

	return nil
}

func (config AuthConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("auth.jwt_secret", "JWT_SECRET"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("auth.token_ttl", "TOKEN_TTL"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("auth.admin_username", "ADMIN_USERNAME"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("auth.admin_password", "ADMIN_PASSWORD"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("auth.admin_email", "ADMIN_EMAIL"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
