package config

import (
	"github.com/spf13/viper"
)

type logLevel string

const (
	LevelInfo    logLevel = "INFO"
	LevelDebug   logLevel = "DEBUG"
	LevelWarning logLevel = "WARNING"
	LevelError   logLevel = "ERROR"
	LevelFatal   logLevel = "FATAL"
)

type LoggerConfig struct {
	LogLevel   logLevel `mapstructure:"log_level"`
	OutputFile string   `mapstructure:"output_file"`
}

func (config LoggerConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("logger.log_level", "LOG_LEVEL")
	if err != nil {
		return err
	}

	return viper.BindEnv("logger.output_file", "LOG_OUTPUT_FILE")
}
