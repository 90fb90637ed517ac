package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config stores all configuration of the transducer.
// The values are read by viper from the app.env file or from environment variables.
type Config struct {
	Environment    string `mapstructure:"ENVIRONMENT" validate:"oneof=development production"`
	LogLevel       string `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn error disabled"`
	RuleSet        string `mapstructure:"RULE_SET" validate:"required"`
	InputEncoding  string `mapstructure:"INPUT_ENCODING"`
	NoMatchPolicy  string `mapstructure:"NO_MATCH_POLICY" validate:"oneof=fail echo"`
	ReadSize       int    `mapstructure:"READ_SIZE" validate:"gte=0"`
	MaxTokenLen    int    `mapstructure:"MAX_TOKEN_LEN" validate:"gte=0"`
	MaxWarnings    int    `mapstructure:"MAX_WARNINGS" validate:"gte=0"`
	WarningsPolicy string `mapstructure:"WARNINGS_POLICY" validate:"oneof=keep none drop truncate"`
	BufferSize     int    `mapstructure:"BUFFER_SIZE" validate:"gte=0"`
}

var defaults = map[string]any{
	"ENVIRONMENT":     "production",
	"LOG_LEVEL":       "info",
	"RULE_SET":        "passthrough",
	"INPUT_ENCODING":  "",
	"NO_MATCH_POLICY": "fail",
	"READ_SIZE":       0,
	"MAX_TOKEN_LEN":   0,
	"MAX_WARNINGS":    100,
	"WARNINGS_POLICY": "truncate",
	"BUFFER_SIZE":     0,
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig reads configuration from path/app.env, if it exists, and from the environment.
// Environment variables take precedence over the file.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	// defaults also make every key known to Unmarshal, which AutomaticEnv alone does not
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			err = fmt.Errorf("cannot read config file: %w", err)
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return
	}

	err = config.Validate()
	return
}

// Validate checks the values against their constraints.
func (config *Config) Validate() error {
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
