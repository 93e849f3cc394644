package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.setDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// validate checks the sections this package owns. The logger section
// validates itself inside logger.New, after applying its own defaults.
func (c *Config) validate() error {
	v := validator.New()
	for _, section := range []any{c.App, c.Server, c.NHL} {
		if err := v.Struct(section); err != nil {
			return fmt.Errorf("config validation error: %w", err)
		}
	}
	return nil
}
