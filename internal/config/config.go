package config

import (
	"time"

	"github.com/nhlstats/player-comparison-service/internal/logger"
	"github.com/nhlstats/player-comparison-service/internal/nhl"
)

// Config is the root of everything the binaries need at startup. Loaded from
// yaml with APP_-prefixed env overrides; defaults fill the gaps before the
// validator runs, so a sparse config file is fine.
type Config struct {
	App    AppConfig           `mapstructure:"app"`
	Server ServerConfig        `mapstructure:"server"`
	NHL    NHLConfig           `mapstructure:"nhl"`
	Logger logger.LoggerConfig `mapstructure:"logger"`
}

// AppConfig identifies the running service.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env" validate:"oneof=dev staging prod"`
}

// ServerConfig tunes the HTTP listener.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"gte=1,lte=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// NHLConfig tunes the upstream API client plus the fallback query values
// handlers apply when a request omits season or game type.
type NHLConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	UserAgent         string        `mapstructure:"user_agent"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second" validate:"gt=0"`
	Burst             int           `mapstructure:"burst" validate:"gte=1"`
	DefaultSeason     string        `mapstructure:"default_season" validate:"len=8,number"`
	DefaultGameType   string        `mapstructure:"default_game_type" validate:"oneof=2 3"`
}

// Default returns the built-in configuration, no file required. The CLI uses
// it when no config flag is given.
func Default() *Config {
	var c Config
	c.setDefaults()
	return &c
}

func (c *Config) setDefaults() {
	if c.App.Name == "" {
		c.App.Name = "player-comparison-service"
	}
	if c.App.Version == "" {
		c.App.Version = "0.1.0"
	}
	if c.App.Env == "" {
		c.App.Env = "prod"
	}

	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 60 * time.Second
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = 120 * time.Second
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}

	if c.NHL.BaseURL == "" {
		c.NHL.BaseURL = nhl.DefaultBaseURL
	}
	if c.NHL.Timeout <= 0 {
		c.NHL.Timeout = 10 * time.Second
	}
	if c.NHL.UserAgent == "" {
		c.NHL.UserAgent = c.App.Name + "/" + c.App.Version
	}
	if c.NHL.RequestsPerSecond <= 0 {
		c.NHL.RequestsPerSecond = 10
	}
	if c.NHL.Burst <= 0 {
		c.NHL.Burst = 5
	}
	if c.NHL.DefaultSeason == "" {
		c.NHL.DefaultSeason = nhl.CurrentSeason
	}
	if c.NHL.DefaultGameType == "" {
		c.NHL.DefaultGameType = nhl.GameTypeRegularSeason
	}

	// the logger carries its own defaults; only the service identity comes from here
	if c.Logger.ServiceName == "" {
		c.Logger.ServiceName = c.App.Name
	}
	if c.Logger.ServiceVersion == "" {
		c.Logger.ServiceVersion = c.App.Version
	}
	if c.Logger.Env == "" {
		c.Logger.Env = c.App.Env
	}
}
