// Package config loads application configuration from config.yaml and the
// environment, and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Data    DataConfig    `yaml:"data" mapstructure:"data"`
	Display DisplayConfig `yaml:"display" mapstructure:"display"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// DataConfig names the dataset sources. Each source may be a local file
// path or an http(s) URL. TaxonomyPath optionally overrides the built-in
// category table with a YAML file.
type DataConfig struct {
	SessionsSource   string  `yaml:"sessions_source" mapstructure:"sessions_source"`
	LocationsSource  string  `yaml:"locations_source" mapstructure:"locations_source"`
	FacilitiesSource string  `yaml:"facilities_source" mapstructure:"facilities_source"`
	TaxonomyPath     string  `yaml:"taxonomy_path" mapstructure:"taxonomy_path"`
	TimeoutSecs      int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries       int     `yaml:"max_retries" mapstructure:"max_retries"`
	RequestsPerSec   float64 `yaml:"requests_per_sec" mapstructure:"requests_per_sec"`
}

// DisplayConfig holds the fixed parts of display addresses.
type DisplayConfig struct {
	City     string `yaml:"city" mapstructure:"city"`
	Province string `yaml:"province" mapstructure:"province"`
}

// ServerConfig configures the JSON API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DROPIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("data.sessions_source", "data/Drop-in.json")
	v.SetDefault("data.locations_source", "data/Locations.json")
	v.SetDefault("data.facilities_source", "data/Facilities.geojson")
	v.SetDefault("data.timeout_secs", 30)
	v.SetDefault("data.max_retries", 3)
	v.SetDefault("data.requests_per_sec", 5)
	v.SetDefault("display.city", "Toronto")
	v.SetDefault("display.province", "ON")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
