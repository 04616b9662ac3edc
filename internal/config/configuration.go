package config

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	// WebServer Configuration
	WebServerPort int `mapstructure:"WEBSERVER_PORT"`

	// Database Configuration
	DatabaseDSN     string `mapstructure:"DATABASE_DSN" validate:"required"`
	DatabaseRetries int    `mapstructure:"DATABASE_RETRIES"`

	// YouTube Data API
	YouTubeAPIKey string `mapstructure:"YOUTUBE_API_KEY" validate:"required"`

	// OpenRouter; optional, the advice endpoints reject requests when unset
	OpenRouterAPIKey string `mapstructure:"OPENROUTER_API_KEY"`
	OpenRouterModel  string `mapstructure:"OPENROUTER_MODEL"`

	// Language for analysis responses
	AnalysisLanguage string `mapstructure:"ANALYSIS_LANGUAGE" validate:"oneof=en ko"`
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(c Config) {
	val := reflect.ValueOf(c)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag != "" {
			viper.BindEnv(tag)
		}
	}
}

func loadFromEnv() (*Config, error) {
	bindEnv(Config{})
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("WEBSERVER_PORT", 8080)
	viper.SetDefault("DATABASE_RETRIES", 10)
	viper.SetDefault("ANALYSIS_LANGUAGE", "en")

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func LoadConfig(ctx context.Context) (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, err
	}

	slog.Info("Loaded configuration", "port", cfg.WebServerPort, "language", cfg.AnalysisLanguage)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// LoadMigratorConfig validates only the database settings; the migrator
// runs without API credentials.
func LoadMigratorConfig(ctx context.Context) (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, err
	}

	if err := validator.New().Var(cfg.DatabaseDSN, "required"); err != nil {
		return nil, fmt.Errorf("validate config: DATABASE_DSN is required")
	}

	return cfg, nil
}
