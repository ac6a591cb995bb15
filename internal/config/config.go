// Package config loads catalog settings from defaults, an optional file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds every setting the catalog reads at startup.
type Config struct {
	AppPort      string        `mapstructure:"app_port"      json:"app_port"`
	AppEnv       string        `mapstructure:"app_env"       json:"app_env"`
	JWTSecret    string        `mapstructure:"jwt_secret"    json:"-"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"     json:"token_ttl"`
	RabbitMQURL  string        `mapstructure:"rabbitmq_url"  json:"-"`
	LogLevel     string        `mapstructure:"log_level"     json:"log_level"`
	LogFile      string        `mapstructure:"log_file"      json:"log_file"`
	SeedProducts bool          `mapstructure:"seed_products" json:"seed_products"`
}

// Load reads the configuration. Environment variables (APP_PORT, JWT_SECRET, ...)
// override values from the file at path, which override the defaults. An empty
// path skips the file. There is no default jwt_secret; it must be configured.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("app_port", ":8080")
	v.SetDefault("app_env", "development")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("token_ttl", 24*time.Hour)
	v.SetDefault("rabbitmq_url", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("seed_products", true)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings the service cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.AppPort == "" {
		errs = append(errs, errors.New("app_port must not be empty"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("jwt_secret must not be empty"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("token_ttl must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
