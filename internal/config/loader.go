package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Load loads configuration from various sources with priority order:
// 1. Environment variables (prefixed WITNESSOS_)
// 2. Configuration file (config.yaml)
// 3. Default values
//
// There is no reload path: changed configuration requires a process restart.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/witnessos/")
	v.AddConfigPath("./configs/")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("WITNESSOS")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	overrideWithEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("port", 8080)
	v.SetDefault("log_level", "info")

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 15306)
	v.SetDefault("database.user", "root")
	v.SetDefault("database.database", "witnessos")

	v.SetDefault("cache.addr", "localhost:6379")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.default_ttl", 86400) // §4.6 default TTL

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Content-Type", "Authorization", "X-Admin-Api-Key"})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 3600)

	v.SetDefault("ephemeris.data_path", "")
	v.SetDefault("ephemeris.sidereal_mode", "lahiri")

	v.SetDefault("retention.default_days", 90)
	v.SetDefault("retention.max_days", 365)
	v.SetDefault("retention.biometric_max_days", 30)
	v.SetDefault("retention.persistence_deadline_ms", 5000)

	v.SetDefault("admin.api_key_hash", "")

	v.SetDefault("monitoring.enabled", true)
	v.SetDefault("monitoring.metrics_path", "/metrics")

	v.SetDefault("orchestrator.run_deadline", 30*time.Second)
	v.SetDefault("orchestrator.persistence_deadline", 5*time.Second)
}

// overrideWithEnvVars explicitly handles a handful of shorthand env vars on
// top of viper's automatic WITNESSOS_-prefixed env binding.
func overrideWithEnvVars(v *viper.Viper) {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			v.Set("port", p)
		}
	}
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		v.Set("environment", env)
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		v.Set("log_level", logLevel)
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		v.Set("database.host", dbURL)
	}
	if cacheURL := os.Getenv("CACHE_URL"); cacheURL != "" {
		v.Set("cache.addr", cacheURL)
	}
	if ephemPath := os.Getenv("EPHEMERIS_DATA_PATH"); ephemPath != "" {
		v.Set("ephemeris.data_path", ephemPath)
	}
	if hash := os.Getenv("ADMIN_API_KEY_HASH"); hash != "" {
		v.Set("admin.api_key_hash", hash)
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", cfg.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error", "fatal"}
	if !contains(validLogLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	validEnvironments := []string{"development", "staging", "production", "test"}
	if !contains(validEnvironments, cfg.Environment) {
		return fmt.Errorf("invalid environment: %s", cfg.Environment)
	}

	if cfg.Cache.DefaultTTL < 1 {
		return fmt.Errorf("cache default TTL must be at least 1 second")
	}

	if cfg.Retention.BiometricMaxDays < 1 || cfg.Retention.BiometricMaxDays > 30 {
		return fmt.Errorf("biometric retention cap must be in [1, 30] days")
	}

	if cfg.Retention.DefaultDays < 1 || cfg.Retention.DefaultDays > cfg.Retention.MaxDays {
		return fmt.Errorf("retention default_days must be positive and <= max_days")
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
