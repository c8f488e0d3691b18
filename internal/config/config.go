package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`

	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`

	SentryEnabled bool `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// prometheus metrics server
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`

	// collaborator services
	ChatServiceBaseURL string `toml:"chat_service_base_url"`

	TracingEnabled bool `toml:"tracing_enabled"`

	Anomaly  AnomalyConfig  `toml:"anomaly"`
	Presence PresenceConfig `toml:"presence"`
	Rollover RolloverConfig `toml:"rollover"`
}

// AnomalyConfig carries the detector thresholds. The ratios encode
// product judgment rather than derived constraints, so they are kept
// configurable instead of hard-coded.
type AnomalyConfig struct {
	RepsImprovementFactor   float64 `toml:"reps_improvement_factor"`
	RepsDropFactor          float64 `toml:"reps_drop_factor"`
	RepsUnusualFactor       float64 `toml:"reps_unusual_factor"`
	WeightIncreaseFactor    float64 `toml:"weight_increase_factor"`
	WeightDropFactor        float64 `toml:"weight_drop_factor"`
	WeightLowTolerance      float64 `toml:"weight_low_tolerance"`
	WeightHighTolerance     float64 `toml:"weight_high_tolerance"`
	RepsRetentionTolerance  float64 `toml:"reps_retention_tolerance"`
	StagnationSessionWindow int     `toml:"stagnation_session_window"`
	HistorySessionLimit     int     `toml:"history_session_limit"`
}

type PresenceConfig struct {
	WarmupDelaySeconds     int `toml:"warmup_delay_seconds"`
	PollIntervalSeconds    int `toml:"poll_interval_seconds"`
	FreshnessWindowSeconds int `toml:"freshness_window_seconds"`
}

type RolloverConfig struct {
	ResyncAttempts int `toml:"resync_attempts"`
	ResyncDelayMs  int `toml:"resync_delay_ms"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var configToml Toml
	if _, err := toml.DecodeFile(path, &configToml); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := configToml.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env [%s] is empty", env)
	}

	return cfg, nil
}
