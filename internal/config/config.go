package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	LockerLocal = "local"
	LockerRedis = "redis"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	AutoMigrate    bool   `toml:"auto_migrate"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// dashboard origins allowed by CORS
	AllowedOrigins []string `toml:"allowed_origins"`

	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// progression
	ActivityRateLimitPerMin int           `toml:"activity_rate_limit_per_min"`
	ProgressionLocker       string        `toml:"progression_locker"`
	ProgressionLockTTL      time.Duration `toml:"progression_lock_ttl"`
	ProfileCacheSizeMB      int           `toml:"profile_cache_size_mb"`
	ProfileCacheTTL         time.Duration `toml:"profile_cache_ttl"`
	EventsBufferSize        int           `toml:"events_buffer_size"`
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the config section for env,
// with defaults applied and validated.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is Load for an in-memory TOML document.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.ProgressionLocker == "" {
		c.ProgressionLocker = LockerLocal
	}
	if c.ProgressionLockTTL == 0 {
		c.ProgressionLockTTL = 10 * time.Second
	}
	if c.ProfileCacheSizeMB == 0 {
		c.ProfileCacheSizeMB = 16
	}
	if c.ProfileCacheTTL == 0 {
		c.ProfileCacheTTL = 5 * time.Minute
	}
	if c.EventsBufferSize == 0 {
		c.EventsBufferSize = 256
	}
	if c.ActivityRateLimitPerMin == 0 {
		c.ActivityRateLimitPerMin = 120
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port: %d", c.Port))
	}
	if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
		errs = append(errs, errors.New("postgres host, port and db name must be set"))
	}
	switch c.ProgressionLocker {
	case LockerLocal:
	case LockerRedis:
		if c.RedisHost == "" || c.RedisPort == "" {
			errs = append(errs, errors.New("redis locker requires redis host and port"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown progression locker: %s", c.ProgressionLocker))
	}
	if c.ProfileCacheSizeMB < 0 {
		errs = append(errs, errors.New("profile cache size cannot be negative"))
	}
	return errors.Join(errs...)
}
