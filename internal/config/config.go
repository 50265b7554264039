package config

import (
	"fmt"
	"time"

	"github.com/Veraticus/papers-index/internal/common"
	"github.com/spf13/viper"
)

// Cache backends for sitting dates.
const (
	CacheMemory = "memory"
	CacheSQLite = "sqlite"
	CacheRedis  = "redis"
)

// Defaults for every configurable key.
const (
	DefaultPapersURL   = "http://services.paperslaid.parliament.uk/papers/list/daily.xml"
	DefaultCalendarURL = "https://whatson-api.parliament.uk/calendar"
	DefaultTimeout     = 30 * time.Second
	DefaultWorkers     = 4
	DefaultCachePath   = "$HOME/.local/share/papers-index/sitting-dates.db"
	DefaultRedisAddr   = "localhost:6379"
	DefaultCacheTTL    = 24 * time.Hour
	DefaultOutputName  = "for-id7.xml"
	DefaultRawTemplate = "as_downloaded_papers_%s.xml"
)

// Config holds the resolved settings for one run.
type Config struct {
	PapersURL    string
	CalendarURL  string
	CacheBackend string
	CachePath    string
	RedisAddr    string
	OutputPath   string
	LogLevel     string
	LogFormat    string
	Timeout      time.Duration
	CacheTTL     time.Duration
	Workers      int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.papers_url", DefaultPapersURL)
	v.SetDefault("api.calendar_url", DefaultCalendarURL)
	v.SetDefault("api.timeout", DefaultTimeout)
	v.SetDefault("fetch.workers", DefaultWorkers)
	v.SetDefault("cache.backend", CacheSQLite)
	v.SetDefault("cache.path", DefaultCachePath)
	v.SetDefault("cache.redis_addr", DefaultRedisAddr)
	v.SetDefault("cache.ttl", DefaultCacheTTL)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load reads settings from v, falling back to the global viper instance.
// Precedence is whatever v was set up with: flags, PAPERS_ env vars, config
// file, then the defaults from SetDefaults.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.GetViper()
	}

	cfg := &Config{
		PapersURL:    v.GetString("api.papers_url"),
		CalendarURL:  v.GetString("api.calendar_url"),
		Timeout:      v.GetDuration("api.timeout"),
		Workers:      v.GetInt("fetch.workers"),
		CacheBackend: v.GetString("cache.backend"),
		CachePath:    ExpandPath(v.GetString("cache.path")),
		RedisAddr:    v.GetString("cache.redis_addr"),
		CacheTTL:     v.GetDuration("cache.ttl"),
		OutputPath:   ExpandPath(v.GetString("output.path")),
		LogLevel:     v.GetString("logging.level"),
		LogFormat:    v.GetString("logging.format"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the settings can be used.
func (c *Config) Validate() error {
	if c.PapersURL == "" {
		return fmt.Errorf("%w: api.papers_url", common.ErrMissingConfig)
	}
	if c.CalendarURL == "" {
		return fmt.Errorf("%w: api.calendar_url", common.ErrMissingConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: fetch.workers must be at least 1, got %d", common.ErrInvalidConfig, c.Workers)
	}

	switch c.CacheBackend {
	case CacheMemory, CacheRedis:
	case CacheSQLite:
		if c.CachePath == "" {
			return fmt.Errorf("%w: cache.path", common.ErrMissingConfig)
		}
	default:
		return fmt.Errorf("%w: unknown cache backend %q", common.ErrInvalidConfig, c.CacheBackend)
	}

	return nil
}
