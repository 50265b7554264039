package config

import (
	"testing"
	"time"

	"github.com/Veraticus/papers-index/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", "/home/clerk")

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, DefaultPapersURL, cfg.PapersURL)
	assert.Equal(t, DefaultCalendarURL, cfg.CalendarURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, CacheSQLite, cfg.CacheBackend)
	assert.Equal(t, "/home/clerk/.local/share/papers-index/sitting-dates.db", cfg.CachePath)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
	assert.Empty(t, cfg.OutputPath)
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("fetch.workers", 8)
	v.Set("cache.backend", CacheRedis)
	v.Set("cache.redis_addr", "redis:6379")
	v.Set("api.timeout", "5s")

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, CacheRedis, cfg.CacheBackend)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			PapersURL:    DefaultPapersURL,
			CalendarURL:  DefaultCalendarURL,
			CacheBackend: CacheMemory,
			Workers:      1,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing papers url", mutate: func(c *Config) { c.PapersURL = "" }, wantErr: common.ErrMissingConfig},
		{name: "missing calendar url", mutate: func(c *Config) { c.CalendarURL = "" }, wantErr: common.ErrMissingConfig},
		{name: "no workers", mutate: func(c *Config) { c.Workers = 0 }, wantErr: common.ErrInvalidConfig},
		{name: "unknown backend", mutate: func(c *Config) { c.CacheBackend = "disk" }, wantErr: common.ErrInvalidConfig},
		{name: "sqlite without path", mutate: func(c *Config) { c.CacheBackend = CacheSQLite }, wantErr: common.ErrMissingConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
