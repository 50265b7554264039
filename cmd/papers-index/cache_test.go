package main

import (
	"testing"
	"time"

	"github.com/Veraticus/papers-index/internal/config"
	"github.com/stretchr/testify/assert"
)

func labels(cfg *config.Config) []string {
	rows := statsRows(cfg, 3)
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Label
	}
	return out
}

func TestStatsRows(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want []string
	}{
		{
			name: "sqlite shows the database path",
			cfg:  config.Config{CacheBackend: config.CacheSQLite, CachePath: "/tmp/cache.db", CacheTTL: time.Hour},
			want: []string{"Backend", "Path", "Entries", "TTL"},
		},
		{
			name: "redis shows the server address",
			cfg:  config.Config{CacheBackend: config.CacheRedis, CachePath: "/tmp/cache.db", RedisAddr: "localhost:6379"},
			want: []string{"Backend", "Address", "Entries", "TTL"},
		},
		{
			name: "memory has no location",
			cfg:  config.Config{CacheBackend: config.CacheMemory, CachePath: "/tmp/cache.db"},
			want: []string{"Backend", "Entries", "TTL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, labels(&tt.cfg))
		})
	}

	rows := statsRows(&config.Config{CacheBackend: config.CacheRedis, RedisAddr: "cache:6379"}, 3)
	assert.Equal(t, "cache:6379", rows[1].Value)
	assert.Equal(t, 3, rows[2].Value)
}
