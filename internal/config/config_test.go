package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 30*time.Second, cfg.Server.ContextTimeout)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 10, cfg.Database.MaxRetry)
	assert.Equal(t, "127.0.0.1:6379", cfg.Cache.Addr())
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, uint64(10000000), cfg.Bloom.BitSize)
	assert.Equal(t, time.Minute, cfg.Bloom.SyncInterval)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "none", cfg.Events.Broker)
	assert.Equal(t, []string{"*"}, cfg.Cors.AllowOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":8080")
	t.Setenv("SERVER_CONTEXT_TIMEOUT", "5s")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_PATH", "/tmp/board.db")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_DB", "3")
	t.Setenv("RANK_REFRESH_INTERVAL", "2m")
	t.Setenv("RATE_LIMIT_RPS", "1.5")
	t.Setenv("EVENTS_BROKER", "kafka")
	t.Setenv("EVENTS_KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 5*time.Second, cfg.Server.ContextTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/board.db", cfg.Database.Path)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 3, cfg.Cache.DB)
	assert.Equal(t, 2*time.Minute, cfg.Rank.RefreshInterval)
	assert.InDelta(t, 1.5, cfg.RateLimit.RPS, 0.0001)
	assert.Equal(t, "kafka", cfg.Events.Broker)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Events.KafkaBrokers)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "postgres")

	_, err := Load()
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestSetupLogger(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Log{Level: "debug", Format: "json"}.SetupLogger()
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Log{Level: "nope"}.SetupLogger()
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
