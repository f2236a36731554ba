package config

import (
	"testing"
	"time"

	"aristobox/internal/database"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"DB_DRIVER", "DB_PATH", "HTTP_ADDR", "KAFKA_BROKERS", "REDIS_ADDR",
		"EXPORT_DIR", "EXPORT_INTERVAL", "EXPORT_MARK_EXPORTED", "CATALOG_CACHE_TTL", "TIMEZONE",
	} {
		t.Setenv(k, "")
	}

	cfg := Load(zap.NewNop())
	assert.Equal(t, database.DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "aristobox.db", cfg.DB.Path)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.False(t, cfg.Kafka.Enabled())
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "exports", cfg.Export.Dir)
	assert.Zero(t, cfg.Export.Interval)
	assert.False(t, cfg.Export.MarkExported)
	assert.Equal(t, time.Local, cfg.Location)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "aristo")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "aristobox")
	t.Setenv("KAFKA_BROKERS", " k1:9092, ,k2:9092 ")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("EXPORT_INTERVAL", "24h")
	t.Setenv("EXPORT_MARK_EXPORTED", "true")
	t.Setenv("TIMEZONE", "UTC")

	cfg := Load(zap.NewNop())
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "db", cfg.DB.Host)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 24*time.Hour, cfg.Export.Interval)
	assert.True(t, cfg.Export.MarkExported)
	assert.Equal(t, time.UTC, cfg.Location)
}

func TestLoad_PanicsOnBadValues(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("EXPORT_INTERVAL", "daily")
	assert.Panics(t, func() { Load(zap.NewNop()) })
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, splitAndTrim(""))
	assert.Equal(t, []string{"a", "b"}, splitAndTrim("a, b,,"))
}
