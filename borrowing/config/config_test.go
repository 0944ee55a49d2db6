package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("KAFKA_ADDRS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("BORROWING_HTTP_PORT", "8090")

	cfg, err := load(WithLogLevel(zapcore.DebugLevel), WithWriteTimeout(time.Minute))
	require.NoError(t, err)

	require.Equal(t, "db", cfg.Database.Host)
	require.Equal(t, "5432", cfg.Database.Port)
	require.Equal(t, "secret", cfg.Database.Password)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Addrs)
	require.Equal(t, "8090", cfg.Server.Port)
	require.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
}

func TestLoad_EnvWinsOverOption(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := load(WithLogLevel(zapcore.DebugLevel))
	require.NoError(t, err)
	require.Equal(t, zapcore.WarnLevel, cfg.Log.LogLevel)
}
