package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthome-backend/config"
	"smarthome-backend/internal/db"
)

func TestConfigPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, defaultConfigPath, configPath(""))

	t.Setenv("CONFIG_PATH", "/etc/smarthome.yaml")
	assert.Equal(t, "/etc/smarthome.yaml", configPath(""))
	assert.Equal(t, "custom.yaml", configPath("custom.yaml"))
}

func TestSetupLogging(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	setupLogging(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	log.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("shown")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "smarthomed", entry["service"])

	setupLogging(config.LogConfig{Level: "nonsense"}, &buf)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestPinger(t *testing.T) {
	gormDB, err := db.Init(&config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	assert.NoError(t, pinger(gormDB)(context.Background()))

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	assert.Error(t, pinger(gormDB)(context.Background()))
}
