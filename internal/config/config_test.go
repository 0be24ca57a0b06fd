package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3001", cfg.APIURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Zero(t, cfg.RequestTimeout)
	assert.Zero(t, cfg.RateLimit)
	assert.False(t, cfg.Redis.SnapshotEnabled())
	assert.Equal(t, 24*time.Hour, cfg.Redis.SnapshotTTL)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("INVENTORY_API_URL", "http://inventory.local:8080/")
	t.Setenv("INVENTORY_REQUEST_TIMEOUT", "3s")
	t.Setenv("INVENTORY_REDIS_ADDR", "localhost:6379")

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "http://inventory.local:8080", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.Redis.SnapshotEnabled())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{name: "Relative URL", key: KeyAPIURL, val: "localhost"},
		{name: "Negative timeout", key: KeyRequestTimeout, val: "-1s"},
		{name: "Negative rate", key: KeyRateLimit, val: -2.0},
		{name: "Unknown log format", key: KeyLogFormat, val: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.val)

			_, err := Load(v)
			assert.Error(t, err)
		})
	}
}
