package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 2, cfg.DeviceBookingLimit)
	assert.Equal(t, 3*time.Hour, cfg.DeviceWindow)
	assert.Equal(t, 14, cfg.RetentionDays)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "Europe/Istanbul", cfg.Timezone)
	assert.Nil(t, cfg.Brokers())
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")

	_, err := Load()
	assert.Error(t, err)
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSOrigins: " https://a.example , ,https://b.example"}

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}
