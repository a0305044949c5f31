package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile_Defaults(t *testing.T) {
	config, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "cinema-seating", config.App.Name)
	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, "cli", config.App.Mode)
	assert.Equal(t, "file", config.Store.Driver)
	assert.Equal(t, "movies.json", config.Store.CatalogPath)
	assert.Equal(t, "bookings.json", config.Store.LedgerPath)
	assert.Equal(t, "cinema", config.Redis.Prefix)
	assert.False(t, config.Broker.Enabled)
	assert.Equal(t, 5000.0, config.Pricing.Standard)
	assert.Equal(t, 8000.0, config.Pricing.Premium)
	assert.Equal(t, 10000.0, config.Pricing.StandardAllDay)
	assert.Equal(t, 15000.0, config.Pricing.PremiumAllDay)
}

func TestLoadConfigFile_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_MODE=http\nSTORE_DRIVER=redis\nREDIS_PREFIX=hall\nPRICE_PREMIUM=9000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("PRICE_PREMIUM", "9500")

	config, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "http", config.App.Mode)
	assert.Equal(t, "redis", config.Store.Driver)
	assert.Equal(t, "hall", config.Redis.Prefix)
	assert.Equal(t, 9500.0, config.Pricing.Premium, "environment wins over file")
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	tests := map[string]string{
		"APP_MODE":       "gui",
		"STORE_DRIVER":   "mongo",
		"PRICE_STANDARD": "-1",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := LoadConfigFile("")
			assert.Error(t, err)
		})
	}
}
