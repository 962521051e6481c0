package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDataPath = "/srv/data/islands.xlsx"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultDataPath, cfg.DataPath)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Contains(t, cfg.TileURL, "basemaps.cartocdn.com/light_all")
	assert.Contains(t, cfg.TileAttribution, "OpenStreetMap")
	assert.Equal(t, "abcd", cfg.TileSubdomains)
	assert.Equal(t, 64, cfg.ChartCacheSize)
	assert.Contains(t, cfg.PageAuthor, "Dibuat oleh")
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("DATA_PATH", testDataPath)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("TILE_URL", "https://tile.openstreetmap.org/{z}/{x}/{y}.png")
	t.Setenv("TILE_ATTRIBUTION", "&copy; OpenStreetMap")
	t.Setenv("TILE_SUBDOMAINS", "abc")
	t.Setenv("CHART_CACHE_SIZE", "8")
	t.Setenv("PAGE_AUTHOR", "Tim Riset")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, testDataPath, cfg.DataPath)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "https://tile.openstreetmap.org/{z}/{x}/{y}.png", cfg.TileURL)
	assert.Equal(t, "&copy; OpenStreetMap", cfg.TileAttribution)
	assert.Equal(t, "abc", cfg.TileSubdomains)
	assert.Equal(t, 8, cfg.ChartCacheSize)
	assert.Equal(t, "Tim Riset", cfg.PageAuthor)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestLoad_ChartCacheSizeTooSmall(t *testing.T) {
	t.Setenv("CHART_CACHE_SIZE", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHART_CACHE_SIZE")
}

func TestLoad_ChartCacheSizeNotNumber(t *testing.T) {
	t.Setenv("CHART_CACHE_SIZE", "lots")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHART_CACHE_SIZE")
}

func TestLoad_EmptyDataPathRejected(t *testing.T) {
	t.Setenv("DATA_PATH", "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATA_PATH")
}

func TestLoad_TileSubdomains(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"explicit empty", "", "", false},
		{"osm hosts", "abc", "abc", false},
		{"not a host letter", "a,b", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TILE_SUBDOMAINS", tt.value)

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "TILE_SUBDOMAINS")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.TileSubdomains)
		})
	}
}
