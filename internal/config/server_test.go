package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadServer_Defaults(t *testing.T) {
	for _, k := range []string{"API_PORT", "API_ENV", "LOG_LEVEL", "SEGMENTS_FILE", "CORS_ALLOWED_ORIGINS", "ROUND_CACHE_TTL"} {
		t.Setenv(k, "")
	}
	s := LoadServer(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "8080", s.Port)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, []string{"*"}, s.CORSOrigins)
	assert.Equal(t, time.Hour, s.RoundTTL)
	assert.False(t, s.Production())
}

func TestLoadServer_FromEnv(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("API_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEGMENTS_FILE", "/etc/capsim/segments.yaml")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://capsim.example.com")
	t.Setenv("ROUND_CACHE_TTL", "15m")

	s := LoadServer(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "9090", s.Port)
	assert.True(t, s.Production())
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "/etc/capsim/segments.yaml", s.SegmentsFile)
	assert.Equal(t, []string{"http://localhost:5173", "https://capsim.example.com"}, s.CORSOrigins)
	assert.Equal(t, 15*time.Minute, s.RoundTTL)
}
