package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PHARMADESK_DB", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()
	require.Equal(t, "pharmacy.db", cfg.DatabasePath)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PHARMADESK_DB", "/tmp/test-pharmacy.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	require.Equal(t, "/tmp/test-pharmacy.db", cfg.DatabasePath)
	require.Equal(t, "debug", cfg.LogLevel)
}
