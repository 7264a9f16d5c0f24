package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 20, cfg.Apollo.PerPage)
	assert.Equal(t, "br", cfg.Serper.Country)
	assert.Equal(t, "pt-br", cfg.Serper.Locale)
	assert.Equal(t, "d[6]", cfg.Serper.DateRestriction)
	assert.Equal(t, 5, cfg.Serper.RateLimit)
	assert.Equal(t, "claude-haiku-4-5-20251001", cfg.Anthropic.Model)
	assert.Equal(t, int64(2048), cfg.Anthropic.MaxTokens)
	assert.InDelta(t, 0.3, cfg.Anthropic.Temperature, 0.001)
	assert.Equal(t, "11,500", cfg.Search.EmployeeRange)
	assert.Equal(t, 5, cfg.Pipeline.MaxConcurrentCompanies)
	assert.Equal(t, 4, cfg.Pipeline.MaxConcurrentContacts)

	// Credentials have no defaults.
	assert.Empty(t, cfg.Apollo.Key)
	assert.Empty(t, cfg.Lusha.Key)
	assert.Empty(t, cfg.Serper.Key)
	assert.Empty(t, cfg.Anthropic.Key)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PROSPECT_APOLLO_KEY", "apollo-secret")
	t.Setenv("PROSPECT_LUSHA_KEY", "lusha-secret")
	t.Setenv("PROSPECT_SERVER_PORT", "9090")
	t.Setenv("PROSPECT_LOG_LEVEL", "debug")
	t.Setenv("PROSPECT_SEARCH_EMPLOYEE_RANGE", "1,200")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "apollo-secret", cfg.Apollo.Key)
	assert.Equal(t, "lusha-secret", cfg.Lusha.Key)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "1,200", cfg.Search.EmployeeRange)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))

	err := InitLogger(LogConfig{Level: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
