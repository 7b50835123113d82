package config

import (
	"os"
	"testing"

	"github.com/gabapcia/dynamap/internal/pkg/validator"
	"github.com/gabapcia/dynamap/pkg/keycmp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()

	t.Setenv(key, "") // restores the previous value on cleanup
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		unsetenv(t, "DYNAMAP_LOG_LEVEL")
		unsetenv(t, "DYNAMAP_COMPARISON")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, keycmp.NameInvariantIgnoreCase, cfg.Comparison)
	})

	t.Run("reads environment", func(t *testing.T) {
		t.Setenv("DYNAMAP_LOG_LEVEL", "debug")
		t.Setenv("DYNAMAP_COMPARISON", "ordinal")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, Config{LogLevel: "debug", Comparison: "ordinal"}, cfg)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		t.Setenv("DYNAMAP_LOG_LEVEL", "verbose")
		t.Setenv("DYNAMAP_COMPARISON", "culture")

		cfg, err := Load()

		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.Contains(t, err.Error(), "'LogLevel'")
		assert.Contains(t, err.Error(), "'Comparison'")
		assert.Equal(t, Config{}, cfg)
	})
}

func TestConfig_Comparer(t *testing.T) {
	t.Run("known comparison", func(t *testing.T) {
		cmp, err := Config{Comparison: keycmp.NameOrdinal}.Comparer()

		require.NoError(t, err)
		assert.IsType(t, keycmp.Ordinal(), cmp)
	})

	t.Run("unknown comparison", func(t *testing.T) {
		_, err := Config{Comparison: "culture"}.Comparer()

		assert.ErrorIs(t, err, keycmp.ErrUnknownComparison)
	})
}
