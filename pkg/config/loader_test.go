package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/config"
)

type serverConfig struct {
	Addr  string `env:"TEST_SERVER_ADDR" envDefault:":9090"`
	Debug bool   `env:"TEST_SERVER_DEBUG" envDefault:"false"`
}

type requiredConfig struct {
	Secret string `env:"TEST_REQUIRED_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":9090", cfg.Addr)
		assert.False(t, cfg.Debug)
	})

	t.Run("cached after first load", func(t *testing.T) {
		var first serverConfig
		require.NoError(t, config.Load(&first))

		// Env changes after the first parse are not observed.
		t.Setenv("TEST_SERVER_ADDR", ":7070")
		var second serverConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first, second)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer rejected", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[serverConfig](nil), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("no panic on success", func(t *testing.T) {
		assert.NotPanics(t, func() {
			var cfg serverConfig
			config.MustLoad(&cfg)
		})
	})
}
