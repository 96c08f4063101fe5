package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	orig := log.Logger
	t.Cleanup(func() {
		log.Logger = orig
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	})

	t.Run("sets info level and unix timestamps", func(t *testing.T) {
		Init("production")

		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
		assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	})

	t.Run("debug output is suppressed", func(t *testing.T) {
		Init("production")

		var buf bytes.Buffer
		log.Logger = zerolog.New(&buf)

		log.Debug().Msg("hidden")
		log.Info().Msg("visible")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "visible")
	})
}
