package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"

	var buf bytes.Buffer
	log := newLogger(&buf, cfg, &LoggerService{})
	log.Info().Str("email", "a@b.c").Msg("user fetched")
	log.Debug().Msg("filtered out")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "user fetched", entry["message"])
	assert.Equal(t, "lightbnb", entry["service"])
	assert.Equal(t, "production", entry["environment"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewLoggerConsole(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Format = "console"
	cfg.Logging.Level = "debug"

	var buf bytes.Buffer
	log := newLogger(&buf, cfg, nil)
	log.Debug().Msg("visible")

	assert.Contains(t, buf.String(), "visible")
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestLoggerServiceWithoutLicense(t *testing.T) {
	svc, err := NewLoggerService(config.DefaultObservabilityConfig())
	require.NoError(t, err)
	assert.Nil(t, svc.GetApplication())

	ctx := context.Background()
	txnCtx, end := svc.StartTransaction(ctx, "noop")
	assert.Equal(t, ctx, txnCtx)
	end(errors.New("ignored"))
	svc.Shutdown()
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	assert.Equal(t, int(tracelog.LogLevelDebug), GetPgxTraceLogLevel(zerolog.DebugLevel))
	assert.Equal(t, int(tracelog.LogLevelError), GetPgxTraceLogLevel(zerolog.FatalLevel))
	assert.Equal(t, int(tracelog.LogLevelNone), GetPgxTraceLogLevel(zerolog.Disabled))
}
