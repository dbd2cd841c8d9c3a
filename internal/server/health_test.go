package server

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	loggerPkg "github.com/deppfellow/lightbnb/internal/logger"
)

type fakePinger struct {
	err error
	ctx context.Context
}

func (f *fakePinger) Ping(ctx context.Context) error {
	f.ctx = ctx
	return f.err
}

func newTestServer(buf *bytes.Buffer) *Server {
	log := zerolog.New(buf)
	return &Server{
		Config:        &config.Config{Primary: config.Primary{Env: "test"}},
		Logger:        &log,
		LoggerService: &loggerPkg.LoggerService{},
	}
}

func TestCheckHealth(t *testing.T) {
	t.Run("healthy database", func(t *testing.T) {
		var buf bytes.Buffer
		db := &fakePinger{}

		report := newTestServer(&buf).checkHealth(context.Background(), db)

		assert.True(t, report.Healthy())
		assert.Equal(t, "test", report.Environment)
		require.Contains(t, report.Checks, "database")
		assert.Equal(t, StatusHealthy, report.Checks["database"].Status)
		assert.Empty(t, report.Checks["database"].Error)
		assert.Contains(t, buf.String(), "health check passed")

		_, hasDeadline := db.ctx.Deadline()
		assert.True(t, hasDeadline)
	})

	t.Run("unreachable database", func(t *testing.T) {
		var buf bytes.Buffer
		db := &fakePinger{err: errors.New("connection refused")}

		report := newTestServer(&buf).checkHealth(context.Background(), db)

		assert.False(t, report.Healthy())
		assert.Equal(t, StatusUnhealthy, report.Status)
		assert.Equal(t, "connection refused", report.Checks["database"].Error)
		assert.Contains(t, buf.String(), "database health check failed")
		assert.Contains(t, buf.String(), `"operation":"health_check"`)
	})
}

func TestShutdownWithoutDatabase(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(&buf)

	require.NoError(t, s.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), "server shut down")
}
