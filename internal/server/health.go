package server

import (
	"context"
	"time"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	healthCheckTimeout = 5 * time.Second
)

// HealthReport is the result of CheckHealth.
type HealthReport struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]HealthCheck `json:"checks"`
}

// Healthy reports whether every check passed.
func (r *HealthReport) Healthy() bool {
	return r.Status == StatusHealthy
}

// HealthCheck is the outcome of a single dependency check.
type HealthCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type pinger interface {
	Ping(ctx context.Context) error
}

// CheckHealth pings the database and reports the overall status.
// Failures are logged and, when New Relic is enabled, recorded as
// HealthCheckError custom events.
func (s *Server) CheckHealth(ctx context.Context) *HealthReport {
	return s.checkHealth(ctx, s.DB)
}

func (s *Server) checkHealth(ctx context.Context, db pinger) *HealthReport {
	start := time.Now()

	logger := s.Logger.With().
		Str("operation", "health_check").
		Logger()

	report := &HealthReport{
		Status:      StatusHealthy,
		Timestamp:   start.UTC(),
		Environment: s.Config.Primary.Env,
		Checks:      make(map[string]HealthCheck),
	}

	pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	dbStart := time.Now()
	if err := db.Ping(pingCtx); err != nil {
		report.Status = StatusUnhealthy
		report.Checks["database"] = HealthCheck{
			Status:       StatusUnhealthy,
			ResponseTime: time.Since(dbStart).String(),
			Error:        err.Error(),
		}

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(dbStart)).
			Msg("database health check failed")

		s.recordHealthEvent(map[string]interface{}{
			"check_type":       "database",
			"operation":        "health_check",
			"error_type":       "database_unhealthy",
			"response_time_ms": time.Since(dbStart).Milliseconds(),
			"error_message":    err.Error(),
		})
	} else {
		report.Checks["database"] = HealthCheck{
			Status:       StatusHealthy,
			ResponseTime: time.Since(dbStart).String(),
		}

		logger.Info().
			Dur("response_time", time.Since(dbStart)).
			Msg("database health check passed")
	}

	if !report.Healthy() {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")
		return report
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")
	return report
}

func (s *Server) recordHealthEvent(params map[string]interface{}) {
	if s.LoggerService == nil || s.LoggerService.GetApplication() == nil {
		return
	}
	s.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", params)
}
