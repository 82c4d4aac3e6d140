package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/recicla365/app-ecopontos/internal/logging"
	"github.com/recicla365/app-ecopontos/internal/storage"
	"github.com/recicla365/app-ecopontos/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	healthTimeout   = 3 * time.Second
)

// HealthHandlers reports the health of the storage backends
type HealthHandlers struct {
	checks map[string]storage.Backend
	logger *logging.SafeLogger
}

// NewHealthHandlers creates a health handler pinging each named backend
func NewHealthHandlers(checks map[string]storage.Backend, logger *logging.SafeLogger) *HealthHandlers {
	return &HealthHandlers{
		checks: checks,
		logger: logger,
	}
}

// HealthCheck godoc
// @Summary Verificação de saúde
// @Description Verifica a saúde da API e do armazenamento. Retorna status detalhado para cada serviço.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Todos os serviços estão saudáveis"
// @Failure 503 {object} HealthResponse "Um ou mais serviços estão indisponíveis"
// @Router /health [get]
func (h *HealthHandlers) HealthCheck(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "HealthCheck")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "health_check"),
		attribute.String("service", "health"),
	)

	health := HealthResponse{
		Status:    statusHealthy,
		Timestamp: time.Now(),
		Services:  make(map[string]string, len(h.checks)),
	}

	for name, backend := range h.checks {
		pingCtx, pingSpan, done := utils.TraceExternalService(ctx, name, "ping")
		pingCtx, cancel := context.WithTimeout(pingCtx, healthTimeout)
		err := backend.Ping(pingCtx)
		cancel()

		if err != nil {
			utils.RecordErrorInSpan(pingSpan, err, map[string]interface{}{
				"service.name":      name,
				"service.operation": "ping",
			})
			health.Status = statusUnhealthy
			health.Services[name] = statusUnhealthy
			h.logger.Warn("health check failed", zap.String("service", name), zap.Error(err))
		} else {
			utils.AddSpanAttribute(pingSpan, "service.status", statusHealthy)
			health.Services[name] = statusHealthy
		}
		done()
	}

	h.logger.Debug("HealthCheck completed",
		zap.String("status", health.Status),
		zap.Duration("total_duration", time.Since(startTime)))

	if health.Status != statusHealthy {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}
	c.JSON(http.StatusOK, health)
}
