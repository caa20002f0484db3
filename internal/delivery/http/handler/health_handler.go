package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker - внешняя зависимость, которую опрашивает /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler отвечает на liveness запросы.
// Разрешение идентификаторов не зависит от внешних сервисов, поэтому
// недоступная зависимость переводит статус в "degraded", но не в 503.
type HealthHandler struct {
	checks map[string]HealthChecker
	logger *zap.Logger
}

// NewHealthHandler создает новый экземпляр HealthHandler
func NewHealthHandler(logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		checks: make(map[string]HealthChecker),
		logger: logger,
	}
}

// Register добавляет зависимость под именем name
func (h *HealthHandler) Register(name string, checker HealthChecker) {
	h.checks[name] = checker
}

// Health godoc
// @Summary Health check
// @Description Статус сервиса и опрос подключённых зависимостей (Redis статистики)
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	status := "healthy"
	results := make(map[string]string, len(h.checks))
	for name, checker := range h.checks {
		if err := checker.Health(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			results[name] = err.Error()
			status = "degraded"
			continue
		}
		results[name] = "ok"
	}

	return c.JSON(fiber.Map{
		"status": status,
		"checks": results,
		"time":   time.Now(),
	})
}
