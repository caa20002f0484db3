package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/geoid-microservice/internal/pkg/utils"
	"github.com/geoid-microservice/internal/usecase"
)

// StatsHandler обрабатывает запросы для статистики
type StatsHandler struct {
	geoUC  *usecase.GeoUseCase
	logger *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(geoUC *usecase.GeoUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		geoUC:  geoUC,
		logger: logger,
	}
}

// GetStatistics godoc
// @Summary Get resolution statistics
// @Description Возвращает счётчики разрешений по уровням, самые частые идентификаторы и размеры таблиц
// @Tags Statistics
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Statistics}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	h.logger.Debug("Handling get statistics request")

	stats, err := h.geoUC.Statistics(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}
