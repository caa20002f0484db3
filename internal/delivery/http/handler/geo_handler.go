package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/geoid-microservice/internal/domain"
	"github.com/geoid-microservice/internal/pkg/errors"
	"github.com/geoid-microservice/internal/pkg/utils"
	"github.com/geoid-microservice/internal/pkg/validator"
	"github.com/geoid-microservice/internal/usecase"
	"github.com/geoid-microservice/internal/usecase/dto"
)

// GeoHandler - обработчик запросов разрешения идентификаторов
type GeoHandler struct {
	geoUC      *usecase.GeoUseCase
	batchLimit int
	logger     *zap.Logger
}

// NewGeoHandler - создание нового GeoHandler
func NewGeoHandler(geoUC *usecase.GeoUseCase, batchLimit int, logger *zap.Logger) *GeoHandler {
	return &GeoHandler{
		geoUC:      geoUC,
		batchLimit: batchLimit,
		logger:     logger,
	}
}

// Resolve godoc
// @Summary Разрешение выбора в идентификатор
// @Description Возвращает числовой идентификатор для уровня и выбранных названий. Неизвестное название даёт id 0 и found=false.
// @Tags Geo
// @Accept json
// @Produce json
// @Param request body dto.ResolveRequest true "Уровень и фильтры"
// @Success 200 {object} utils.SuccessResponse{data=dto.ResolveResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/geo/resolve [post]
func (h *GeoHandler) Resolve(c *fiber.Ctx) error {
	var req dto.ResolveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": err.Error(),
		}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.geoUC.Resolve(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// BatchResolve godoc
// @Summary Пакетное разрешение
// @Description Разрешает до 100 выборов, порядок результатов совпадает с порядком запроса
// @Tags Geo
// @Accept json
// @Produce json
// @Param request body dto.BatchResolveRequest true "Список выборов"
// @Success 200 {object} utils.SuccessResponse{data=dto.BatchResolveResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/batch/geo/resolve [post]
func (h *GeoHandler) BatchResolve(c *fiber.Ctx) error {
	start := time.Now()

	var req dto.BatchResolveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": err.Error(),
		}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if h.batchLimit > 0 && len(req.Items) > h.batchLimit {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"items": len(req.Items),
			"limit": h.batchLimit,
		}))
	}

	result, err := h.geoUC.BatchResolve(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    len(result.Results),
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// ListLevels godoc
// @Summary Список уровней
// @Tags Geo
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.LevelsResponse}
// @Router /api/v1/geo/levels [get]
func (h *GeoHandler) ListLevels(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.LevelsResponse{Levels: domain.Levels()}, nil)
}

// ListEntries godoc
// @Summary Таблица уровня
// @Description Все записи уровня в исходном порядке. Для pays список пуст.
// @Tags Geo
// @Produce json
// @Param level path string true "Уровень (pays, region, departement, intercommunalite, commune)"
// @Success 200 {object} utils.SuccessResponse{data=dto.EntriesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/geo/levels/{level}/entries [get]
func (h *GeoHandler) ListEntries(c *fiber.Ctx) error {
	level, err := parseLevelParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.geoUC.ListEntries(c.UserContext(), level)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// NameByID godoc
// @Summary Название по идентификатору
// @Tags Geo
// @Produce json
// @Param level path string true "Уровень"
// @Param id path int true "Идентификатор"
// @Success 200 {object} utils.SuccessResponse{data=dto.NameResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/geo/levels/{level}/ids/{id} [get]
func (h *GeoHandler) NameByID(c *fiber.Ctx) error {
	level, err := parseLevelParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.geoUC.NameByID(c.UserContext(), level, id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// DescribeID godoc
// @Summary Уровень и название по идентификатору
// @Description Уровень определяется по диапазону идентификатора
// @Tags Geo
// @Produce json
// @Param id path int true "Идентификатор"
// @Success 200 {object} utils.SuccessResponse{data=dto.NameResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/geo/ids/{id} [get]
func (h *GeoHandler) DescribeID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.geoUC.DescribeID(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Search godoc
// @Summary Поиск по названиям
// @Description Поиск подстроки без учёта регистра и диакритики ("ile" находит "Île-de-France")
// @Tags Geo
// @Produce json
// @Param level query string true "Уровень (кроме pays)"
// @Param q query string true "Поисковый запрос"
// @Param limit query int false "Максимальное количество результатов" default(20)
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/geo/search [get]
func (h *GeoHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	req.Level = domain.Level(c.Query("level"))
	req.Query = c.Query("q")
	req.Limit = c.QueryInt("limit", 20)

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.geoUC.Search(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Limit: req.Limit,
	})
}

func parseLevelParam(c *fiber.Ctx) (domain.Level, error) {
	raw := c.Params("level")
	level, err := domain.ParseLevel(raw)
	if err != nil {
		return "", errors.ErrInvalidLevel.WithDetails(map[string]interface{}{
			"level": raw,
		})
	}
	return level, nil
}

func parseIDParam(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, errors.ErrInvalidIdentifier.WithDetails(map[string]interface{}{
			"id": c.Params("id"),
		})
	}
	return id, nil
}
