package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/geoid-microservice/internal/domain"
	"github.com/geoid-microservice/internal/domain/repository"
	"github.com/geoid-microservice/internal/metrics"
	"github.com/geoid-microservice/internal/pkg/errors"
	"github.com/geoid-microservice/internal/pkg/geoid"
	"github.com/geoid-microservice/internal/usecase/dto"
)

// defaultSearchLimit - лимит поиска, если клиент не указал свой
const defaultSearchLimit = 20

// GeoUseCase обрабатывает разрешение географических идентификаторов
type GeoUseCase struct {
	statsRepo   repository.StatsRepository // nil, если статистика выключена
	topIDsLimit int
	source      string
	logger      *zap.Logger
}

// NewGeoUseCase создает новый экземпляр GeoUseCase.
// source - метка источника для метрик (metrics.SourceHTTP, metrics.SourceStream).
func NewGeoUseCase(
	statsRepo repository.StatsRepository,
	topIDsLimit int,
	source string,
	logger *zap.Logger,
) *GeoUseCase {
	return &GeoUseCase{
		statsRepo:   statsRepo,
		topIDsLimit: topIDsLimit,
		source:      source,
		logger:      logger,
	}
}

// Resolve разрешает выбор уровня в идентификатор; промах даёт id 0 и Found=false
func (uc *GeoUseCase) Resolve(ctx context.Context, req dto.ResolveRequest) (*dto.ResolveResponse, error) {
	if !req.Level.IsValid() {
		return nil, errors.ErrInvalidLevel.WithDetails(map[string]interface{}{
			"level": string(req.Level),
		})
	}

	id, found := geoid.Lookup(req.Level, req.Filters)

	resp := &dto.ResolveResponse{
		ID:    id,
		Level: req.Level,
		Found: found,
	}
	switch {
	case req.Level == domain.LevelCountry:
		resp.Name = domain.CountryName
	case found:
		resp.Name = req.Filters.ValueFor(req.Level)
	}

	uc.record(ctx, req.Level, id, found)

	uc.logger.Debug("Resolved geographic selection",
		zap.String("level", req.Level.String()),
		zap.Int("id", id),
		zap.Bool("found", found))

	return resp, nil
}

// BatchResolve разрешает несколько выборов, сохраняя порядок
func (uc *GeoUseCase) BatchResolve(ctx context.Context, req dto.BatchResolveRequest) (*dto.BatchResolveResponse, error) {
	results := make([]dto.ResolveResponse, 0, len(req.Items))

	for i, item := range req.Items {
		resp, err := uc.Resolve(ctx, item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		results = append(results, *resp)
	}

	return &dto.BatchResolveResponse{Results: results}, nil
}

// NameByID возвращает название по уровню и идентификатору
func (uc *GeoUseCase) NameByID(ctx context.Context, level domain.Level, id int) (*dto.NameResponse, error) {
	if !level.IsValid() {
		return nil, errors.ErrInvalidLevel.WithDetails(map[string]interface{}{
			"level": string(level),
		})
	}

	name, ok := geoid.NameFor(level, id)
	if !ok {
		return nil, errors.ErrIdentifierNotFound.WithDetails(map[string]interface{}{
			"level": string(level),
			"id":    id,
		})
	}

	return &dto.NameResponse{ID: id, Level: level, Name: name}, nil
}

// DescribeID определяет уровень по диапазону и возвращает название
func (uc *GeoUseCase) DescribeID(ctx context.Context, id int) (*dto.NameResponse, error) {
	level, ok := domain.LevelForID(id)
	if !ok {
		return nil, errors.ErrInvalidIdentifier.WithDetails(map[string]interface{}{
			"id":     id,
			"reason": "outside every level range",
		})
	}

	if level == domain.LevelCountry {
		return &dto.NameResponse{ID: id, Level: level, Name: domain.CountryName}, nil
	}

	return uc.NameByID(ctx, level, id)
}

// ListEntries возвращает таблицу уровня в исходном порядке
func (uc *GeoUseCase) ListEntries(ctx context.Context, level domain.Level) (*dto.EntriesResponse, error) {
	if !level.IsValid() {
		return nil, errors.ErrInvalidLevel.WithDetails(map[string]interface{}{
			"level": string(level),
		})
	}

	entries := geoid.Entries(level)
	if entries == nil {
		entries = []domain.GeoEntry{}
	}

	return &dto.EntriesResponse{
		Level:   level,
		Entries: entries,
		Total:   len(entries),
	}, nil
}

// Search ищет названия уровня без учёта регистра и диакритики
func (uc *GeoUseCase) Search(ctx context.Context, req dto.SearchRequest) (*dto.SearchResponse, error) {
	if !req.Level.IsValid() {
		return nil, errors.ErrInvalidLevel.WithDetails(map[string]interface{}{
			"level": string(req.Level),
		})
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	results := geoid.Search(req.Level, req.Query, limit)
	if results == nil {
		results = []domain.GeoEntry{}
	}

	return &dto.SearchResponse{
		Results: results,
		Total:   len(results),
	}, nil
}

// Statistics возвращает счётчики разрешений и размеры таблиц
func (uc *GeoUseCase) Statistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{
		Levels: map[domain.Level]domain.LevelStats{},
		TopIDs: []domain.IDCount{},
		Catalog: domain.CatalogStats{
			Regions:             len(geoid.Entries(domain.LevelRegion)),
			Departments:         len(geoid.Entries(domain.LevelDepartment)),
			InterMunicipalities: len(geoid.Entries(domain.LevelInterMunicipality)),
			Communes:            len(geoid.Entries(domain.LevelCommune)),
		},
		LastUpdated: time.Now().UTC(),
	}

	if uc.statsRepo == nil {
		return stats, nil
	}

	levels, err := uc.statsRepo.GetLevelStats(ctx)
	if err != nil {
		return nil, errors.ErrCacheError.WithDetails(map[string]interface{}{
			"error": err.Error(),
		})
	}
	for level, ls := range levels {
		stats.Levels[level] = ls
	}

	top, err := uc.statsRepo.GetTopIDs(ctx, uc.topIDsLimit)
	if err != nil {
		return nil, errors.ErrCacheError.WithDetails(map[string]interface{}{
			"error": err.Error(),
		})
	}
	for _, item := range top {
		if item.Level == domain.LevelCountry {
			item.Name = domain.CountryName
		} else if name, ok := geoid.NameFor(item.Level, item.ID); ok {
			item.Name = name
		}
		stats.TopIDs = append(stats.TopIDs, item)
	}

	return stats, nil
}

// ResetStatistics обнуляет накопленные счётчики разрешений
func (uc *GeoUseCase) ResetStatistics(ctx context.Context) error {
	if uc.statsRepo == nil {
		return errors.ErrCacheError.WithDetails(map[string]interface{}{
			"error": "resolution stats are disabled",
		})
	}

	if err := uc.statsRepo.Reset(ctx); err != nil {
		return errors.ErrCacheError.WithDetails(map[string]interface{}{
			"error": err.Error(),
		})
	}

	uc.logger.Info("Resolution stats reset")
	return nil
}

// record учитывает разрешение в метриках и статистике; ошибки статистики только логируются
func (uc *GeoUseCase) record(ctx context.Context, level domain.Level, id int, found bool) {
	outcome := domain.OutcomeMiss
	if found {
		outcome = domain.OutcomeHit
	}

	metrics.ObserveResolution(string(level), string(outcome), uc.source)

	if uc.statsRepo == nil {
		return
	}
	if err := uc.statsRepo.RecordResolution(ctx, level, id, outcome); err != nil {
		uc.logger.Warn("Failed to record resolution stats",
			zap.String("level", level.String()),
			zap.Int("id", id),
			zap.Error(err))
	}
}
