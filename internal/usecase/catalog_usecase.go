package usecase

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/geoid-microservice/internal/domain"
	"github.com/geoid-microservice/internal/domain/repository"
	"github.com/geoid-microservice/internal/pkg/geoid"
)

// CatalogUseCase синхронизирует скомпилированные таблицы с каталогом в Postgres
type CatalogUseCase struct {
	catalogRepo repository.CatalogRepository
	logger      *zap.Logger
}

// NewCatalogUseCase создает новый экземпляр CatalogUseCase
func NewCatalogUseCase(catalogRepo repository.CatalogRepository, logger *zap.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Sync записывает все таблицы в БД, по одной горутине на уровень.
// Возвращает количество вставленных или изменённых строк.
func (uc *CatalogUseCase) Sync(ctx context.Context) (int64, error) {
	var affected atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for _, level := range domain.TableLevels() {
		g.Go(func() error {
			entries := geoid.Entries(level)
			n, err := uc.catalogRepo.Upsert(gctx, entries)
			if err != nil {
				return fmt.Errorf("sync %s: %w", level, err)
			}
			affected.Add(n)

			uc.logger.Debug("Catalog level synced",
				zap.String("level", level.String()),
				zap.Int("entries", len(entries)),
				zap.Int64("affected", n))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.logger.Error("Catalog sync failed", zap.Error(err))
		return affected.Load(), err
	}

	uc.logger.Info("Catalog synced", zap.Int64("affected", affected.Load()))
	return affected.Load(), nil
}

// Verify сравнивает каталог в БД со скомпилированными таблицами
func (uc *CatalogUseCase) Verify(ctx context.Context) (*domain.CatalogDrift, error) {
	stored, err := uc.catalogRepo.ListByLevels(ctx, domain.TableLevels())
	if err != nil {
		return nil, fmt.Errorf("verify catalog: %w", err)
	}

	expected := geoid.All()
	drift := diffCatalog(expected, stored)

	if drift.InSync() {
		uc.logger.Info("Catalog in sync", zap.Int("entries", drift.Expected))
	} else {
		uc.logger.Warn("Catalog drift detected",
			zap.Int("missing", len(drift.Missing)),
			zap.Int("unknown", len(drift.Unknown)),
			zap.Int("renamed", len(drift.Renamed)))
	}

	return drift, nil
}

// VerifyEntry сверяет одну запись каталога в БД с таблицей по id.
// Id без записи в таблицах и в БД даёт пустое расхождение.
func (uc *CatalogUseCase) VerifyEntry(ctx context.Context, id int) (*domain.CatalogDrift, error) {
	var expected []domain.GeoEntry
	if level, ok := domain.LevelForID(id); ok && level != domain.LevelCountry {
		if name, ok := geoid.NameFor(level, id); ok {
			expected = append(expected, domain.GeoEntry{Level: level, Name: name, ID: id})
		}
	}

	row, err := uc.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("verify catalog entry %d: %w", id, err)
	}

	var stored []domain.GeoEntry
	if row != nil {
		stored = append(stored, *row)
	}

	return diffCatalog(expected, stored), nil
}

// diffCatalog сопоставляет записи по id; результаты отсортированы по id
func diffCatalog(expected, stored []domain.GeoEntry) *domain.CatalogDrift {
	drift := &domain.CatalogDrift{
		Missing:  []domain.GeoEntry{},
		Unknown:  []domain.GeoEntry{},
		Renamed:  []domain.GeoEntry{},
		Expected: len(expected),
		Stored:   len(stored),
	}

	storedByID := make(map[int]domain.GeoEntry, len(stored))
	for _, e := range stored {
		storedByID[e.ID] = e
	}

	expectedIDs := make(map[int]struct{}, len(expected))
	for _, e := range expected {
		expectedIDs[e.ID] = struct{}{}

		s, ok := storedByID[e.ID]
		switch {
		case !ok:
			drift.Missing = append(drift.Missing, e)
		case s.Name != e.Name || s.Level != e.Level:
			drift.Renamed = append(drift.Renamed, s)
		}
	}

	for _, s := range stored {
		if _, ok := expectedIDs[s.ID]; !ok {
			drift.Unknown = append(drift.Unknown, s)
		}
	}

	for _, list := range [][]domain.GeoEntry{drift.Missing, drift.Unknown, drift.Renamed} {
		sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	}

	return drift
}
