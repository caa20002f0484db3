package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/geoid-microservice/internal/domain"
)

// MockStatsRepository is a mock of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) RecordResolution(ctx context.Context, level domain.Level, id int, outcome domain.ResolutionOutcome) error {
	args := m.Called(ctx, level, id, outcome)
	return args.Error(0)
}

func (m *MockStatsRepository) GetLevelStats(ctx context.Context) (map[domain.Level]domain.LevelStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.Level]domain.LevelStats), args.Error(1)
}

func (m *MockStatsRepository) GetTopIDs(ctx context.Context, limit int) ([]domain.IDCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IDCount), args.Error(1)
}

func (m *MockStatsRepository) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockCatalogRepository is a mock of CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) Upsert(ctx context.Context, entries []domain.GeoEntry) (int64, error) {
	args := m.Called(ctx, entries)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) ListByLevels(ctx context.Context, levels []domain.Level) ([]domain.GeoEntry, error) {
	args := m.Called(ctx, levels)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeoEntry), args.Error(1)
}

func (m *MockCatalogRepository) GetByID(ctx context.Context, id int) (*domain.GeoEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeoEntry), args.Error(1)
}
