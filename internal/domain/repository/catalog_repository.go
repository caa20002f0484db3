package repository

import (
	"context"

	"github.com/geoid-microservice/internal/domain"
)

// CatalogRepository определяет методы для хранения каталога идентификаторов в БД
type CatalogRepository interface {
	// Upsert вставляет или обновляет записи, возвращает количество затронутых строк
	Upsert(ctx context.Context, entries []domain.GeoEntry) (int64, error)

	// ListByLevels возвращает записи указанных уровней, отсортированные по id
	ListByLevels(ctx context.Context, levels []domain.Level) ([]domain.GeoEntry, error)

	// GetByID возвращает запись по id (nil, nil если не найдена)
	GetByID(ctx context.Context, id int) (*domain.GeoEntry, error)
}
