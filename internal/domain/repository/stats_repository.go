package repository

import (
	"context"

	"github.com/geoid-microservice/internal/domain"
)

// StatsRepository интерфейс для счётчиков разрешений
type StatsRepository interface {
	// RecordResolution учитывает одно разрешение: hit/miss по уровню и счётчик выданного id
	RecordResolution(ctx context.Context, level domain.Level, id int, outcome domain.ResolutionOutcome) error

	// GetLevelStats возвращает счётчики hit/miss по всем уровням
	GetLevelStats(ctx context.Context) (map[domain.Level]domain.LevelStats, error)

	// GetTopIDs возвращает наиболее часто выдаваемые идентификаторы
	GetTopIDs(ctx context.Context, limit int) ([]domain.IDCount, error)

	// Reset обнуляет все счётчики
	Reset(ctx context.Context) error
}
