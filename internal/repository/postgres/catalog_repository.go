package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/geoid-microservice/internal/domain"
	"github.com/geoid-microservice/internal/domain/repository"
)

// upsertChunkSize - записей в одном INSERT (3 параметра на запись, лимит postgres 65535)
const upsertChunkSize = 500

type catalogRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewCatalogRepository создает репозиторий каталога идентификаторов
func NewCatalogRepository(db *DB) repository.CatalogRepository {
	return &catalogRepository{
		db:     db,
		logger: db.logger,
	}
}

// Upsert вставляет записи, для существующих id обновляет уровень и название
func (r *catalogRepository) Upsert(ctx context.Context, entries []domain.GeoEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO geo_identifiers (id, level, name)
		VALUES (:id, :level, :name)
		ON CONFLICT (id) DO UPDATE
		SET level = EXCLUDED.level,
		    name = EXCLUDED.name,
		    updated_at = NOW()
		WHERE geo_identifiers.level IS DISTINCT FROM EXCLUDED.level
		   OR geo_identifiers.name IS DISTINCT FROM EXCLUDED.name
	`

	var affected int64
	for start := 0; start < len(entries); start += upsertChunkSize {
		end := start + upsertChunkSize
		if end > len(entries) {
			end = len(entries)
		}

		res, err := r.db.NamedExecContext(ctx, query, entries[start:end])
		if err != nil {
			r.logger.Error("Failed to upsert geo identifiers",
				zap.Int("chunk_start", start),
				zap.Int("chunk_size", end-start),
				zap.Error(err))
			return affected, fmt.Errorf("upsert geo identifiers: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return affected, fmt.Errorf("rows affected: %w", err)
		}
		affected += n
	}

	r.logger.Debug("Geo identifiers upserted",
		zap.Int("entries", len(entries)),
		zap.Int64("affected", affected))
	return affected, nil
}

// ListByLevels возвращает записи уровней по возрастанию id
func (r *catalogRepository) ListByLevels(ctx context.Context, levels []domain.Level) ([]domain.GeoEntry, error) {
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = string(l)
	}

	query := `
		SELECT id, level, name
		FROM geo_identifiers
		WHERE level = ANY($1)
		ORDER BY id
	`

	var entries []domain.GeoEntry
	if err := r.db.SelectContext(ctx, &entries, query, pq.Array(names)); err != nil {
		r.logger.Error("Failed to list geo identifiers", zap.Strings("levels", names), zap.Error(err))
		return nil, fmt.Errorf("list geo identifiers: %w", err)
	}

	return entries, nil
}

// GetByID возвращает запись по id
func (r *catalogRepository) GetByID(ctx context.Context, id int) (*domain.GeoEntry, error) {
	query := `SELECT id, level, name FROM geo_identifiers WHERE id = $1`

	var entry domain.GeoEntry
	if err := r.db.GetContext(ctx, &entry, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get geo identifier", zap.Int("id", id), zap.Error(err))
		return nil, fmt.Errorf("get geo identifier %d: %w", id, err)
	}

	return &entry, nil
}
