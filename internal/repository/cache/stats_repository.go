package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/geoid-microservice/internal/domain"
	"github.com/geoid-microservice/internal/domain/repository"
)

type statsRepository struct {
	client    *redis.Client
	logger    *zap.Logger
	levelsKey string
	idsKey    string
}

// NewStatsRepository создает репозиторий счётчиков разрешений.
// Счётчики уровней хранятся в hash <prefix>:levels (поле "<level>:<outcome>"),
// выданные id - в sorted set <prefix>:ids.
func NewStatsRepository(r *Redis, keyPrefix string) repository.StatsRepository {
	if keyPrefix == "" {
		keyPrefix = "geoid:stats"
	}
	return &statsRepository{
		client:    r.Client(),
		logger:    r.logger,
		levelsKey: keyPrefix + ":levels",
		idsKey:    keyPrefix + ":ids",
	}
}

// RecordResolution учитывает разрешение одним пайплайном
func (r *statsRepository) RecordResolution(
	ctx context.Context,
	level domain.Level,
	id int,
	outcome domain.ResolutionOutcome,
) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, r.levelsKey, levelField(level, outcome), 1)
		if outcome == domain.OutcomeHit {
			pipe.ZIncrBy(ctx, r.idsKey, 1, strconv.Itoa(id))
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to record resolution",
			zap.String("level", level.String()),
			zap.Int("id", id),
			zap.Error(err))
		return fmt.Errorf("record resolution: %w", err)
	}
	return nil
}

// GetLevelStats возвращает hit/miss по уровням
func (r *statsRepository) GetLevelStats(ctx context.Context) (map[domain.Level]domain.LevelStats, error) {
	raw, err := r.client.HGetAll(ctx, r.levelsKey).Result()
	if err != nil {
		r.logger.Error("Failed to read level stats", zap.Error(err))
		return nil, fmt.Errorf("get level stats: %w", err)
	}

	result := make(map[domain.Level]domain.LevelStats)
	for field, value := range raw {
		level, outcome, ok := parseLevelField(field)
		if !ok {
			r.logger.Warn("Skipping malformed stats field", zap.String("field", field))
			continue
		}
		count, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			r.logger.Warn("Skipping non-numeric stats value",
				zap.String("field", field),
				zap.String("value", value))
			continue
		}

		stats := result[level]
		switch outcome {
		case domain.OutcomeHit:
			stats.Hits = count
		case domain.OutcomeMiss:
			stats.Misses = count
		}
		result[level] = stats
	}

	return result, nil
}

// GetTopIDs возвращает самые частые id по убыванию
func (r *statsRepository) GetTopIDs(ctx context.Context, limit int) ([]domain.IDCount, error) {
	if limit <= 0 {
		return nil, nil
	}

	members, err := r.client.ZRevRangeWithScores(ctx, r.idsKey, 0, int64(limit-1)).Result()
	if err != nil {
		r.logger.Error("Failed to read top ids", zap.Error(err))
		return nil, fmt.Errorf("get top ids: %w", err)
	}

	result := make([]domain.IDCount, 0, len(members))
	for _, m := range members {
		member, ok := m.Member.(string)
		if !ok {
			continue
		}
		id, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		level, _ := domain.LevelForID(id)
		result = append(result, domain.IDCount{
			ID:    id,
			Level: level,
			Count: int64(m.Score),
		})
	}

	return result, nil
}

// Reset удаляет все счётчики
func (r *statsRepository) Reset(ctx context.Context) error {
	if err := r.client.Del(ctx, r.levelsKey, r.idsKey).Err(); err != nil {
		r.logger.Error("Failed to reset stats", zap.Error(err))
		return fmt.Errorf("reset stats: %w", err)
	}
	r.logger.Info("Resolution stats reset")
	return nil
}

func levelField(level domain.Level, outcome domain.ResolutionOutcome) string {
	return string(level) + ":" + string(outcome)
}

func parseLevelField(field string) (domain.Level, domain.ResolutionOutcome, bool) {
	idx := strings.LastIndexByte(field, ':')
	if idx <= 0 || idx == len(field)-1 {
		return "", "", false
	}
	return domain.Level(field[:idx]), domain.ResolutionOutcome(field[idx+1:]), true
}
