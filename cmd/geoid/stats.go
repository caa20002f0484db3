package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geoid-microservice/internal/config"
	"github.com/geoid-microservice/internal/domain"
	"github.com/geoid-microservice/internal/metrics"
	"github.com/geoid-microservice/internal/pkg/logger"
	"github.com/geoid-microservice/internal/repository/cache"
	"github.com/geoid-microservice/internal/usecase"
)

const statsTimeout = 10 * time.Second

// openStats подключается к Redis статистики по конфигурации из .env и окружения
func openStats(envFile string) (*usecase.GeoUseCase, func(), error) {
	cfg, err := config.LoadFrom(envFile)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	redisClient, err := cache.NewRedis(&cfg.Redis, logger.Named(log, "redis"))
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}

	statsRepo := cache.NewStatsRepository(redisClient, cfg.Stats.KeyPrefix)
	uc := usecase.NewGeoUseCase(statsRepo, cfg.Stats.TopIDsLimit, metrics.SourceCLI, logger.Named(log, "geo"))
	closeFn := func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
		_ = log.Sync()
	}
	return uc, closeFn, nil
}

func newStatsCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Inspect or reset the resolution counters kept in Redis",
	}
	cmd.PersistentFlags().StringVar(&envFile, "env", ".env", "path to the .env file")

	show := &cobra.Command{
		Use:   "show",
		Short: "Print hit/miss counters per level and the most resolved ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closeFn, err := openStats(envFile)
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, cancel := context.WithTimeout(cmd.Context(), statsTimeout)
			defer cancel()

			stats, err := uc.Statistics(ctx)
			if err != nil {
				return err
			}
			printStatistics(cmd, stats)
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Clear all resolution counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closeFn, err := openStats(envFile)
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, cancel := context.WithTimeout(cmd.Context(), statsTimeout)
			defer cancel()

			if err := uc.ResetStatistics(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "stats reset")
			return nil
		},
	}

	cmd.AddCommand(show, reset)
	return cmd
}

func printStatistics(cmd *cobra.Command, stats *domain.Statistics) {
	out := cmd.OutOrStdout()

	levels := make([]domain.Level, 0, len(stats.Levels))
	for level := range stats.Levels {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })

	for _, level := range levels {
		ls := stats.Levels[level]
		fmt.Fprintf(out, "%s\thits=%d\tmisses=%d\n", level, ls.Hits, ls.Misses)
	}
	for _, item := range stats.TopIDs {
		fmt.Fprintf(out, "top\t%d\t%s\t%s\t%d\n", item.ID, item.Level, item.Name, item.Count)
	}
}
