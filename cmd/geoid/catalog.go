package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geoid-microservice/internal/config"
	"github.com/geoid-microservice/internal/domain"
	"github.com/geoid-microservice/internal/pkg/logger"
	"github.com/geoid-microservice/internal/repository/postgres"
	"github.com/geoid-microservice/internal/usecase"
)

const catalogTimeout = time.Minute

// openCatalog подключается к Postgres по конфигурации из .env и окружения
func openCatalog(envFile string) (*usecase.CatalogUseCase, func(), error) {
	cfg, err := config.LoadFrom(envFile)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := postgres.New(&cfg.Database, logger.Named(log, "postgres"))
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}

	uc := usecase.NewCatalogUseCase(postgres.NewCatalogRepository(db), logger.Named(log, "catalog"))
	closeFn := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
		_ = log.Sync()
	}
	return uc, closeFn, nil
}

func newSeedCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert every compiled-in entry into the Postgres catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closeFn, err := openCatalog(envFile)
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, cancel := context.WithTimeout(cmd.Context(), catalogTimeout)
			defer cancel()

			affected, err := uc.Sync(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded: %d rows inserted or updated\n", affected)
			return nil
		},
	}

	cmd.Flags().StringVar(&envFile, "env", ".env", "path to the .env file")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var (
		envFile string
		id      int
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare the Postgres catalog with the compiled-in tables (or one entry with --id)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closeFn, err := openCatalog(envFile)
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, cancel := context.WithTimeout(cmd.Context(), catalogTimeout)
			defer cancel()

			var drift *domain.CatalogDrift
			if cmd.Flags().Changed("id") {
				drift, err = uc.VerifyEntry(ctx, id)
			} else {
				drift, err = uc.Verify(ctx)
			}
			if err != nil {
				return err
			}

			return printDrift(cmd.OutOrStdout(), drift)
		},
	}

	cmd.Flags().StringVar(&envFile, "env", ".env", "path to the .env file")
	cmd.Flags().IntVar(&id, "id", 0, "check a single identifier instead of the whole catalog")
	return cmd
}

// printDrift печатает расхождения; ошибка, если каталог не совпадает с таблицами
func printDrift(out io.Writer, drift *domain.CatalogDrift) error {
	fmt.Fprintf(out, "expected %d, stored %d\n", drift.Expected, drift.Stored)
	for _, e := range drift.Missing {
		fmt.Fprintf(out, "missing\t%d\t%s\t%s\n", e.ID, e.Level, e.Name)
	}
	for _, e := range drift.Unknown {
		fmt.Fprintf(out, "unknown\t%d\t%s\t%s\n", e.ID, e.Level, e.Name)
	}
	for _, e := range drift.Renamed {
		fmt.Fprintf(out, "renamed\t%d\t%s\t%s\n", e.ID, e.Level, e.Name)
	}

	if !drift.InSync() {
		return fmt.Errorf("catalog drift: %d missing, %d unknown, %d renamed",
			len(drift.Missing), len(drift.Unknown), len(drift.Renamed))
	}
	fmt.Fprintln(out, "in sync")
	return nil
}
