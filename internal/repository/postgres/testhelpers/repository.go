package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/geoid-microservice/internal/domain/repository"
	"github.com/geoid-microservice/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewCatalogRepositoryForTest creates a catalog repository with test database and logger
func NewCatalogRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CatalogRepository {
	return postgres.NewCatalogRepository(NewDBForTest(db, logger))
}
