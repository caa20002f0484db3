package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geoid-microservice/internal/domain"
	"github.com/geoid-microservice/internal/pkg/geoid"
	"github.com/geoid-microservice/internal/usecase"
)

func levelEntries(level domain.Level) interface{} {
	return mock.MatchedBy(func(entries []domain.GeoEntry) bool {
		return len(entries) > 0 && entries[0].Level == level
	})
}

func TestCatalogUseCase_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts every table", func(t *testing.T) {
		repo := &MockCatalogRepository{}
		uc := usecase.NewCatalogUseCase(repo, zap.NewNop())

		repo.On("Upsert", mock.Anything, levelEntries(domain.LevelRegion)).Return(int64(13), nil).Once()
		repo.On("Upsert", mock.Anything, levelEntries(domain.LevelDepartment)).Return(int64(96), nil).Once()
		repo.On("Upsert", mock.Anything, levelEntries(domain.LevelInterMunicipality)).Return(int64(21), nil).Once()
		repo.On("Upsert", mock.Anything, levelEntries(domain.LevelCommune)).Return(int64(72), nil).Once()

		affected, err := uc.Sync(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(13+96+21+72), affected)
		repo.AssertExpectations(t)
	})

	t.Run("propagates repository error", func(t *testing.T) {
		repo := &MockCatalogRepository{}
		uc := usecase.NewCatalogUseCase(repo, zap.NewNop())

		dbErr := errors.New("connection refused")
		repo.On("Upsert", mock.Anything, levelEntries(domain.LevelCommune)).Return(int64(0), dbErr)
		repo.On("Upsert", mock.Anything, mock.Anything).Return(int64(0), nil)

		_, err := uc.Sync(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "sync commune")
	})
}

func TestCatalogUseCase_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("in sync", func(t *testing.T) {
		repo := &MockCatalogRepository{}
		uc := usecase.NewCatalogUseCase(repo, zap.NewNop())

		repo.On("ListByLevels", ctx, domain.TableLevels()).Return(geoid.All(), nil)

		drift, err := uc.Verify(ctx)

		require.NoError(t, err)
		assert.True(t, drift.InSync())
		assert.Equal(t, drift.Expected, drift.Stored)
	})

	t.Run("reports drift", func(t *testing.T) {
		repo := &MockCatalogRepository{}
		uc := usecase.NewCatalogUseCase(repo, zap.NewNop())

		stored := geoid.All()
		// убрать Bretagne, переименовать Lyon, добавить чужую коммуну
		var mutated []domain.GeoEntry
		for _, e := range stored {
			switch e.ID {
			case 1002:
				continue
			case 10021:
				e.Name = "Lyon (ancien)"
			}
			mutated = append(mutated, e)
		}
		mutated = append(mutated, domain.GeoEntry{Level: domain.LevelCommune, Name: "Brest", ID: 10999})

		repo.On("ListByLevels", ctx, domain.TableLevels()).Return(mutated, nil)

		drift, err := uc.Verify(ctx)
		require.NoError(t, err)
		assert.False(t, drift.InSync())

		want := &domain.CatalogDrift{
			Missing:  []domain.GeoEntry{{Level: domain.LevelRegion, Name: "Bretagne", ID: 1002}},
			Unknown:  []domain.GeoEntry{{Level: domain.LevelCommune, Name: "Brest", ID: 10999}},
			Renamed:  []domain.GeoEntry{{Level: domain.LevelCommune, Name: "Lyon (ancien)", ID: 10021}},
			Expected: len(stored),
			Stored:   len(mutated),
		}
		if diff := cmp.Diff(want, drift); diff != "" {
			t.Errorf("Verify() drift mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		repo := &MockCatalogRepository{}
		uc := usecase.NewCatalogUseCase(repo, zap.NewNop())

		repo.On("ListByLevels", ctx, domain.TableLevels()).Return(nil, errors.New("timeout"))

		drift, err := uc.Verify(ctx)
		assert.Nil(t, drift)
		assert.Error(t, err)
	})
}

func TestCatalogUseCase_VerifyEntry(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		id          int
		stored      *domain.GeoEntry
		expected    int
		wantMissing []domain.GeoEntry
		wantUnknown []domain.GeoEntry
		wantRenamed []domain.GeoEntry
	}{
		{
			name:     "in sync",
			id:       1002,
			stored:   &domain.GeoEntry{Level: domain.LevelRegion, Name: "Bretagne", ID: 1002},
			expected: 1,
		},
		{
			name:        "missing row",
			id:          10021,
			expected:    1,
			wantMissing: []domain.GeoEntry{{Level: domain.LevelCommune, Name: "Lyon", ID: 10021}},
		},
		{
			name:        "renamed row",
			id:          1002,
			stored:      &domain.GeoEntry{Level: domain.LevelRegion, Name: "Bretagne (old)", ID: 1002},
			expected:    1,
			wantRenamed: []domain.GeoEntry{{Level: domain.LevelRegion, Name: "Bretagne (old)", ID: 1002}},
		},
		{
			name:        "row unknown to the tables",
			id:          1999,
			stored:      &domain.GeoEntry{Level: domain.LevelRegion, Name: "Atlantide", ID: 1999},
			wantUnknown: []domain.GeoEntry{{Level: domain.LevelRegion, Name: "Atlantide", ID: 1999}},
		},
		{
			name: "absent everywhere",
			id:   1999,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockCatalogRepository{}
			uc := usecase.NewCatalogUseCase(repo, zap.NewNop())

			if tt.stored != nil {
				repo.On("GetByID", ctx, tt.id).Return(tt.stored, nil).Once()
			} else {
				repo.On("GetByID", ctx, tt.id).Return(nil, nil).Once()
			}

			drift, err := uc.VerifyEntry(ctx, tt.id)
			require.NoError(t, err)

			want := &domain.CatalogDrift{
				Missing:  []domain.GeoEntry{},
				Unknown:  []domain.GeoEntry{},
				Renamed:  []domain.GeoEntry{},
				Expected: tt.expected,
			}
			if tt.stored != nil {
				want.Stored = 1
			}
			want.Missing = append(want.Missing, tt.wantMissing...)
			want.Unknown = append(want.Unknown, tt.wantUnknown...)
			want.Renamed = append(want.Renamed, tt.wantRenamed...)

			if diff := cmp.Diff(want, drift); diff != "" {
				t.Errorf("VerifyEntry(%d) mismatch (-want +got):\n%s", tt.id, diff)
			}
			repo.AssertExpectations(t)
		})
	}

	t.Run("repository error", func(t *testing.T) {
		repo := &MockCatalogRepository{}
		uc := usecase.NewCatalogUseCase(repo, zap.NewNop())

		repo.On("GetByID", ctx, 1002).Return(nil, errors.New("connection refused"))

		drift, err := uc.VerifyEntry(ctx, 1002)
		assert.Nil(t, drift)
		assert.ErrorContains(t, err, "connection refused")
	})
}
