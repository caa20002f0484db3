package geoid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geoid-microservice/internal/domain"
	"github.com/geoid-microservice/internal/pkg/geoid"
)

func names(entries []domain.GeoEntry) []string {
	result := make([]string, len(entries))
	for i, e := range entries {
		result[i] = e.Name
	}
	return result
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name     string
		level    domain.Level
		query    string
		limit    int
		expected []string
	}{
		{
			name:     "accent-insensitive",
			level:    domain.LevelRegion,
			query:    "ile",
			expected: []string{"Île-de-France"},
		},
		{
			name:     "case-insensitive with accent in query",
			level:    domain.LevelRegion,
			query:    "CÔTE",
			expected: []string{"Provence-Alpes-Côte d'Azur"},
		},
		{
			name:     "department code prefix",
			level:    domain.LevelDepartment,
			query:    "corse",
			expected: []string{"2A - Corse-du-Sud", "2B - Haute-Corse"},
		},
		{
			name:     "limit keeps authored order",
			level:    domain.LevelCommune,
			query:    "paris",
			limit:    3,
			expected: []string{"Paris 1er", "Paris 2ème", "Paris 3ème"},
		},
		{
			name:     "no match",
			level:    domain.LevelCommune,
			query:    "Bruxelles",
			expected: nil,
		},
		{
			name:     "blank query",
			level:    domain.LevelCommune,
			query:    "   ",
			expected: nil,
		},
		{
			name:     "country has no table",
			level:    domain.LevelCountry,
			query:    "France",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geoid.Search(tt.level, tt.query, tt.limit)
			if tt.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, names(got))
		})
	}
}

func TestSearch_ResultsResolve(t *testing.T) {
	for _, e := range geoid.Search(domain.LevelCommune, "saint", 0) {
		assert.Equal(t, e.ID, geoid.Resolve(domain.LevelCommune, domain.Filters{Commune: e.Name}))
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ile-de-france", geoid.Normalize("Île-de-France"))
	assert.Equal(t, "beziers", geoid.Normalize("  Béziers "))
	assert.Equal(t, "", geoid.Normalize(""))
}
