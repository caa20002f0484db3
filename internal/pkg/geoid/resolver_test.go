package geoid_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoid-microservice/internal/domain"
	"github.com/geoid-microservice/internal/pkg/geoid"
)

func filtersFor(level domain.Level, name string) domain.Filters {
	var f domain.Filters
	switch level {
	case domain.LevelCountry:
		f.Country = name
	case domain.LevelRegion:
		f.Region = name
	case domain.LevelDepartment:
		f.Department = name
	case domain.LevelInterMunicipality:
		f.InterMunicipality = name
	case domain.LevelCommune:
		f.Commune = name
	}
	return f
}

func TestResolve_RoundTripAllTables(t *testing.T) {
	reverse := map[domain.Level]func(int) (string, bool){
		domain.LevelRegion:            geoid.RegionName,
		domain.LevelDepartment:        geoid.DepartmentName,
		domain.LevelInterMunicipality: geoid.InterMunicipalityName,
		domain.LevelCommune:           geoid.CommuneName,
	}

	for _, level := range domain.TableLevels() {
		entries := geoid.Entries(level)
		require.NotEmpty(t, entries, "table %s must not be empty", level)

		for _, e := range entries {
			assert.Equal(t, e.ID, geoid.Resolve(level, filtersFor(level, e.Name)), "resolve %s %q", level, e.Name)

			name, ok := reverse[level](e.ID)
			assert.True(t, ok, "reverse %s %d", level, e.ID)
			assert.Equal(t, e.Name, name)

			name, ok = geoid.NameFor(level, e.ID)
			assert.True(t, ok)
			assert.Equal(t, e.Name, name)
		}
	}
}

func TestResolve_TableSizes(t *testing.T) {
	assert.Len(t, geoid.Entries(domain.LevelRegion), 13)
	assert.Len(t, geoid.Entries(domain.LevelDepartment), 96)
	assert.Len(t, geoid.Entries(domain.LevelInterMunicipality), 21)
	assert.Len(t, geoid.Entries(domain.LevelCommune), 72)
	assert.Len(t, geoid.All(), 13+96+21+72)
}

func TestResolve_ConcreteScenarios(t *testing.T) {
	tests := []struct {
		name     string
		level    domain.Level
		filters  domain.Filters
		expected int
	}{
		{
			name:     "region Bretagne",
			level:    domain.LevelRegion,
			filters:  domain.Filters{Region: "Bretagne"},
			expected: 1002,
		},
		{
			name:     "commune Lyon",
			level:    domain.LevelCommune,
			filters:  domain.Filters{Commune: "Lyon"},
			expected: 10021,
		},
		{
			name:     "department Paris",
			level:    domain.LevelDepartment,
			filters:  domain.Filters{Department: "75 - Paris"},
			expected: 2075,
		},
		{
			name:     "department Corse-du-Sud",
			level:    domain.LevelDepartment,
			filters:  domain.Filters{Department: "2A - Corse-du-Sud"},
			expected: 2096,
		},
		{
			name:     "inter-municipality with apostrophe",
			level:    domain.LevelInterMunicipality,
			filters:  domain.Filters{InterMunicipality: "Métropole Nice Côte d'Azur"},
			expected: 3007,
		},
		{
			name:  "only the active level field is consulted",
			level: domain.LevelRegion,
			filters: domain.Filters{
				Country:    "France",
				Region:     "Occitanie",
				Department: "75 - Paris",
				Commune:    "Lyon",
			},
			expected: 1010,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, geoid.Resolve(tt.level, tt.filters))
		})
	}

	name, ok := geoid.CommuneName(10021)
	assert.True(t, ok)
	assert.Equal(t, "Lyon", name)
}

func TestResolve_CountryIgnoresFilters(t *testing.T) {
	filters := []domain.Filters{
		{},
		{Country: "France"},
		{Region: "Bretagne", Department: "75 - Paris", InterMunicipality: "Nantes Métropole", Commune: "Lyon"},
		{Country: "not a country"},
	}

	for _, f := range filters {
		assert.Equal(t, 0, geoid.Resolve(domain.LevelCountry, f))

		id, ok := geoid.Lookup(domain.LevelCountry, f)
		assert.Equal(t, 0, id)
		assert.True(t, ok)
	}
}

func TestResolve_FallsBackToZero(t *testing.T) {
	tests := []struct {
		name    string
		level   domain.Level
		filters domain.Filters
	}{
		{"empty region", domain.LevelRegion, domain.Filters{}},
		{"empty department", domain.LevelDepartment, domain.Filters{Region: "Bretagne"}},
		{"empty inter-municipality", domain.LevelInterMunicipality, domain.Filters{}},
		{"empty commune", domain.LevelCommune, domain.Filters{Department: "75 - Paris"}},
		{"typo", domain.LevelRegion, domain.Filters{Region: "Bretagn"}},
		{"case differs", domain.LevelRegion, domain.Filters{Region: "bretagne"}},
		{"accent stripped", domain.LevelRegion, domain.Filters{Region: "Ile-de-France"}},
		{"surrounding whitespace", domain.LevelCommune, domain.Filters{Commune: " Lyon "}},
		{"department without number prefix", domain.LevelDepartment, domain.Filters{Department: "Paris"}},
		{"name from another level", domain.LevelCommune, domain.Filters{Commune: "Bretagne"}},
		{"unknown level", domain.Level("canton"), domain.Filters{Region: "Bretagne"}},
		{"empty level", domain.Level(""), domain.Filters{Commune: "Lyon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0, geoid.Resolve(tt.level, tt.filters))

			id, ok := geoid.Lookup(tt.level, tt.filters)
			assert.Equal(t, 0, id)
			assert.False(t, ok)
		})
	}
}

func TestNameLookups_NotFound(t *testing.T) {
	_, ok := geoid.DepartmentName(2050000)
	assert.False(t, ok)

	// Департамента 20 нет: Корсика разделена на 2A и 2B
	_, ok = geoid.DepartmentName(2020)
	assert.False(t, ok)

	_, ok = geoid.RegionName(0)
	assert.False(t, ok)

	_, ok = geoid.InterMunicipalityName(1002)
	assert.False(t, ok)

	_, ok = geoid.CommuneName(10000)
	assert.False(t, ok)

	_, ok = geoid.CommuneName(-1)
	assert.False(t, ok)

	_, ok = geoid.NameFor(domain.LevelCountry, 0)
	assert.False(t, ok)

	_, ok = geoid.NameFor(domain.Level("canton"), 1002)
	assert.False(t, ok)
}

func TestEntries_ReturnsCopy(t *testing.T) {
	first := geoid.Entries(domain.LevelRegion)
	first[0].Name = "mutated"
	first[0].ID = -1

	second := geoid.Entries(domain.LevelRegion)
	assert.Equal(t, "Auvergne-Rhône-Alpes", second[0].Name)
	assert.Equal(t, 1000, second[0].ID)
	assert.Equal(t, 1000, geoid.Resolve(domain.LevelRegion, domain.Filters{Region: "Auvergne-Rhône-Alpes"}))

	assert.Nil(t, geoid.Entries(domain.LevelCountry))
	assert.Nil(t, geoid.Entries(domain.Level("canton")))
}

func TestEntries_AuthoredOrder(t *testing.T) {
	got := geoid.Entries(domain.LevelCommune)[:3]
	want := []domain.GeoEntry{
		{Level: domain.LevelCommune, Name: "Paris 1er", ID: 10001},
		{Level: domain.LevelCommune, Name: "Paris 2ème", ID: 10002},
		{Level: domain.LevelCommune, Name: "Paris 3ème", ID: 10003},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	f := domain.Filters{Commune: "Villeneuve-d'Ascq"}
	first := geoid.Resolve(domain.LevelCommune, f)
	second := geoid.Resolve(domain.LevelCommune, f)

	assert.Equal(t, 10048, first)
	assert.Equal(t, first, second)
}

func TestResolve_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, e := range geoid.All() {
				assert.Equal(t, e.ID, geoid.Resolve(e.Level, filtersFor(e.Level, e.Name)))
			}
		}()
	}
	wg.Wait()
}

func TestValidate_CompiledTables(t *testing.T) {
	assert.NoError(t, geoid.Validate())
}
