// Package geoid переводит географический выбор пользователя (уровень + названия)
// в стабильные числовые идентификаторы и обратно.
//
// Таблицы статические: они собираются один раз при инициализации пакета и больше
// не изменяются, поэтому все функции пакета безопасны для конкурентного вызова.
package geoid

import "github.com/geoid-microservice/internal/domain"

type entry struct {
	name string
	id   int
}

// table - упорядоченная таблица "название -> id" с индексом по названию
type table struct {
	level   domain.Level
	entries []entry
	byName  map[string]int
}

func newTable(level domain.Level, entries []entry) *table {
	t := &table{
		level:   level,
		entries: entries,
		byName:  make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if _, exists := t.byName[e.name]; exists {
			continue
		}
		t.byName[e.name] = e.id
	}
	return t
}

// nameFor - линейный поиск по таблице, первое совпадение в порядке объявления
func (t *table) nameFor(id int) (string, bool) {
	for _, e := range t.entries {
		if e.id == id {
			return e.name, true
		}
	}
	return "", false
}

var (
	regions             = newTable(domain.LevelRegion, regionEntries)
	departments         = newTable(domain.LevelDepartment, departmentEntries)
	interMunicipalities = newTable(domain.LevelInterMunicipality, interMunicipalityEntries)
	communes            = newTable(domain.LevelCommune, communeEntries)
)

func tableFor(level domain.Level) *table {
	switch level {
	case domain.LevelRegion:
		return regions
	case domain.LevelDepartment:
		return departments
	case domain.LevelInterMunicipality:
		return interMunicipalities
	case domain.LevelCommune:
		return communes
	}
	return nil
}

// Resolve возвращает идентификатор для уровня и выбранных фильтров.
//
// Для страны всегда возвращается 0. Пустой фильтр, отсутствующее в таблице название
// или неизвестный уровень тоже дают 0, поэтому 0 неотличим от "вся Франция".
// Если это различие важно, используйте Lookup.
func Resolve(level domain.Level, filters domain.Filters) int {
	id, _ := Lookup(level, filters)
	return id
}

// Lookup работает как Resolve, но дополнительно сообщает, было ли разрешение настоящим.
// ok == true для страны и для названий, найденных в таблице уровня.
func Lookup(level domain.Level, filters domain.Filters) (int, bool) {
	if level == domain.LevelCountry {
		return domain.CountryID, true
	}

	t := tableFor(level)
	if t == nil {
		return domain.CountryID, false
	}

	name := filters.ValueFor(level)
	if name == "" {
		return domain.CountryID, false
	}

	id, ok := t.byName[name]
	if !ok {
		return domain.CountryID, false
	}
	return id, true
}

// NameFor возвращает название по id для уровня. Для страны таблицы нет.
func NameFor(level domain.Level, id int) (string, bool) {
	t := tableFor(level)
	if t == nil {
		return "", false
	}
	return t.nameFor(id)
}

// RegionName возвращает название региона по id
func RegionName(id int) (string, bool) {
	return regions.nameFor(id)
}

// DepartmentName возвращает название департамента по id
func DepartmentName(id int) (string, bool) {
	return departments.nameFor(id)
}

// InterMunicipalityName возвращает название межкоммунального объединения по id
func InterMunicipalityName(id int) (string, bool) {
	return interMunicipalities.nameFor(id)
}

// CommuneName возвращает название коммуны по id
func CommuneName(id int) (string, bool) {
	return communes.nameFor(id)
}

// Entries возвращает копию таблицы уровня в порядке объявления.
// Для страны и неизвестных уровней возвращает nil.
func Entries(level domain.Level) []domain.GeoEntry {
	t := tableFor(level)
	if t == nil {
		return nil
	}

	result := make([]domain.GeoEntry, len(t.entries))
	for i, e := range t.entries {
		result[i] = domain.GeoEntry{Level: level, Name: e.name, ID: e.id}
	}
	return result
}

// All возвращает все записи всех таблиц: регионы, департаменты, объединения, коммуны
func All() []domain.GeoEntry {
	var result []domain.GeoEntry
	for _, level := range domain.TableLevels() {
		result = append(result, Entries(level)...)
	}
	return result
}
