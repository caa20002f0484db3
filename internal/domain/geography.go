package domain

import (
	"errors"
	"fmt"
)

// Level - административный уровень французской территориальной иерархии
type Level string

const (
	LevelCountry           Level = "pays"
	LevelRegion            Level = "region"
	LevelDepartment        Level = "departement"
	LevelInterMunicipality Level = "intercommunalite"
	LevelCommune           Level = "commune"
)

// Диапазоны идентификаторов по уровням (нижняя граница включительно, верхняя - нет)
const (
	CountryID = 0

	// CountryName - единственная страна уровня pays
	CountryName = "France"

	RegionIDMin = 1000
	RegionIDMax = 2000

	DepartmentIDMin = 2000
	DepartmentIDMax = 3000

	InterMunicipalityIDMin = 3000
	InterMunicipalityIDMax = 4000

	// Коммуны не ограничены сверху
	CommuneIDMin = 10000
)

// ErrUnknownLevel возвращается ParseLevel для неизвестного тега
var ErrUnknownLevel = errors.New("unknown geographic level")

// Levels возвращает все уровни от страны до коммуны
func Levels() []Level {
	return []Level{
		LevelCountry,
		LevelRegion,
		LevelDepartment,
		LevelInterMunicipality,
		LevelCommune,
	}
}

// TableLevels возвращает уровни, у которых есть таблица идентификаторов
func TableLevels() []Level {
	return []Level{
		LevelRegion,
		LevelDepartment,
		LevelInterMunicipality,
		LevelCommune,
	}
}

// IsValid проверяет, что уровень входит в перечисление
func (l Level) IsValid() bool {
	switch l {
	case LevelCountry, LevelRegion, LevelDepartment, LevelInterMunicipality, LevelCommune:
		return true
	}
	return false
}

func (l Level) String() string {
	return string(l)
}

// ContainsID проверяет, попадает ли id в диапазон уровня
func (l Level) ContainsID(id int) bool {
	switch l {
	case LevelCountry:
		return id == CountryID
	case LevelRegion:
		return id >= RegionIDMin && id < RegionIDMax
	case LevelDepartment:
		return id >= DepartmentIDMin && id < DepartmentIDMax
	case LevelInterMunicipality:
		return id >= InterMunicipalityIDMin && id < InterMunicipalityIDMax
	case LevelCommune:
		return id >= CommuneIDMin
	}
	return false
}

// ParseLevel разбирает тег уровня (точное совпадение)
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
	return l, nil
}

// LevelForID определяет уровень по диапазону идентификатора.
// Идентификаторы вне всех диапазонов (4000-9999, отрицательные) не относятся ни к одному уровню.
func LevelForID(id int) (Level, bool) {
	for _, l := range Levels() {
		if l.ContainsID(id) {
			return l, true
		}
	}
	return "", false
}

// Filters - текущий выбор пользователя на каждом уровне.
// Для разрешения используется только поле активного уровня.
type Filters struct {
	Country           string `json:"pays"`
	Region            string `json:"region"`
	Department        string `json:"departement"`
	InterMunicipality string `json:"intercommunalite"`
	Commune           string `json:"commune"`
}

// ValueFor возвращает поле фильтра для уровня.
// Для страны и неизвестных уровней возвращается пустая строка: страна не зависит от фильтров.
func (f Filters) ValueFor(level Level) string {
	switch level {
	case LevelRegion:
		return f.Region
	case LevelDepartment:
		return f.Department
	case LevelInterMunicipality:
		return f.InterMunicipality
	case LevelCommune:
		return f.Commune
	}
	return ""
}

// GeoEntry - строка таблицы идентификаторов
type GeoEntry struct {
	Level Level  `json:"level" db:"level" yaml:"level"`
	Name  string `json:"name" db:"name" yaml:"name"`
	ID    int    `json:"id" db:"id" yaml:"id"`
}
