package domain

import "time"

// ResolutionOutcome - исход разрешения для статистики
type ResolutionOutcome string

const (
	OutcomeHit  ResolutionOutcome = "hit"
	OutcomeMiss ResolutionOutcome = "miss"
)

// Statistics представляет статистику разрешений
type Statistics struct {
	Levels      map[Level]LevelStats `json:"levels"`
	TopIDs      []IDCount            `json:"top_ids"`
	Catalog     CatalogStats         `json:"catalog"`
	LastUpdated time.Time            `json:"last_updated"`
}

// LevelStats счётчики по уровню
type LevelStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

// IDCount сколько раз был выдан идентификатор
type IDCount struct {
	ID    int    `json:"id"`
	Level Level  `json:"level"`
	Name  string `json:"name,omitempty"`
	Count int64  `json:"count"`
}

// CatalogStats размеры статических таблиц
type CatalogStats struct {
	Regions             int `json:"regions"`
	Departments         int `json:"departments"`
	InterMunicipalities int `json:"inter_municipalities"`
	Communes            int `json:"communes"`
}

// CatalogDrift - расхождения между каталогом в БД и скомпилированными таблицами
type CatalogDrift struct {
	Missing  []GeoEntry `json:"missing"`  // есть в бинарнике, нет в БД
	Unknown  []GeoEntry `json:"unknown"`  // есть в БД, нет в бинарнике
	Renamed  []GeoEntry `json:"renamed"`  // id совпадает, название/уровень отличается (значение из БД)
	Expected int        `json:"expected"` // записей в бинарнике
	Stored   int        `json:"stored"`   // записей в БД
}

// InSync сообщает об отсутствии расхождений
func (d *CatalogDrift) InSync() bool {
	return len(d.Missing) == 0 && len(d.Unknown) == 0 && len(d.Renamed) == 0
}
