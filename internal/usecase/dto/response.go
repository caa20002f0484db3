package dto

import "github.com/geoid-microservice/internal/domain"

// ResolveResponse - результат разрешения; Found=false означает откат к 0
type ResolveResponse struct {
	ID    int          `json:"id"`
	Level domain.Level `json:"level"`
	Found bool         `json:"found"`
	Name  string       `json:"name,omitempty"`
}

// BatchResolveResponse - результаты в порядке запроса
type BatchResolveResponse struct {
	Results []ResolveResponse `json:"results"`
}

// NameResponse - название по идентификатору
type NameResponse struct {
	ID    int          `json:"id"`
	Level domain.Level `json:"level"`
	Name  string       `json:"name"`
}

// EntriesResponse - содержимое таблицы уровня
type EntriesResponse struct {
	Level   domain.Level      `json:"level"`
	Entries []domain.GeoEntry `json:"entries"`
	Total   int               `json:"total"`
}

// SearchResponse - результаты поиска
type SearchResponse struct {
	Results []domain.GeoEntry `json:"results"`
	Total   int               `json:"total"`
}

// LevelsResponse - список поддерживаемых уровней
type LevelsResponse struct {
	Levels []domain.Level `json:"levels"`
}
