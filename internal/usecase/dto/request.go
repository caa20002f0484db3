package dto

import "github.com/geoid-microservice/internal/domain"

// ResolveRequest - запрос на разрешение выбора уровня в идентификатор
type ResolveRequest struct {
	Level   domain.Level   `json:"level" validate:"required,geolevel"`
	Filters domain.Filters `json:"filters"`
}

// BatchResolveRequest - пакетный запрос на разрешение
type BatchResolveRequest struct {
	Items []ResolveRequest `json:"items" validate:"required,min=1,max=100,dive"`
}

// SearchRequest - поиск по названиям уровня (без учёта регистра и диакритики)
type SearchRequest struct {
	Level domain.Level `json:"level" query:"level" validate:"required,geolevel,ne=pays"`
	Query string       `json:"q" query:"q" validate:"required,min=1,max=100"`
	Limit int          `json:"limit" query:"limit" validate:"omitempty,min=1,max=100"`
}
