package errors

import "net/http"

var (
	ErrInvalidLevel = New(
		"INVALID_LEVEL",
		"Invalid geographic level, expected one of: pays, region, departement, intercommunalite, commune",
		http.StatusBadRequest,
	)

	ErrInvalidIdentifier = New(
		"INVALID_IDENTIFIER",
		"Invalid geographic identifier",
		http.StatusBadRequest,
	)

	ErrIdentifierNotFound = New(
		"IDENTIFIER_NOT_FOUND",
		"Geographic identifier not found",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
