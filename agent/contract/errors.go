package contract

import "errors"

var (
	ErrNoStructuredResult = errors.New("no structured result found")
	ErrCatalogUnavailable = errors.New("catalog search failed")
	ErrValidation         = errors.New("validation failed")
)
