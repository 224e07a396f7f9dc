package domain

import "errors"

var (
	ErrCatalogNotFound = errors.New("card catalog not found")
	ErrEmptyCatalog    = errors.New("card catalog is empty")
	ErrLayoutNotFound  = errors.New("layout not found")
	ErrInvalidCount    = errors.New("count must be between 1 and 10")
)
