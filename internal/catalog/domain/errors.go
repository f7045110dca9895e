package domain

import "errors"

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrGarageNotFound  = errors.New("garage not found")
	ErrBrandNotFound   = errors.New("brand not found")
	ErrInvalidData     = errors.New("invalid catalog data")
)
