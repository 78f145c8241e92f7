package redrelief

import "github.com/kailas-cloud/redrelief/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound   = domain.ErrNotFound
	ErrValidation = domain.ErrValidation
)
