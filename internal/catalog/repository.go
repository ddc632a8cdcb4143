// internal/catalog/repository.go

// Package catalog provisions the read-only creator catalog. A source
// (fixture, PostgreSQL, or a Redis snapshot) is read exactly once at
// startup; afterwards every request scans the immutable in-memory copy, so
// no locking is needed on the request path.
package catalog

import (
	"context"

	"github.com/Komalkasat09/Content-creator-matching/internal/models"
)

// Repository is the read-only lookup set the matcher scans per request.
type Repository interface {
	All(ctx context.Context) ([]models.Creator, error)
}

// Static is an immutable in-memory Repository. Every source ends up wrapped
// in one of these before being handed to the workers.
type Static struct {
	creators []models.Creator
}

// NewStatic copies the given slice so later mutations by the caller cannot
// leak into the shared catalog.
func NewStatic(creators []models.Creator) *Static {
	cp := make([]models.Creator, len(creators))
	copy(cp, creators)
	return &Static{creators: cp}
}

func (s *Static) All(_ context.Context) ([]models.Creator, error) {
	return s.creators, nil
}

// Len reports the catalog size.
func (s *Static) Len() int {
	return len(s.creators)
}
