// Package store defines the cache abstraction for geometry-only series terms.
package store

import "go.ngs.io/thinfoil-api/internal/domain"

// GeometryKey identifies one geometry-only decomposition.
type GeometryKey struct {
	Code       string
	Order      int
	Resolution int
}

// GeometryCache stores geometry-only Fourier terms for reuse across
// angle-of-attack queries. Entries are immutable once stored, so a second
// Put for the same key is a harmless overwrite with identical values.
type GeometryCache interface {
	// Get returns the cached terms for key, if present.
	Get(key GeometryKey) (*domain.GeometryTerms, bool)

	// Put stores terms under key.
	Put(key GeometryKey, terms *domain.GeometryTerms)
}
