package service

import (
	"errors"

	"github.com/alysson-b/simulados-api/internal/apperr"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TestNotifier is the fire-and-forget change broadcast. Implemented by
// notify.Hub; a no-op fake stands in during tests.
type TestNotifier interface {
	NotifyTestUpdate(testID uint)
}

// storeErr translates a repository error into the taxonomy: a missing row
// becomes NotFound, anything else an upstream store failure.
func storeErr(err error, notFoundMsg, upstreamMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(notFoundMsg)
	}
	return apperr.Upstream(upstreamMsg, err)
}

// fetchOrDefault runs one optional sub-lookup of an aggregation and degrades to
// def instead of failing the whole operation.
func fetchOrDefault[T any](what string, def T, fn func() (T, error)) T {
	v, err := fn()
	if err != nil {
		log.Warn().Err(err).Str("lookup", what).Msg("optional lookup failed, using default")
		return def
	}
	return v
}

// orEmpty normalizes a nil slice (what Pluck yields for no rows) to an empty
// one, so list fields serialize as [] and never null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
