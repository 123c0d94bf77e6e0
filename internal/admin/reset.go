// Package admin provides administrative operations for database management.
package admin

import (
	"context"
	"log/slog"
	"time"

	"github.com/mediashelf/entertainment/internal/store"
)

// ResetTimeout is the maximum duration for database reset operations.
const ResetTimeout = 30 * time.Second

// Resetter handles catalog reset operations.
type Resetter struct {
	Store *store.Store
}

type tableResetFn func(ctx context.Context) error

// ResetAll truncates all catalog tables. Combined with a subsequent
// ingestion run this re-seeds the catalog from the raw datasets.
// This is a destructive operation - use with caution.
func (r *Resetter) ResetAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ResetTimeout)
	defer cancel()

	resets := []tableResetFn{
		r.Store.ResetMovies,
		r.Store.ResetSongs,
		r.Store.ResetBooks,
		r.Store.ResetGames,
	}
	for _, reset := range resets {
		if err := reset(ctx); err != nil {
			return err
		}
	}

	slog.Info("catalog tables reset")
	return nil
}
