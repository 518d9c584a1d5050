// Package analytics exposes the precomputed dashboard documents to the
// transport layers.
package analytics

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/retail-tools/sales-atlas/pkg/models/domain"
)

// SnapshotStore is the cache fronting the training pipeline's output files.
type SnapshotStore interface {
	LoadAnalytics(ctx context.Context) (*domain.AnalyticsSnapshot, error)
	LoadModelMetrics(ctx context.Context) (*domain.ModelMetrics, error)
	ClearCache()
}

type Explorer interface {
	GetSnapshot(ctx context.Context) (*domain.AnalyticsSnapshot, error)
	GetModelMetrics(ctx context.Context) (*domain.ModelMetrics, error)
	Refresh(ctx context.Context)
}

type explorer struct {
	store SnapshotStore
}

func NewExplorer(store SnapshotStore) Explorer {
	return &explorer{store: store}
}

func (e *explorer) GetSnapshot(ctx context.Context) (*domain.AnalyticsSnapshot, error) {
	return e.store.LoadAnalytics(ctx)
}

func (e *explorer) GetModelMetrics(ctx context.Context) (*domain.ModelMetrics, error) {
	return e.store.LoadModelMetrics(ctx)
}

// Refresh discards the cached documents so the next request picks up a fresh
// training run without a process restart.
func (e *explorer) Refresh(ctx context.Context) {
	e.store.ClearCache()
	zerolog.Ctx(ctx).Info().Msg("analytics cache cleared")
}
