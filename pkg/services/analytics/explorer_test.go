package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/retail-tools/sales-atlas/pkg/models/domain"
)

type mockSnapshotStore struct {
	mock.Mock
}

func (m *mockSnapshotStore) LoadAnalytics(ctx context.Context) (*domain.AnalyticsSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticsSnapshot), args.Error(1)
}

func (m *mockSnapshotStore) LoadModelMetrics(ctx context.Context) (*domain.ModelMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModelMetrics), args.Error(1)
}

func (m *mockSnapshotStore) ClearCache() {
	m.Called()
}

func TestExplorer_DelegatesToStore(t *testing.T) {
	store := new(mockSnapshotStore)
	explorer := NewExplorer(store)
	ctx := context.Background()

	snapshot := &domain.AnalyticsSnapshot{TotalOrders: 310}
	metrics := &domain.ModelMetrics{TrainedR2: 0.78}

	store.On("LoadAnalytics", ctx).Return(snapshot, nil)
	store.On("LoadModelMetrics", ctx).Return(metrics, nil)

	gotSnapshot, err := explorer.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.Same(t, snapshot, gotSnapshot)

	gotMetrics, err := explorer.GetModelMetrics(ctx)
	require.NoError(t, err)
	assert.Same(t, metrics, gotMetrics)
}

func TestExplorer_RefreshClearsCache(t *testing.T) {
	store := new(mockSnapshotStore)
	explorer := NewExplorer(store)

	store.On("ClearCache").Return()

	explorer.Refresh(context.Background())
	store.AssertCalled(t, "ClearCache")
}
