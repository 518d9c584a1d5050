package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const analyticsJSON = `{
	"monthly_sales": [{"date": "2024-01-01", "Sales": 12000}, {"date": "2024-02-01", "Sales": 15500}],
	"category_sales": {"0": 50000, "1": 32000},
	"region_sales": {"0": 41000, "1": 41000},
	"profit_by_category": {"0": 9000, "1": 4000},
	"top_cities": {"Jakarta": 120, "Surabaya": 80},
	"total_sales": 82000,
	"total_orders": 200,
	"avg_order_value": 410.0,
	"total_profit": 13000,
	"unique_cities": 14
}`

const metricsJSON = `{
	"lr_mse": 220000.5,
	"lr_r2": 0.41,
	"xgb_mse": 96000.2,
	"xgb_r2": 0.78,
	"best_params": {"max_depth": 5, "learning_rate": 0.1},
	"feature_names": ["Category", "City", "Region", "Profit", "Discount"]
}`

type fixture struct {
	store     *Store
	readCount map[string]int
}

func setupFixture(t *testing.T, files map[string]string) *fixture {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	readCount := map[string]int{}
	store, err := NewStore(Settings{
		AnalyticsPath: filepath.Join(dir, "analytics.json"),
		MetricsPath:   filepath.Join(dir, "model_metrics.json"),
		ReadFile: func(path string) ([]byte, error) {
			readCount[filepath.Base(path)]++
			return os.ReadFile(path)
		},
	})
	require.NoError(t, err)

	return &fixture{store: store, readCount: readCount}
}

func TestStore_LoadAnalytics(t *testing.T) {
	ctx := context.Background()

	t.Run("success - parses the full document", func(t *testing.T) {
		f := setupFixture(t, map[string]string{"analytics.json": analyticsJSON})

		snapshot, err := f.store.LoadAnalytics(ctx)
		require.NoError(t, err)

		assert.Len(t, snapshot.MonthlySales, 2)
		assert.Equal(t, int64(12000), snapshot.MonthlySales[0].Sales)
		assert.Equal(t, int64(50000), snapshot.CategorySales["0"])
		assert.Equal(t, int64(82000), snapshot.TotalSales)
		assert.Equal(t, 410.0, snapshot.AvgOrderValue)
		assert.Equal(t, int64(14), snapshot.UniqueCities)
	})

	t.Run("memoized - second load performs no read", func(t *testing.T) {
		f := setupFixture(t, map[string]string{"analytics.json": analyticsJSON})

		first, err := f.store.LoadAnalytics(ctx)
		require.NoError(t, err)
		second, err := f.store.LoadAnalytics(ctx)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, f.readCount["analytics.json"])
	})

	t.Run("clear cache - next load re-reads", func(t *testing.T) {
		f := setupFixture(t, map[string]string{"analytics.json": analyticsJSON})

		_, err := f.store.LoadAnalytics(ctx)
		require.NoError(t, err)
		f.store.ClearCache()
		_, err = f.store.LoadAnalytics(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, f.readCount["analytics.json"])
	})

	t.Run("unavailable - missing file", func(t *testing.T) {
		f := setupFixture(t, nil)

		_, err := f.store.LoadAnalytics(ctx)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("unavailable - empty file", func(t *testing.T) {
		f := setupFixture(t, map[string]string{"analytics.json": ""})

		_, err := f.store.LoadAnalytics(ctx)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("unavailable - malformed document", func(t *testing.T) {
		f := setupFixture(t, map[string]string{"analytics.json": `{"total_sales": "not-a-number"`})

		_, err := f.store.LoadAnalytics(ctx)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("unavailable result is not cached", func(t *testing.T) {
		f := setupFixture(t, nil)

		_, err := f.store.LoadAnalytics(ctx)
		require.ErrorIs(t, err, ErrUnavailable)
		_, err = f.store.LoadAnalytics(ctx)
		require.ErrorIs(t, err, ErrUnavailable)

		assert.Equal(t, 2, f.readCount["analytics.json"])
	})
}

func TestStore_LoadModelMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("success - independent slot", func(t *testing.T) {
		f := setupFixture(t, map[string]string{
			"analytics.json":     analyticsJSON,
			"model_metrics.json": metricsJSON,
		})

		metrics, err := f.store.LoadModelMetrics(ctx)
		require.NoError(t, err)

		assert.Equal(t, 0.78, metrics.TrainedR2)
		assert.Equal(t, []string{"Category", "City", "Region", "Profit", "Discount"}, metrics.FeatureNames)

		// Loading metrics must not touch the analytics document.
		assert.Equal(t, 0, f.readCount["analytics.json"])
		assert.Equal(t, 1, f.readCount["model_metrics.json"])
	})

	t.Run("clear cache clears both slots", func(t *testing.T) {
		f := setupFixture(t, map[string]string{
			"analytics.json":     analyticsJSON,
			"model_metrics.json": metricsJSON,
		})

		_, err := f.store.LoadAnalytics(ctx)
		require.NoError(t, err)
		_, err = f.store.LoadModelMetrics(ctx)
		require.NoError(t, err)

		f.store.ClearCache()

		_, err = f.store.LoadAnalytics(ctx)
		require.NoError(t, err)
		_, err = f.store.LoadModelMetrics(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, f.readCount["analytics.json"])
		assert.Equal(t, 2, f.readCount["model_metrics.json"])
	})

	t.Run("unavailable - missing file", func(t *testing.T) {
		f := setupFixture(t, map[string]string{"analytics.json": analyticsJSON})

		_, err := f.store.LoadModelMetrics(ctx)
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestNewStore_Validation(t *testing.T) {
	_, err := NewStore(Settings{MetricsPath: "m.json"})
	assert.Error(t, err)

	_, err = NewStore(Settings{AnalyticsPath: "a.json"})
	assert.Error(t, err)
}
