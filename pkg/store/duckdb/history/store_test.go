package history

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retail-tools/sales-atlas/pkg/models/store"
	"github.com/retail-tools/sales-atlas/pkg/store/duckdb"
)

func setupMock(t *testing.T) (Store, sqlmock.Sqlmock) {
	t.Helper()
	s, mock, _ := setupMockDB(t)
	return s, mock
}

func setupMockDB(t *testing.T) (Store, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := NewStore(db)
	require.NoError(t, err)
	return s, mock, db
}

func sampleRecord() store.PredictionRecord {
	return store.PredictionRecord{
		ID:           "a9f2c1",
		CreatedAt:    time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC),
		Mode:         "heuristic-simulation",
		Category:     0,
		Region:       1,
		Month:        6,
		Discount:     0.1,
		ProfitMargin: 0.2,
		Prediction:   3136.32,
		Success:      true,
	}
}

func TestHistoryStore_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s, mock := setupMock(t)
		rec := sampleRecord()

		mock.ExpectExec("INSERT INTO predictions").
			WithArgs(rec.ID, rec.CreatedAt, rec.Mode, rec.Category, rec.Region, rec.Month,
				rec.Discount, rec.ProfitMargin, rec.Prediction, rec.Success).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Add(context.Background(), rec))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure is wrapped", func(t *testing.T) {
		s, mock := setupMock(t)

		mock.ExpectExec("INSERT INTO predictions").
			WillReturnError(sql.ErrConnDone)

		err := s.Add(context.Background(), sampleRecord())
		assert.ErrorContains(t, err, "insert prediction record")
	})

	t.Run("joins a context transaction", func(t *testing.T) {
		s, mock, db := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO predictions").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		require.NoError(t, err)

		ctx := duckdb.WithTransaction(context.Background(), tx)
		require.NoError(t, s.Add(ctx, sampleRecord()))
		require.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHistoryStore_GetRecent(t *testing.T) {
	s, mock := setupMock(t)
	rec := sampleRecord()

	rows := sqlmock.NewRows([]string{
		"id", "created_at", "mode", "category", "region", "month",
		"discount", "profit_margin", "prediction", "success",
	}).AddRow(rec.ID, rec.CreatedAt, rec.Mode, rec.Category, rec.Region, rec.Month,
		rec.Discount, rec.ProfitMargin, rec.Prediction, rec.Success)

	mock.ExpectQuery("SELECT (.+) FROM predictions").
		WithArgs(5).
		WillReturnRows(rows)

	records, err := s.GetRecent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec, records[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryStore_GetRecent_DefaultLimit(t *testing.T) {
	s, mock := setupMock(t)

	mock.ExpectQuery("SELECT (.+) FROM predictions").
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "created_at", "mode", "category", "region", "month",
			"discount", "profit_margin", "prediction", "success",
		}))

	records, err := s.GetRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryStore_GetStats(t *testing.T) {
	t.Run("with records", func(t *testing.T) {
		s, mock := setupMock(t)
		last := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(sqlmock.NewRows([]string{"count", "max"}).AddRow(12, last))

		stats, err := s.GetStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(12), stats.RecordsCount)
		require.NotNil(t, stats.LastPredictionAt)
		assert.Equal(t, last, *stats.LastPredictionAt)
	})

	t.Run("empty table", func(t *testing.T) {
		s, mock := setupMock(t)

		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(sqlmock.NewRows([]string{"count", "max"}).AddRow(0, nil))

		stats, err := s.GetStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.RecordsCount)
		assert.Nil(t, stats.LastPredictionAt)
	})
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}
