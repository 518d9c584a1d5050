package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/retail-tools/sales-atlas/pkg/models/store"
	"github.com/retail-tools/sales-atlas/pkg/store/duckdb"
)

// Store records completed predictions and serves them back for the history
// views. Failed attempts are recorded too; they carry Success=false and a
// zero prediction.
type Store interface {
	Add(ctx context.Context, record store.PredictionRecord) error
	GetRecent(ctx context.Context, limit int) ([]store.PredictionRecord, error)
	GetStats(ctx context.Context) (*store.PredictionStats, error)
}

type historyStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &historyStore{db: db}, nil
}

func (h *historyStore) Add(ctx context.Context, record store.PredictionRecord) error {
	query := `
		INSERT INTO predictions (
			id, created_at, mode, category, region, month,
			discount, profit_margin, prediction, success
		) VALUES (
			?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		)`

	args := []any{
		record.ID,
		record.CreatedAt,
		record.Mode,
		record.Category,
		record.Region,
		record.Month,
		record.Discount,
		record.ProfitMargin,
		record.Prediction,
		record.Success,
	}

	var err error
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		_, err = tx.ExecContext(ctx, query, args...)
	} else {
		_, err = h.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		return fmt.Errorf("insert prediction record: %w", err)
	}
	return nil
}

func (h *historyStore) GetRecent(ctx context.Context, limit int) ([]store.PredictionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, created_at, mode, category, region, month,
		       discount, profit_margin, prediction, success
		FROM predictions
		ORDER BY created_at DESC
		LIMIT ?
	`
	rows, err := h.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query prediction history: %w", err)
	}
	defer rows.Close()
	return scanPredictionRows(rows)
}

func (h *historyStore) GetStats(ctx context.Context) (*store.PredictionStats, error) {
	query := `SELECT COUNT(*), MAX(created_at) FROM predictions`

	var count int64
	var last sql.NullTime
	if err := h.db.QueryRowContext(ctx, query).Scan(&count, &last); err != nil {
		return nil, fmt.Errorf("get prediction stats: %w", err)
	}

	var lastAt *time.Time
	if last.Valid {
		t := last.Time
		lastAt = &t
	}
	return &store.PredictionStats{RecordsCount: count, LastPredictionAt: lastAt}, nil
}

func scanPredictionRows(rows *sql.Rows) ([]store.PredictionRecord, error) {
	records := make([]store.PredictionRecord, 0)
	for rows.Next() {
		var r store.PredictionRecord
		if err := rows.Scan(
			&r.ID,
			&r.CreatedAt,
			&r.Mode,
			&r.Category,
			&r.Region,
			&r.Month,
			&r.Discount,
			&r.ProfitMargin,
			&r.Prediction,
			&r.Success,
		); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
