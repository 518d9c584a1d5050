package duckdb

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_BootstrapsPredictionsTable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := NewDB(Settings{
		DbPath: dbPath,
	})
	require.NoError(t, err)
	require.NotNil(t, db)

	defer func() {
		err := db.Close()
		if err != nil {
			t.Errorf("failed to close database connection: %v", err)
		}
	}()

	_, err = db.Exec(
		`INSERT INTO predictions (id, created_at, mode, category, region, month,
			discount, profit_margin, prediction, success)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		"prediction-001", time.Now().UTC(), "heuristic-simulation", 0, 1, 6, 0.1, 0.2, 3136.32, true,
	)
	require.NoError(t, err)

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM predictions WHERE id = ?", "prediction-001").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
