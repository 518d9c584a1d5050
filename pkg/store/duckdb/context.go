package duckdb

import (
	"context"
	"database/sql"
)

type txKey struct{}

// WithTransaction stashes a transaction in the context so store writes can
// join a caller-managed unit of work.
func WithTransaction(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func GetTransaction(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}
