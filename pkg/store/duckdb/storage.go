package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const PredictionsTableSchema = `
	CREATE TABLE IF NOT EXISTS predictions (
		id VARCHAR NOT NULL PRIMARY KEY,
		created_at TIMESTAMP NOT NULL,
		mode VARCHAR NOT NULL,
		category INTEGER,
		region INTEGER,
		month INTEGER,
		discount DOUBLE,
		profit_margin DOUBLE,
		prediction DOUBLE,
		success BOOLEAN
	);
`

var bootQueries = []string{
	PredictionsTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=2", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
