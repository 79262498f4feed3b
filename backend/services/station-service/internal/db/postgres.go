package db

import (
	"context"
	"database/sql"

	libdb "swapnet/backend/libs/db"
)

// NewPostgres connects to Postgres using shared library helper.
func NewPostgres(ctx context.Context, dsn string, maxOpenConns int) (*sql.DB, error) {
	return libdb.NewPostgresDBWithOptions(ctx, dsn, libdb.PoolOptions{MaxOpenConns: maxOpenConns})
}
