package db

import (
	"context"
	"database/sql"

	libdb "swapnet/backend/libs/db"
)

// NewPostgres returns shared DB connection.
func NewPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	return libdb.NewPostgresDB(ctx, dsn)
}
