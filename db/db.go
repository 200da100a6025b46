package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Connect открывает пул соединений к postgres и проверяет его
func Connect(ctx context.Context, connString string) (*sqlx.DB, error) {
	dbConn, err := sqlx.ConnectContext(ctx, "postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to DB: %w", err)
	}
	return dbConn, nil
}
