package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides the shared connection pool for all repositories.
// Every write in this package is a single statement, so repositories talk to
// the pool directly rather than managing explicit transactions.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
