package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/a48zhang/AIditor/config"
	"github.com/a48zhang/AIditor/pkg/logger"
	"github.com/a48zhang/AIditor/pkg/querybuilder"
)

const (
	pingAttempts = 5
	pingBackoff  = 2 * time.Second
)

// Dialect is the SQL flavour of the connected datastore.
type Dialect string

const (
	Postgres Dialect = config.DriverPostgres
	SQLite   Dialect = config.DriverSQLite
)

// Builder returns a query builder rendering placeholders for d.
func (d Dialect) Builder() querybuilder.Builder {
	if d == SQLite {
		return querybuilder.New(sq.Question, true)
	}
	return querybuilder.New(sq.Dollar, false)
}

// Connect opens the configured datastore and waits until it answers a ping.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, Dialect, error) {
	dialect := Dialect(cfg.Driver)
	db, err := Open(dialect, cfg.DSN())
	if err != nil {
		return nil, "", err
	}

	for i := 0; i < pingAttempts; i++ {
		if err = db.PingContext(ctx); err == nil {
			logger.Sugar.Infof("Successfully connected to the %s database", dialect)
			return db, dialect, nil
		}
		logger.Sugar.Infof("Database connection failed, retrying in %s... (%v)", pingBackoff, err)
		select {
		case <-ctx.Done():
			db.Close()
			return nil, "", ctx.Err()
		case <-time.After(pingBackoff):
		}
	}
	db.Close()
	return nil, "", fmt.Errorf("could not connect to database after %d attempts: %w", pingAttempts, err)
}

// Open returns a handle for dialect without checking connectivity.
func Open(dialect Dialect, dsn string) (*sql.DB, error) {
	switch dialect {
	case Postgres:
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return db, nil
	case SQLite:
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// SQLite serialises writers; one connection also keeps ":memory:" databases shared.
		db.SetMaxOpenConns(1)
		if !strings.Contains(dsn, ":memory:") {
			if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
				db.Close()
				return nil, fmt.Errorf("sqlite journal mode: %w", err)
			}
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database dialect %q", dialect)
	}
}
