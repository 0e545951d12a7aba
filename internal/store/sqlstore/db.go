// Package sqlstore implements the resource repositories on a relational
// store. Postgres is reached through pgxpool; the "memory" type runs an
// in-process SQLite database with the same schema.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"roadservice/internal/config"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DB is the shared connection pool plus the clock used for row timestamps.
type DB struct {
	*sqlx.DB
	dialect Dialect
	pool    *pgxpool.Pool
	now     func() time.Time
}

type Option func(*DB)

// WithClock overrides the time source for createdAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(d *DB) { d.now = now }
}

// Open selects the store from cfg.Type.
func Open(ctx context.Context, cfg config.DBCfg, opts ...Option) (*DB, error) {
	switch cfg.Type {
	case config.DBTypePostgres:
		return OpenPostgres(ctx, cfg.PostgresDSN(), cfg.ConnectTimeout, opts...)
	case config.DBTypeMemory:
		return OpenMemory(ctx, opts...)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
	}
}

// MustOpen is Open for process startup.
func MustOpen(ctx context.Context, cfg config.DBCfg, opts ...Option) *DB {
	db, err := Open(ctx, cfg, opts...)
	if err != nil {
		log.Fatal().Err(err).Str("db_type", cfg.Type).Msg("db connect fail")
	}
	return db
}

// OpenPostgres creates a pgx pool and waits up to connectTimeout for the
// server to answer a ping.
func OpenPostgres(ctx context.Context, dsn string, connectTimeout time.Duration, opts ...Option) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = connectTimeout
	ping := func() error { return pool.Ping(ctx) }
	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Dur("retry_in", wait).Msg("db ping failed")
	}
	if err := backoff.RetryNotify(ping, backoff.WithContext(bo, ctx), notify); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	d := &DB{
		DB:      sqlx.NewDb(stdlib.OpenDBFromPool(pool), "pgx"),
		dialect: DialectPostgres,
		pool:    pool,
	}
	return d.apply(opts), nil
}

// OpenMemory opens an empty in-process SQLite database. It lives as long
// as its single connection, so the pool is pinned to one.
func OpenMemory(ctx context.Context, opts ...Option) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := sqlDB.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	d := &DB{
		DB:      sqlx.NewDb(sqlDB, "sqlite"),
		dialect: DialectSQLite,
	}
	return d.apply(opts), nil
}

func (d *DB) apply(opts []Option) *DB {
	d.now = time.Now
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *DB) Dialect() Dialect { return d.dialect }

// Now returns the row timestamp: UTC, truncated to the precision both
// dialects store.
func (d *DB) Now() time.Time {
	return d.now().UTC().Truncate(time.Microsecond)
}

func (d *DB) Close() error {
	err := d.DB.Close()
	if d.pool != nil {
		d.pool.Close()
	}
	return err
}
