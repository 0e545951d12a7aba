package sqlstore

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// goose keeps its dialect and filesystem in package state.
var migrateMu sync.Mutex

// gooseLogger routes goose output through zerolog.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) {
	log.Info().Str("component", "migrate").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (gooseLogger) Fatalf(format string, v ...any) {
	log.Fatal().Str("component", "migrate").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Migrate applies every pending migration for the store's dialect. It runs
// once at startup, before the server accepts requests.
func (d *DB) Migrate(ctx context.Context) error {
	dialect, dir := "sqlite3", "migrations/sqlite"
	if d.dialect == DialectPostgres {
		dialect, dir = "postgres", "migrations/postgres"
	}

	migrateMu.Lock()
	defer migrateMu.Unlock()

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{})

	if err := goose.UpContext(ctx, d.DB.DB, dir); err != nil {
		return fmt.Errorf("apply %s migrations: %w", d.dialect, err)
	}
	return nil
}
