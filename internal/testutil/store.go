// Package testutil provides shared test helpers.
package testutil

import (
	"context"
	"testing"

	"roadservice/internal/store/sqlstore"
)

// NewStore returns a migrated in-memory store that is closed when the test
// completes.
func NewStore(t *testing.T, opts ...sqlstore.Option) *sqlstore.DB {
	t.Helper()
	ctx := context.Background()

	db, err := sqlstore.OpenMemory(ctx, opts...)
	if err != nil {
		t.Fatalf("testutil.NewStore: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("testutil.NewStore: migrate: %v", err)
	}
	return db
}
