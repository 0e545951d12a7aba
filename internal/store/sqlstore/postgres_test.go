package sqlstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadservice/internal/apperror"
	"roadservice/internal/domain/paging"
	"roadservice/internal/domain/road"
	"roadservice/internal/store/sqlstore"
	"roadservice/internal/testutil"
)

// TestPostgresRoundTrip runs against a disposable database named by
// ROADSERVICE_TEST_POSTGRES_DSN and is skipped when it is unset.
func TestPostgresRoundTrip(t *testing.T) {
	dsn := os.Getenv("ROADSERVICE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("ROADSERVICE_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()

	db, err := sqlstore.OpenPostgres(ctx, dsn, 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.Equal(t, sqlstore.DialectPostgres, db.Dialect())

	_, err = db.ExecContext(ctx, "DROP TABLE IF EXISTS signs, roads, intersections, goose_db_version")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx))

	tb := testutil.NewTables(db)
	i := tb.MustIntersection(t, "pg")
	r := tb.MustRoad(t, road.SurfaceConcrete, i.ID)
	tb.MustSign(t, r.ID)

	_, err = tb.Roads.Create(ctx, &road.Road{SurfaceType: road.SurfaceGravel, IntersectionID: 99999})
	require.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.Equal(t, "Intersection ID 99999 doesn't exist", apperror.Details(err))

	roads, err := tb.Roads.ListByIntersection(ctx, paging.Default(), i.ID)
	require.NoError(t, err)
	require.Len(t, roads, 1)
	assert.Equal(t, r.ID, roads[0].ID)

	n, err := tb.Signs.CountByRoad(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
