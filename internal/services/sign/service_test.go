package sign_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadservice/internal/apperror"
	"roadservice/internal/domain/road"
	"roadservice/internal/domain/sign"
	"roadservice/internal/services/resource"
	signsvc "roadservice/internal/services/sign"
	"roadservice/internal/testutil"
)

func TestListSignsByRoad(t *testing.T) {
	tb := testutil.NewTables(testutil.NewStore(t))
	svc := signsvc.NewService(tb.Signs)
	ctx := context.Background()

	i := tb.MustIntersection(t, "only")
	ra := tb.MustRoad(t, road.SurfaceAsphalt, i.ID)
	rb := tb.MustRoad(t, road.SurfaceConcrete, i.ID)
	for k := 0; k < 4; k++ {
		tb.MustSign(t, ra.ID)
	}
	tb.MustSign(t, rb.ID)

	res, err := svc.ListSigns(ctx, signsvc.ListRequest{
		ListRequest: resource.ListRequest{Sort: "id,asc", Page: 1, Size: 3},
		RoadID:      &ra.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 1, res.Size)
	assert.Equal(t, int64(4), res.Total)
	assert.Equal(t, ra.ID, res.Elements[0].RoadID)

	all, err := svc.ListSigns(ctx, signsvc.ListRequest{ListRequest: resource.DefaultListRequest()})
	require.NoError(t, err)
	assert.Equal(t, int64(5), all.Total)
}

func TestUpdateSignToMissingRoad(t *testing.T) {
	tb := testutil.NewTables(testutil.NewStore(t))
	svc := signsvc.NewService(tb.Signs)
	ctx := context.Background()

	i := tb.MustIntersection(t, "only")
	r := tb.MustRoad(t, road.SurfaceAsphalt, i.ID)
	s := tb.MustSign(t, r.ID)

	_, err := svc.Update(ctx, s.ID, &sign.Sign{RoadID: 99999})
	require.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.Equal(t, "Road ID 99999 doesn't exist", apperror.Details(err))

	_, err = svc.Update(ctx, s.ID, &sign.Sign{})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	stored, err := svc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, stored.RoadID)
}
