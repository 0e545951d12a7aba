package testutil

import (
	"context"
	"testing"

	"roadservice/internal/domain/intersection"
	"roadservice/internal/domain/road"
	"roadservice/internal/domain/sign"
	"roadservice/internal/store/sqlstore"
)

// Tables bundles the three entity tables over one store.
type Tables struct {
	Intersections *sqlstore.IntersectionTable
	Roads         *sqlstore.RoadTable
	Signs         *sqlstore.SignTable
}

func NewTables(db *sqlstore.DB) Tables {
	return Tables{
		Intersections: sqlstore.NewIntersectionTable(db),
		Roads:         sqlstore.NewRoadTable(db),
		Signs:         sqlstore.NewSignTable(db),
	}
}

func (tb Tables) MustIntersection(t *testing.T, name string) *intersection.Intersection {
	t.Helper()
	i, err := tb.Intersections.Create(context.Background(), &intersection.Intersection{Name: name})
	if err != nil {
		t.Fatalf("create intersection %q: %v", name, err)
	}
	return i
}

func (tb Tables) MustRoad(t *testing.T, surface road.SurfaceType, intersectionID int64) *road.Road {
	t.Helper()
	r, err := tb.Roads.Create(context.Background(), &road.Road{SurfaceType: surface, IntersectionID: intersectionID})
	if err != nil {
		t.Fatalf("create road on intersection %d: %v", intersectionID, err)
	}
	return r
}

func (tb Tables) MustSign(t *testing.T, roadID int64) *sign.Sign {
	t.Helper()
	s, err := tb.Signs.Create(context.Background(), &sign.Sign{RoadID: roadID})
	if err != nil {
		t.Fatalf("create sign on road %d: %v", roadID, err)
	}
	return s
}
