package sqlstore

import (
	"context"
	"fmt"

	"roadservice/internal/domain/paging"
	"roadservice/internal/domain/sign"
	"roadservice/internal/store/repositories"
)

var _ repositories.SignRepository = (*SignTable)(nil)

type SignTable struct {
	*Table[sign.Sign]
}

func NewSignTable(db *DB) *SignTable {
	return &SignTable{newTable(db, binding[sign.Sign]{
		name:    "sign",
		table:   "signs",
		columns: []string{"road_id"},
		values: func(s *sign.Sign) []any {
			return []any{s.RoadID}
		},
		id: func(s *sign.Sign) int64 { return s.ID },
		fields: paging.SortFields{
			"id":        "signs.id",
			"roadId":    "signs.road_id",
			"createdAt": "signs.created_at",
			"updatedAt": "signs.updated_at",
		},
		parentFK: func(s *sign.Sign) string {
			return fmt.Sprintf("Road ID %d doesn't exist", s.RoadID)
		},
	})}
}

func byRoad(roadID int64) Scope {
	return Scope{
		Joins: []string{"JOIN roads ON signs.road_id = roads.id"},
		Where: "signs.road_id = ?",
		Args:  []any{roadID},
	}
}

// ListByRoad returns one page of the signs posted on a road.
func (t *SignTable) ListByRoad(ctx context.Context, pas paging.PagingAndSorting, roadID int64) ([]sign.Sign, error) {
	return t.ListScoped(ctx, pas, byRoad(roadID))
}

func (t *SignTable) CountByRoad(ctx context.Context, roadID int64) (int64, error) {
	return t.CountScoped(ctx, byRoad(roadID))
}
