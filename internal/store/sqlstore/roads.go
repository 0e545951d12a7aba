package sqlstore

import (
	"context"
	"fmt"

	"roadservice/internal/domain/paging"
	"roadservice/internal/domain/road"
	"roadservice/internal/store/repositories"
)

var _ repositories.RoadRepository = (*RoadTable)(nil)

type RoadTable struct {
	*Table[road.Road]
}

func NewRoadTable(db *DB) *RoadTable {
	return &RoadTable{newTable(db, binding[road.Road]{
		name:    "road",
		table:   "roads",
		columns: []string{"surface_type", "intersection_id"},
		values: func(r *road.Road) []any {
			return []any{string(r.SurfaceType), r.IntersectionID}
		},
		id: func(r *road.Road) int64 { return r.ID },
		fields: paging.SortFields{
			"id":             "roads.id",
			"surfaceType":    "roads.surface_type",
			"intersectionId": "roads.intersection_id",
			"createdAt":      "roads.created_at",
			"updatedAt":      "roads.updated_at",
		},
		parentFK: func(r *road.Road) string {
			return fmt.Sprintf("Intersection ID %d doesn't exist", r.IntersectionID)
		},
	})}
}

func byIntersection(intersectionID int64) Scope {
	return Scope{
		Joins: []string{"JOIN intersections ON roads.intersection_id = intersections.id"},
		Where: "roads.intersection_id = ?",
		Args:  []any{intersectionID},
	}
}

// ListByIntersection returns one page of the roads of an intersection.
func (t *RoadTable) ListByIntersection(ctx context.Context, pas paging.PagingAndSorting, intersectionID int64) ([]road.Road, error) {
	return t.ListScoped(ctx, pas, byIntersection(intersectionID))
}

func (t *RoadTable) CountByIntersection(ctx context.Context, intersectionID int64) (int64, error) {
	return t.CountScoped(ctx, byIntersection(intersectionID))
}
