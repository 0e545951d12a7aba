package sqlstore

import (
	"roadservice/internal/domain/intersection"
	"roadservice/internal/domain/paging"
	"roadservice/internal/store/repositories"
)

var _ repositories.IntersectionRepository = (*IntersectionTable)(nil)

// IntersectionTable stores intersections. It is the root of the network and
// has no relationship scope.
type IntersectionTable struct {
	*Table[intersection.Intersection]
}

func NewIntersectionTable(db *DB) *IntersectionTable {
	return &IntersectionTable{newTable(db, binding[intersection.Intersection]{
		name:    "intersection",
		table:   "intersections",
		columns: []string{"name"},
		values: func(i *intersection.Intersection) []any {
			return []any{i.Name}
		},
		id: func(i *intersection.Intersection) int64 { return i.ID },
		fields: paging.SortFields{
			"id":        "intersections.id",
			"name":      "intersections.name",
			"createdAt": "intersections.created_at",
			"updatedAt": "intersections.updated_at",
		},
		parentFK: func(*intersection.Intersection) string { return "intersection violates a foreign key" },
	})}
}
