package road

import (
	"context"

	"roadservice/internal/domain/paging"
	"roadservice/internal/domain/road"
	"roadservice/internal/services/resource"
	"roadservice/internal/store/repositories"
)

// ListRequest adds the optional intersection filter to the paging
// parameters.
type ListRequest struct {
	resource.ListRequest
	IntersectionID *int64
}

// Service handles roads.
type Service struct {
	*resource.Service[road.Road]
	repo repositories.RoadRepository
}

func NewService(repo repositories.RoadRepository) *Service {
	return &Service{
		Service: resource.NewService(resource.Entity[road.Road]{
			Name:     "road",
			Validate: (*road.Road).Validate,
			SetID:    func(r *road.Road, id int64) { r.ID = id },
		}, repo),
		repo: repo,
	}
}

// ListRoads lists every road, or only the roads of req.IntersectionID when
// it is set. Total counts the same filtered set.
func (s *Service) ListRoads(ctx context.Context, req ListRequest) (*paging.PagedResponse[road.Road], error) {
	if req.IntersectionID == nil {
		return s.List(ctx, req.ListRequest)
	}
	id := *req.IntersectionID
	return s.Page(ctx, "list_by_intersection", req.ListRequest,
		func(ctx context.Context, pas paging.PagingAndSorting) ([]road.Road, error) {
			return s.repo.ListByIntersection(ctx, pas, id)
		},
		func(ctx context.Context) (int64, error) {
			return s.repo.CountByIntersection(ctx, id)
		},
	)
}
