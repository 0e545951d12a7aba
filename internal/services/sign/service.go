package sign

import (
	"context"

	"roadservice/internal/domain/paging"
	"roadservice/internal/domain/sign"
	"roadservice/internal/services/resource"
	"roadservice/internal/store/repositories"
)

// ListRequest adds the optional road filter to the paging parameters.
type ListRequest struct {
	resource.ListRequest
	RoadID *int64
}

// Service handles signs.
type Service struct {
	*resource.Service[sign.Sign]
	repo repositories.SignRepository
}

func NewService(repo repositories.SignRepository) *Service {
	return &Service{
		Service: resource.NewService(resource.Entity[sign.Sign]{
			Name:     "sign",
			Validate: (*sign.Sign).Validate,
			SetID:    func(s *sign.Sign, id int64) { s.ID = id },
		}, repo),
		repo: repo,
	}
}

// ListSigns lists every sign, or only the signs of req.RoadID when it is
// set.
func (s *Service) ListSigns(ctx context.Context, req ListRequest) (*paging.PagedResponse[sign.Sign], error) {
	if req.RoadID == nil {
		return s.List(ctx, req.ListRequest)
	}
	id := *req.RoadID
	return s.Page(ctx, "list_by_road", req.ListRequest,
		func(ctx context.Context, pas paging.PagingAndSorting) ([]sign.Sign, error) {
			return s.repo.ListByRoad(ctx, pas, id)
		},
		func(ctx context.Context) (int64, error) {
			return s.repo.CountByRoad(ctx, id)
		},
	)
}
