package intersection

import (
	"roadservice/internal/domain/intersection"
	"roadservice/internal/services/resource"
	"roadservice/internal/store/repositories"
)

// Service handles intersections. It adds nothing to the generic resource
// behaviour.
type Service struct {
	*resource.Service[intersection.Intersection]
}

func NewService(repo repositories.IntersectionRepository) *Service {
	return &Service{resource.NewService(resource.Entity[intersection.Intersection]{
		Name:     "intersection",
		Validate: (*intersection.Intersection).Validate,
		SetID:    func(i *intersection.Intersection, id int64) { i.ID = id },
	}, repo)}
}
