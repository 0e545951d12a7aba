package repositories

import (
	"context"

	"roadservice/internal/domain/intersection"
	"roadservice/internal/domain/paging"
	"roadservice/internal/domain/road"
	"roadservice/internal/domain/sign"
)

// ResourceFacade is the data access contract shared by every resource.
type ResourceFacade[T any] interface {
	// Count returns the number of rows, ignoring paging.
	Count(ctx context.Context) (int64, error)
	// Get fails with apperror.ErrNotFound when no row has the id.
	Get(ctx context.Context, id int64) (*T, error)
	// List returns one page in the requested order, ties broken by id.
	List(ctx context.Context, pas paging.PagingAndSorting) ([]T, error)
	// Create inserts the resource and returns it with id and timestamps.
	// A missing parent fails with apperror.ErrBadRequest.
	Create(ctx context.Context, resource *T) (*T, error)
	// Update replaces the mutable fields and returns the stored row.
	Update(ctx context.Context, resource *T) (*T, error)
	// Delete removes the row; deleting an absent id succeeds.
	Delete(ctx context.Context, id int64) error
}

// IntersectionRepository is the root resource; it has no relationship scope.
type IntersectionRepository interface {
	ResourceFacade[intersection.Intersection]
}

// RoadRepository adds listing roads by their intersection.
type RoadRepository interface {
	ResourceFacade[road.Road]
	ListByIntersection(ctx context.Context, pas paging.PagingAndSorting, intersectionID int64) ([]road.Road, error)
	CountByIntersection(ctx context.Context, intersectionID int64) (int64, error)
}

// SignRepository adds listing signs by their road.
type SignRepository interface {
	ResourceFacade[sign.Sign]
	ListByRoad(ctx context.Context, pas paging.PagingAndSorting, roadID int64) ([]sign.Sign, error)
	CountByRoad(ctx context.Context, roadID int64) (int64, error)
}
