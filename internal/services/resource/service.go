// Package resource holds the service behaviour shared by every entity:
// paging normalisation, the paged envelope and CRUD pass-through with
// payload validation.
package resource

import (
	"context"

	"roadservice/internal/domain/paging"
	"roadservice/internal/store/repositories"
)

// ListRequest represents the raw paging parameters of a list call.
type ListRequest struct {
	Sort string
	Page int
	Size int
}

// DefaultListRequest is what a list call gets when no parameter is given.
func DefaultListRequest() ListRequest {
	return ListRequest{Sort: paging.DefaultSort, Page: paging.DefaultPage, Size: paging.DefaultSize}
}

// Paging validates the request and clamps the size.
func (req ListRequest) Paging() (paging.PagingAndSorting, error) {
	return paging.New(req.Sort, req.Page, req.Size)
}

// Entity tells the generic service how to treat one entity type.
type Entity[T any] struct {
	Name     string
	Validate func(*T) error
	SetID    func(*T, int64)
}

// Service wraps a facade with validation and the paged envelope.
type Service[T any] struct {
	entity Entity[T]
	repo   repositories.ResourceFacade[T]
}

func NewService[T any](entity Entity[T], repo repositories.ResourceFacade[T]) *Service[T] {
	return &Service[T]{entity: entity, repo: repo}
}

// List returns one page of every resource; total is the unfiltered count.
func (s *Service[T]) List(ctx context.Context, req ListRequest) (*paging.PagedResponse[T], error) {
	return s.Page(ctx, "list", req, s.repo.List, s.repo.Count)
}

// Page runs a list and its matching count and assembles the envelope.
// Scoped listings pass closures over their relationship filter.
func (s *Service[T]) Page(
	ctx context.Context,
	op string,
	req ListRequest,
	list func(context.Context, paging.PagingAndSorting) ([]T, error),
	count func(context.Context) (int64, error),
) (*paging.PagedResponse[T], error) {
	pas, err := req.Paging()
	if err != nil {
		return nil, s.fail(op, err)
	}
	elements, err := list(ctx, pas)
	if err != nil {
		return nil, s.fail(op, err)
	}
	total, err := count(ctx)
	if err != nil {
		return nil, s.fail(op+"_count", err)
	}
	return paging.NewPagedResponse(elements, pas.Page, total), nil
}

func (s *Service[T]) Get(ctx context.Context, id int64) (*T, error) {
	out, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, s.fail("get", err)
	}
	return out, nil
}

// Create validates the payload and stores it. Any id in the payload is
// ignored.
func (s *Service[T]) Create(ctx context.Context, payload *T) (*T, error) {
	if err := s.entity.Validate(payload); err != nil {
		return nil, s.fail("create", err)
	}
	s.entity.SetID(payload, 0)
	out, err := s.repo.Create(ctx, payload)
	if err != nil {
		return nil, s.fail("create", err)
	}
	return out, nil
}

// Update validates the payload and replaces the resource with the given id.
// The path id wins over any id in the payload.
func (s *Service[T]) Update(ctx context.Context, id int64, payload *T) (*T, error) {
	if err := s.entity.Validate(payload); err != nil {
		return nil, s.fail("update", err)
	}
	s.entity.SetID(payload, id)
	out, err := s.repo.Update(ctx, payload)
	if err != nil {
		return nil, s.fail("update", err)
	}
	return out, nil
}

func (s *Service[T]) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail("delete", err)
	}
	return nil
}

func (s *Service[T]) fail(op string, err error) error {
	return &ServiceError{Resource: s.entity.Name, Op: op, Err: err}
}

// ServiceError represents a failed service operation. It unwraps to the
// storage or validation error so callers can classify it.
type ServiceError struct {
	Resource string
	Op       string
	Err      error
}

func (e *ServiceError) Error() string {
	return e.Resource + " service " + e.Op + ": " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
