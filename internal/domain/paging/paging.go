// Package paging defines the page/sort request shared by every resource and
// the envelope returned for a page of results.
package paging

import (
	"fmt"
	"math"
	"strings"

	"roadservice/internal/apperror"
)

const (
	DefaultSort = "createdAt,desc"
	DefaultPage = 0
	DefaultSize = 10
	MaxSize     = 100

	// IDField is the property appended as the secondary sort key.
	IDField = "id"
)

// Direction is a sort direction token as accepted in the sort directive.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// PagingAndSorting is the per-request paging value. Sort has the form
// "<field>,<asc|desc>"; Page is zero based.
type PagingAndSorting struct {
	Sort string
	Page int
	Size int
}

// Default returns the paging used when a request supplies nothing.
func Default() PagingAndSorting {
	return PagingAndSorting{Sort: DefaultSort, Page: DefaultPage, Size: DefaultSize}
}

// New fills an empty sort with the default, clamps Size to MaxSize and
// rejects negative pages, non-positive sizes and pages whose offset would
// overflow.
func New(sort string, page, size int) (PagingAndSorting, error) {
	if sort == "" {
		sort = DefaultSort
	}
	if page < 0 {
		return PagingAndSorting{}, apperror.BadRequest("page must be >= 0, got %d", page)
	}
	if size <= 0 {
		return PagingAndSorting{}, apperror.BadRequest("size must be > 0, got %d", size)
	}
	if size > MaxSize {
		size = MaxSize
	}
	if page > math.MaxInt/size {
		return PagingAndSorting{}, apperror.BadRequest("page %d is out of range for size %d", page, size)
	}
	return PagingAndSorting{Sort: sort, Page: page, Size: size}, nil
}

func (p PagingAndSorting) Offset() int { return p.Page * p.Size }

func (p PagingAndSorting) Limit() int { return p.Size }

// SortFields maps the sortable property names of an entity to storage
// columns.
type SortFields map[string]string

// OrderTerm is one resolved ORDER BY key.
type OrderTerm struct {
	Column    string
	Direction Direction
}

// OrderBy is the resolved ordering: the requested key followed by the id
// tie-break in the same direction.
type OrderBy []OrderTerm

// InvalidSortError reports a sort directive that cannot be resolved.
type InvalidSortError struct {
	Sort   string
	Reason string
}

func (e *InvalidSortError) Error() string {
	return fmt.Sprintf("invalid sort param %q: %s", e.Sort, e.Reason)
}

func (e *InvalidSortError) Is(target error) bool { return target == apperror.ErrBadRequest }

func (e *InvalidSortError) ClientDetails() string {
	return "Invalid sort param: " + e.Reason
}

// ResolveSort parses the directive against fields. The id column is always
// appended as a secondary key so pages stay stable when the primary key has
// duplicate values.
func ResolveSort(sort string, fields SortFields) (OrderBy, error) {
	parts := strings.Split(sort, ",")
	if len(parts) != 2 {
		return nil, &InvalidSortError{Sort: sort, Reason: "expected <field>,<asc|desc>"}
	}

	column, ok := fields[parts[0]]
	if !ok {
		return nil, &InvalidSortError{Sort: sort, Reason: "unknown field " + parts[0]}
	}

	var dir Direction
	switch strings.TrimSpace(parts[1]) {
	case string(Asc):
		dir = Asc
	case string(Desc):
		dir = Desc
	default:
		return nil, &InvalidSortError{Sort: sort, Reason: "direction must be asc or desc"}
	}

	order := OrderBy{{Column: column, Direction: dir}}
	if idColumn, ok := fields[IDField]; ok && idColumn != column {
		order = append(order, OrderTerm{Column: idColumn, Direction: dir})
	}
	return order, nil
}

// SQL renders the ordering as an ORDER BY list, e.g. "created_at DESC, id DESC".
func (o OrderBy) SQL() string {
	terms := make([]string, 0, len(o))
	for _, t := range o {
		terms = append(terms, t.Column+" "+strings.ToUpper(string(t.Direction)))
	}
	return strings.Join(terms, ", ")
}
