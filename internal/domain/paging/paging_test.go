package paging

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadservice/internal/apperror"
)

var roadFields = SortFields{
	"id":             "roads.id",
	"surfaceType":    "roads.surface_type",
	"intersectionId": "roads.intersection_id",
	"createdAt":      "roads.created_at",
	"updatedAt":      "roads.updated_at",
}

func TestResolveSort(t *testing.T) {
	tests := []struct {
		sort string
		want string
	}{
		{"createdAt,desc", "roads.created_at DESC, roads.id DESC"},
		{"surfaceType,asc", "roads.surface_type ASC, roads.id ASC"},
		{"intersectionId, desc ", "roads.intersection_id DESC, roads.id DESC"},
		{"id,asc", "roads.id ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			order, err := ResolveSort(tt.sort, roadFields)
			require.NoError(t, err)
			assert.Equal(t, tt.want, order.SQL())
		})
	}
}

func TestResolveSortRejects(t *testing.T) {
	tests := []struct {
		name   string
		sort   string
		reason string
	}{
		{"unknown field", "bogusField,asc", "unknown field bogusField"},
		{"missing direction", "surfaceType", "expected <field>,<asc|desc>"},
		{"too many tokens", "surfaceType,asc,desc", "expected <field>,<asc|desc>"},
		{"bad direction", "surfaceType,up", "direction must be asc or desc"},
		{"direction is case sensitive", "surfaceType,ASC", "direction must be asc or desc"},
		{"empty", "", "expected <field>,<asc|desc>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveSort(tt.sort, roadFields)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperror.ErrBadRequest)

			var sortErr *InvalidSortError
			require.True(t, errors.As(err, &sortErr))
			assert.Equal(t, tt.reason, sortErr.Reason)
		})
	}
}

func TestResolveSortWithoutIDField(t *testing.T) {
	order, err := ResolveSort("name,asc", SortFields{"name": "name"})
	require.NoError(t, err)
	assert.Equal(t, OrderBy{{Column: "name", Direction: Asc}}, order)
}

func TestNew(t *testing.T) {
	p, err := New("", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)

	p, err = New("id,asc", 3, 500)
	require.NoError(t, err)
	assert.Equal(t, MaxSize, p.Size)
	assert.Equal(t, 300, p.Offset())
	assert.Equal(t, MaxSize, p.Limit())

	_, err = New("", -1, 10)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	_, err = New("", 0, 0)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	// The offset of the last representable page still fits in an int.
	p, err = New("", math.MaxInt/MaxSize, 1000)
	require.NoError(t, err)
	assert.Equal(t, (math.MaxInt/MaxSize)*MaxSize, p.Offset())

	_, err = New("", math.MaxInt/MaxSize+1, 1000)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	huge := math.MaxInt/16 + 1
	_, err = New("", huge, 16)
	require.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.Equal(t, fmt.Sprintf("page %d is out of range for size 16", huge), apperror.Details(err))
}

func TestPagedResponseJSON(t *testing.T) {
	resp := NewPagedResponse[int](nil, 2, 41)
	assert.Equal(t, 0, resp.Size)

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"elements":[],"page":2,"size":0,"total":41}`, string(b))

	resp = NewPagedResponse([]int{4, 5, 6}, 1, 9)
	assert.Equal(t, 3, resp.Size)
}
