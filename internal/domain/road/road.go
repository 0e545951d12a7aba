package road

import (
	"time"

	"roadservice/internal/apperror"
)

// SurfaceType is the paving of a road.
type SurfaceType string

const (
	SurfaceAsphalt  SurfaceType = "asphalt"
	SurfaceConcrete SurfaceType = "concrete"
	SurfaceGravel   SurfaceType = "gravel"
)

// Valid reports whether s is one of the known surface types.
func (s SurfaceType) Valid() bool {
	switch s {
	case SurfaceAsphalt, SurfaceConcrete, SurfaceGravel:
		return true
	}
	return false
}

// Road belongs to exactly one intersection and carries zero or more signs.
type Road struct {
	ID             int64       `json:"id" db:"id"`
	SurfaceType    SurfaceType `json:"surfaceType" db:"surface_type"`
	IntersectionID int64       `json:"intersectionId" db:"intersection_id"`
	CreatedAt      time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time   `json:"updatedAt" db:"updated_at"`
}

// New validates the client supplied fields of a road. Whether the
// intersection exists is left to the storage constraint.
func New(surface SurfaceType, intersectionID int64) (*Road, error) {
	r := &Road{SurfaceType: surface, IntersectionID: intersectionID}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Road) Validate() error {
	if !r.SurfaceType.Valid() {
		return apperror.BadRequest("surfaceType must be one of asphalt, concrete, gravel, got %q", r.SurfaceType)
	}
	if r.IntersectionID <= 0 {
		return apperror.BadRequest("intersectionId is required")
	}
	return nil
}
