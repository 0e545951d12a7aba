package sign

import (
	"time"

	"roadservice/internal/apperror"
)

// Sign is posted on a single road.
type Sign struct {
	ID        int64     `json:"id" db:"id"`
	RoadID    int64     `json:"roadId" db:"road_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

func New(roadID int64) (*Sign, error) {
	s := &Sign{RoadID: roadID}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sign) Validate() error {
	if s.RoadID <= 0 {
		return apperror.BadRequest("roadId is required")
	}
	return nil
}
