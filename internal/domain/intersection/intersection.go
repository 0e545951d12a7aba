package intersection

import (
	"strings"
	"time"

	"roadservice/internal/apperror"
)

// Intersection is the root of the road network; roads hang off it.
type Intersection struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// New validates the client supplied fields of an intersection.
func New(name string) (*Intersection, error) {
	i := &Intersection{Name: name}
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return i, nil
}

// Validate checks the mutable fields and trims the name.
func (i *Intersection) Validate() error {
	i.Name = strings.TrimSpace(i.Name)
	if i.Name == "" {
		return apperror.BadRequest("intersection name is required")
	}
	return nil
}
