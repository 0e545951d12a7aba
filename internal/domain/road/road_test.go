package road

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadservice/internal/apperror"
)

func TestNew(t *testing.T) {
	r, err := New(SurfaceGravel, 3)
	require.NoError(t, err)
	assert.Equal(t, SurfaceGravel, r.SurfaceType)
	assert.Equal(t, int64(3), r.IntersectionID)

	_, err = New("cobblestone", 3)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	_, err = New(SurfaceAsphalt, 0)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
}
