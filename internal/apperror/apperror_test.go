package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsMatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("get road: %w", NotFound("road %d not found", 7))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "road 7 not found", Details(err))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("fk constraint")
	err := Wrap(ErrBadRequest, cause, "intersection 99 does not exist")

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "intersection 99 does not exist", Details(err))
	assert.Contains(t, err.Error(), "fk constraint")
}

func TestDetailsOfPlainError(t *testing.T) {
	assert.Empty(t, Details(errors.New("boom")))
}
