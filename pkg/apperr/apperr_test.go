package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := NotFoundf("order %d not found", 7)
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, NotFound, kind)
	assert.Equal(t, "order 7 not found", err.Error())

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("placing order: %w", InvalidStatef("cart is empty"))
	assert.True(t, IsInvalidState(err))
	assert.False(t, IsNotFound(err))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFoundf("x")))
	assert.True(t, IsInvalidArgument(InvalidArgumentf("x")))
	assert.True(t, IsInvalidState(InvalidStatef("x")))
	assert.False(t, IsInvalidArgument(nil))
}
