package bootstrap

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestWindowCreationError(t *testing.T) {
	err := WindowCreationError(errors.New("no display"), "create window")
	assert.True(t, errors.Is(err, ErrWindowCreation))
	assert.Contains(t, err.Error(), "no display")

	err = WindowCreationError(nil, "create window")
	assert.True(t, errors.Is(err, ErrWindowCreation))
}

func TestInstanceCreationErrorMessage(t *testing.T) {
	err := &InstanceCreationError{Code: -7}
	assert.Equal(t, "failed to create instance: error code: -7", err.Error())
	assert.Nil(t, errors.UnwrapOnce(err))
}
