package commands

import (
	"fmt"
	"testing"

	"github.com/go-errors/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"
)

func TestHasErrorCode(t *testing.T) {
	err := ComplexError{
		Code:    MalformedResponse,
		Message: "bad json",
		frame:   xerrors.Caller(0),
	}

	assert.True(t, HasErrorCode(err, MalformedResponse))
	assert.False(t, HasErrorCode(err, DaemonUnavailable))
	assert.False(t, HasErrorCode(err, PathNotFound))

	assert.False(t, HasErrorCode(errors.New("plain"), MalformedResponse))
	assert.False(t, HasErrorCode(nil, MalformedResponse))
}

func TestHasErrorCodeSeesThroughWrapping(t *testing.T) {
	err := ComplexError{
		Code:    PathNotFound,
		Message: "gone",
		frame:   xerrors.Caller(0),
	}
	wrapped := fmt.Errorf("scanning snap: %w", err)

	assert.True(t, HasErrorCode(wrapped, PathNotFound))
}

func TestComplexErrorMessageIncludesCode(t *testing.T) {
	err := ComplexError{
		Code:    DaemonUnavailable,
		Message: "socket gone",
		frame:   xerrors.Caller(0),
	}

	assert.Contains(t, err.Error(), "socket gone")
}

func TestWrapErrorNil(t *testing.T) {
	assert.NoError(t, WrapError(nil))
}
