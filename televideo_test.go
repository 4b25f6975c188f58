package televideo_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/televideo"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := televideo.Errorf(televideo.ENOTFOUND, "page %q not found", "101")

	assert.Equal(t, televideo.ENOTFOUND, televideo.ErrorCode(err))
	assert.Equal(t, "page \"101\" not found", televideo.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, televideo.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, televideo.ErrorMessage(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, televideo.EINTERNAL, televideo.ErrorCode(err))
	assert.Equal(t, "Internal error.", televideo.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	inner := televideo.Errorf(televideo.EUNAVAILABLE, "connection refused")
	err := fmt.Errorf("fetch page: %w", inner)

	assert.Equal(t, televideo.EUNAVAILABLE, televideo.ErrorCode(err))
	assert.Equal(t, "connection refused", televideo.ErrorMessage(err))
}
