package profilepulse_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pjbackcoding/profilepulse"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := profilepulse.Errorf(profilepulse.ENOTFOUND, "no element matches %q", "h1")

	assert.Equal(t, profilepulse.ENOTFOUND, profilepulse.ErrorCode(err))
	assert.Equal(t, "no element matches \"h1\"", profilepulse.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, profilepulse.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, profilepulse.EINTERNAL, profilepulse.ErrorCode(errors.New("boom")))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("awaiting name: %w",
		profilepulse.Errorf(profilepulse.ETIMEOUT, "element did not appear"))

	assert.Equal(t, profilepulse.ETIMEOUT, profilepulse.ErrorCode(err))
	assert.Equal(t, "element did not appear", profilepulse.ErrorMessage(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, profilepulse.ErrorMessage(nil))
}
