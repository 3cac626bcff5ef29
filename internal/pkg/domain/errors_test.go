package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf_WrappedError(t *testing.T) {
	err := fmt.Errorf("loading bookings: %w", NewInvalidStateError("confirmed", "confirmed"))

	assert.Equal(t, CodeInvalidState, CodeOf(err))
	assert.True(t, IsInvalidState(err))
	assert.False(t, IsValidation(err))
}

func TestCodeOf_PlainError(t *testing.T) {
	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("boom")))
	assert.False(t, IsDomainError(errors.New("boom")))
	assert.Equal(t, ErrorCode(""), CodeOf(nil))
}

func TestBackendError_KeepsUnderlyingMessage(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewBackendError("create listing", cause)

	assert.True(t, IsBackend(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "create listing: permission denied", err.Error())
}

func TestConstructors_Codes(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{NewValidationError("all fields are required"), CodeValidation},
		{NewAuthRequiredError("sign in to book"), CodeAuthRequired},
		{NewNotFoundError("Listing", "abc"), CodeNotFound},
		{NewForbiddenError("admin only"), CodeForbidden},
		{NewConflictError("stale"), CodeConflict},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, CodeOf(tc.err), tc.err.Error())
	}
}

func TestNotFoundError_Message(t *testing.T) {
	assert.Equal(t, "Listing abc not found", NewNotFoundError("Listing", "abc").Error())
}
