package failure_test

import (
	"errors"
	"fieldserve/shared/failure"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Kind:    failure.KindInvalidInput,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		kind    failure.Kind
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			kind:    failure.KindInvalidInput,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			kind:    failure.KindInvalidInput,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			kind:    failure.KindForbidden,
			message: "You don't have the required permissions",
		},
		{
			name:    "ResourceRestrictedError",
			failure: failure.ResourceRestrictedError,
			kind:    failure.KindForbidden,
			message: "You don't have permission to access this resource",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.failure.Kind)
			assert.Equal(t, tt.message, tt.failure.Message)
		})
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Kind: failure.KindInvalidInput, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				assert.NoError(t, result)

				return
			}

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestInternalError(t *testing.T) {
	assert.NoError(t, failure.InternalError(nil))

	err := failure.InternalError(errors.New("database connection failed"))
	assert.Equal(t, failure.KindInternal, failure.KindOf(err))
	assert.Equal(t, "database connection failed", err.Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    failure.Kind
		message string
	}{
		{"Unauthorized", failure.Unauthorized("token expired"), failure.KindUnauthorized, "token expired"},
		{"Unimplemented", failure.Unimplemented("GetUserByID"), failure.KindUnimplemented, "GetUserByID"},
		{"NotFound", failure.NotFound("booking not found"), failure.KindNotFound, "booking not found"},
		{"Conflict", failure.Conflict("already exists"), failure.KindConflict, "already exists"},
		{"Forbidden", failure.Forbidden("Access denied"), failure.KindForbidden, "Access denied"},
		{"BadRequestFromString", failure.BadRequestFromString("bad"), failure.KindInvalidInput, "bad"},
		{"Newf", failure.Newf(failure.KindOverApplication, "over by %s", "10.00"), failure.KindOverApplication, "over by 10.00"},
		{
			"InvalidTransition",
			failure.InvalidTransition("booking", "completed", "cancel"),
			failure.KindInvalidTransition,
			"cannot cancel booking in status completed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, failure.KindOf(tt.err))
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected failure.Kind
	}{
		{
			name:     "failure error",
			input:    failure.New(failure.KindAlreadyInvoiced, "test"),
			expected: failure.KindAlreadyInvoiced,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("failed to issue invoice: %w", failure.New(failure.KindNotCompleted, "test")),
			expected: failure.KindNotCompleted,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: failure.KindInternal,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.KindOf(tt.input))
		})
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", failure.New(failure.KindHasApplications, "has applications"))

	assert.True(t, failure.IsKind(err, failure.KindHasApplications))
	assert.False(t, failure.IsKind(err, failure.KindNotIssued))
	assert.False(t, failure.IsKind(errors.New("plain"), failure.KindInternal))
	assert.True(t, errors.Is(err, &failure.Failure{Kind: failure.KindHasApplications}))
}
