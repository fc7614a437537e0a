package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name            string
		originalError   error
		message         string
		expectedMessage string
	}{
		{
			name:            "wrap simple error",
			originalError:   errors.New("original error"),
			message:         "wrapper message",
			expectedMessage: "wrapper message: original error",
		},
		{
			name:            "empty wrapper message",
			originalError:   errors.New("original error"),
			message:         "",
			expectedMessage: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrappedError := WrapError(tt.originalError, tt.message)
			require.Error(t, wrappedError)
			assert.Equal(t, tt.expectedMessage, wrappedError.Error())
			assert.True(t, errors.Is(wrappedError, tt.originalError))
		})
	}
}

func TestWrapError_Nil(t *testing.T) {
	assert.NoError(t, WrapError(nil, "context"))
	assert.NoError(t, WrapErrorf(nil, "context %d", 1))
}

func TestWrapErrorf(t *testing.T) {
	err := WrapErrorf(ErrInvalidConfiguration, "loading %s", "config.json")
	assert.Equal(t, "loading config.json: invalid configuration", err.Error())
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapError(NewNetworkError("http://x/", "HTTP request failed", cause), "fetching")

	assert.True(t, IsNetworkError(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "network error for 'http://x/'")
	assert.False(t, IsNetworkError(cause))
}

func TestHTTPError(t *testing.T) {
	err := NewHTTPErrorWithURL(http.StatusNotFound, "not found", "http://x/")
	assert.Equal(t, "HTTP 404 error for 'http://x/': not found", err.Error())

	var httpErr *HTTPError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.False(t, IsNetworkError(err))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("short_name", "", "must not be empty")
	assert.Equal(t, "validation failed for field 'short_name': must not be empty (value: )", err.Error())
}

func TestCombineErrors(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")

	assert.NoError(t, CombineErrors(nil))
	assert.NoError(t, CombineErrors([]error{nil, nil}))
	assert.Same(t, first, CombineErrors([]error{nil, first}))
	assert.Equal(t, "multiple errors occurred: [first; second]", CombineErrors([]error{first, second}).Error())
}
