package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("ticket", 42)

	require.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))

	domainErr := ToDomainError(err)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
	assert.Equal(t, "ticket not found", domainErr.Message)
	assert.Equal(t, "ticket", domainErr.Details["entity"])
	assert.Equal(t, uint64(42), domainErr.Details["id"])
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("priority must be between 1 and 5", map[string]any{"priority": 9})

	require.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, http.StatusBadRequest, ToDomainError(err).HTTPStatus)
}

func TestPredicatesMatchWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("loading ticket: %w", NewNotFound("ticket", 7))
	assert.True(t, IsNotFound(wrapped))
}

func TestToDomainError(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))

	plain := errors.New("disk full")
	domainErr := ToDomainError(plain)
	assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
	assert.Equal(t, plain, errors.Unwrap(domainErr))

	original := NewNotFound("user", 1)
	assert.Same(t, original.(*DomainError), ToDomainError(original))
}

func TestDomainErrorMessageIncludesCause(t *testing.T) {
	err := NewInternalError(errors.New("pool exhausted"))
	assert.Equal(t, "internal server error: pool exhausted", err.Error())
}
