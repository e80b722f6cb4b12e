package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError_PassesThroughDomainErrors(t *testing.T) {
	t.Parallel()

	err := NewDuplicateAccount()
	mapped := ToDomainError(err)
	assert.Equal(t, "DUPLICATE_ACCOUNT", mapped.Code)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
}

func TestToDomainError_HidesInternals(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused: db host 10.0.0.5")
	mapped := ToDomainError(cause)
	require.NotNil(t, mapped)
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	assert.NotContains(t, mapped.Message, "10.0.0.5")
}

func TestToDomainError_NoRows(t *testing.T) {
	t.Parallel()

	mapped := ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainError_Nil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ToDomainError(nil))
}

func TestInvalidCredentialsAndUnauthorizedStatuses(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusUnauthorized, ToDomainError(NewInvalidCredentials()).HTTPStatus)
	assert.Equal(t, http.StatusUnauthorized, ToDomainError(NewUnauthorized("nope")).HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, ToDomainError(NewValidationError("bad", nil)).HTTPStatus)
}

func TestDomainError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := NewInternalError(cause)
	assert.True(t, errors.Is(err, cause))
}
