package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithMessageKeepsIdentity(t *testing.T) {
	err := ErrValidation.WithMessage("Missing fields: %s", "username")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "Missing fields: username", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.Code)
	// The template itself must stay untouched.
	assert.Equal(t, "invalid request", ErrValidation.Message)
}

func TestWithCauseKeepsIdentity(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := ErrFetch.WithCause(cause)

	assert.True(t, errors.Is(err, ErrFetch))
	assert.Equal(t, "connection refused", err.Details)
	assert.Equal(t, "failed to scrape website", err.Message)
	assert.Equal(t, "", ErrFetch.Details)
}

func TestWithCauseNil(t *testing.T) {
	err := ErrClassifier.WithCause(nil)
	assert.True(t, errors.Is(err, ErrClassifier))
	assert.Equal(t, "", err.Details)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(ErrAuthorization))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(ErrForbidden.WithMessage("not yours")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(fmt.Errorf("wrapped: %w", ErrFileFormat)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("plain error")))
}

func TestClassifierErrorsSplitByCause(t *testing.T) {
	// A response the model answered with but that cannot be used is the
	// request's fault; the model service being unreachable is ours.
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrClassifier))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(ErrClassifierUpstream))
	assert.False(t, errors.Is(ErrClassifierUpstream, ErrClassifier))

	derived := ErrClassifierUpstream.WithCause(fmt.Errorf("connection reset"))
	assert.True(t, errors.Is(derived, ErrClassifierUpstream))
	assert.Equal(t, "classification service unavailable", UserMessage(derived))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "resource not found", UserMessage(ErrNotFound))
	assert.Equal(t, "not yours", UserMessage(ErrForbidden.WithMessage("not yours")))
	// Errors outside the taxonomy never leak their detail to clients.
	assert.Equal(t, "internal server error", UserMessage(fmt.Errorf("pq: duplicate key")))
}
