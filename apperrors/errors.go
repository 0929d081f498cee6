// Package apperrors defines the error taxonomy shared by the ingestion
// pipeline, the store layer and the HTTP handlers. Components fail fast with
// one of these errors; only the handler boundary translates them into HTTP
// responses.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type kind int

const (
	kindValidation kind = iota + 1
	kindNotFound
	kindAuthorization
	kindForbidden
	kindFetch
	kindExtraction
	kindFileFormat
	kindUnsupportedType
	kindClassifier
	kindClassifierUpstream
	kindPersistence
	kindInternal
)

// Error is a structured application error carrying the HTTP status it maps
// to and a user-facing message. Internal detail stays in Details and is
// logged server-side, never returned to clients on 5xx responses.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`

	kind kind
}

func (e *Error) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Message)
}

// WithMessage returns a copy with a more specific user-facing message.
func (e *Error) WithMessage(format string, args ...any) *Error {
	return &Error{Code: e.Code, Message: fmt.Sprintf(format, args...), Details: e.Details, kind: e.kind}
}

// WithCause attaches the underlying error as detail.
func (e *Error) WithCause(err error) *Error {
	out := &Error{Code: e.Code, Message: e.Message, Details: e.Details, kind: e.kind}
	if err != nil {
		out.Details = err.Error()
	}
	return out
}

// Is matches derived copies against their taxonomy template, so
// `errors.Is(err, apperrors.ErrValidation)` holds after WithMessage or
// WithCause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind
}

func newError(k kind, code int, message string) *Error {
	return &Error{Code: code, Message: message, kind: k}
}

// Templates for the application error taxonomy.
var (
	ErrValidation      = newError(kindValidation, http.StatusBadRequest, "invalid request")
	ErrNotFound        = newError(kindNotFound, http.StatusNotFound, "resource not found")
	ErrAuthorization   = newError(kindAuthorization, http.StatusUnauthorized, "not authorized")
	ErrForbidden       = newError(kindForbidden, http.StatusForbidden, "forbidden")
	ErrFetch           = newError(kindFetch, http.StatusBadRequest, "failed to scrape website")
	ErrExtraction      = newError(kindExtraction, http.StatusBadRequest, "failed to get body content")
	ErrFileFormat      = newError(kindFileFormat, http.StatusBadRequest, "failed to parse file")
	ErrUnsupportedType = newError(kindUnsupportedType, http.StatusBadRequest, "unsupported file type")
	ErrClassifier      = newError(kindClassifier, http.StatusBadRequest, "failed to classify content")
	// ErrClassifierUpstream is the model service being unreachable after
	// retries, as opposed to it answering with something unusable.
	ErrClassifierUpstream = newError(kindClassifierUpstream, http.StatusInternalServerError, "classification service unavailable")
	ErrPersistence        = newError(kindPersistence, http.StatusBadRequest, "failed to create summary")
	ErrInternal           = newError(kindInternal, http.StatusInternalServerError, "internal server error")
)

// HTTPStatus returns the status code an error maps to, defaulting to 500
// for errors outside the taxonomy.
func HTTPStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return http.StatusInternalServerError
}

// UserMessage returns the message safe to expose to API clients.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ErrInternal.Message
}
