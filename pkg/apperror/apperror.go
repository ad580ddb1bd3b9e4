package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ValidationError reports missing or invalid required input. It maps to a
// 400 response carrying its message verbatim.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Validation builds a ValidationError with a formatted message.
func Validation(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFoundError reports that no row matched the request. It maps to a 404
// response naming the resource.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// NotFound builds a NotFoundError for the named resource.
func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// StorageError wraps any failure from the underlying store. The cause is
// preserved for the operator log but never exposed to callers; the transport
// layer substitutes a generic message.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage wraps err as a StorageError for the named operation.
func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// AsHTTP maps a domain error to an echo HTTPError. Validation errors keep
// their message, not-found errors name the resource, and everything else is
// reported with the caller-facing fallback message so store internals stay
// out of responses. The original error is attached as Internal so the
// request logger records the cause.
func AsHTTP(err error, fallback string) *echo.HTTPError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return echo.NewHTTPError(http.StatusBadRequest, ve.Msg)
	}
	var nfe *NotFoundError
	if errors.As(err, &nfe) {
		return echo.NewHTTPError(http.StatusNotFound, nfe.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, fallback).SetInternal(err)
}
