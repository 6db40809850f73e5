package handler

import (
	"errors"
	"net/http"
)

var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error with a status code and a message catalog key. Keys
// resolve through the i18n catalog so clients see a localized message.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest         = HTTPError{Code: http.StatusBadRequest, Key: "errors.bad_request"}
	ErrNotFound           = HTTPError{Code: http.StatusNotFound, Key: "errors.not_found"}
	ErrMethodNotAllowed   = HTTPError{Code: http.StatusMethodNotAllowed, Key: "errors.method_not_allowed"}
	ErrInternal           = HTTPError{Code: http.StatusInternalServerError, Key: "errors.internal"}
	ErrServiceUnavailable = HTTPError{Code: http.StatusServiceUnavailable, Key: "errors.unavailable"}
)

// NewHTTPError creates an HTTPError with a custom status and catalog key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// WithStatus attaches an HTTPError to err so it keeps its cause for logging
// while mapping to the given status. Errors that already carry an HTTPError
// are returned unchanged.
func WithStatus(err error, status HTTPError) error {
	if err == nil {
		return nil
	}
	var existing HTTPError
	if errors.As(err, &existing) {
		return err
	}
	return errors.Join(status, err)
}

// HTTPErrorOf returns the HTTPError carried by err, or ErrInternal.
func HTTPErrorOf(err error) HTTPError {
	var he HTTPError
	if errors.As(err, &he) {
		return he
	}
	return ErrInternal
}

// StatusOf returns the status code err maps to.
func StatusOf(err error) int {
	return HTTPErrorOf(err).Code
}
