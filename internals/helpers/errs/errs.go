// Package errs holds the sentinel errors shared by every service.
// Services wrap them with fmt.Errorf("%w: ...") and controllers map them
// to HTTP statuses via helper.JsonServiceError.
package errs

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
)
