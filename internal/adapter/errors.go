package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("server rejected request")
	ErrNotFound            = errors.New("not found on server")
	ErrServerUnavailable   = errors.New("server temporarily unavailable")
	ErrBadGateway          = errors.New("server upstream failure")
	ErrInternalServerError = errors.New("internal server error")

	// ErrUploadRejected is returned when a photo upload response carries a
	// body-level error despite its committed success status.
	ErrUploadRejected = errors.New("photo upload rejected")
)
