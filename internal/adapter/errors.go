package adapter

import "errors"

// Sentinel errors the client maps HTTP status codes onto. Callers match with
// [errors.Is]; the wrapped message carries the server's error body.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
