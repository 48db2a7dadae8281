package api

import "errors"

// Request validation failures; both render as 400 bad_request.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrMissingParam = errors.New("missing query parameter")
)
