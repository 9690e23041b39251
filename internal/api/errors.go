package api

import "errors"

var (
	// ErrInvalidRequestBody is returned when the request body cannot be decoded
	ErrInvalidRequestBody = errors.New("invalid request body")
	// ErrNoAddresses is returned when the audit request names no addresses
	ErrNoAddresses = errors.New("at least one email address is required")
	// ErrBatchTooLarge is returned when the audit request exceeds the batch cap
	ErrBatchTooLarge = errors.New("too many addresses in one request")
	// ErrMultipleJSONObjects is returned when the request body contains more than one JSON object
	ErrMultipleJSONObjects = errors.New("request body must contain a single JSON object")
)
