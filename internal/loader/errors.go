package loader

import "errors"

// ErrFetchFailed is returned when a remote address list cannot be downloaded
var ErrFetchFailed = errors.New("address list download failed")
