package dnsaudit

import "errors"

// ErrLookupFailed is returned when a DNS query gets a negative or malformed response
var ErrLookupFailed = errors.New("DNS lookup failed")
