package address

import "errors"

var (
	// ErrEmptyAddress is returned when the input is empty or whitespace only
	ErrEmptyAddress = errors.New("address must not be empty")
	// ErrInvalidFormat is returned when the input cannot be parsed as an email address
	ErrInvalidFormat = errors.New("invalid address format")
	// ErrInvalidDomain is returned when the domain part has malformed labels
	ErrInvalidDomain = errors.New("invalid domain")
)
