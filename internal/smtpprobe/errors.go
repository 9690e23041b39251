package smtpprobe

import "errors"

// ErrNoMXRecords is returned when the domain has no resolvable mail exchangers
var ErrNoMXRecords = errors.New("no MX records found")
