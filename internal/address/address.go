package address

import (
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/net/idna"
)

// Address is a parsed email address. Local and Domain are immutable once
// parsed; Domain is always lowercase ASCII (punycode for IDN input).
type Address struct {
	// Raw is the original input, trimmed
	Raw string `json:"raw"`
	// Local is the part before the @
	Local string `json:"local"`
	// Domain is the part after the @ in ASCII form, suitable for DNS and SMTP
	Domain string `json:"domain"`
}

// Parse validates the syntax of a raw address string and splits it into
// local part and domain. It performs no network checks; deliverability is a
// separate concern.
func Parse(raw string) (*Address, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyAddress
	}

	addr, err := mail.ParseAddress(raw)
	if err != nil {
		// net/mail insists on angle brackets for some inputs
		addr, err = mail.ParseAddress("<" + raw + ">")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	}

	at := strings.LastIndex(addr.Address, "@")
	if at <= 0 || at == len(addr.Address)-1 {
		return nil, ErrInvalidFormat
	}

	local := addr.Address[:at]
	domain := strings.ToLower(addr.Address[at+1:])

	ascii, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDomain, err)
	}

	if !strings.Contains(ascii, ".") {
		return nil, ErrInvalidDomain
	}

	for _, label := range strings.Split(ascii, ".") {
		if label == "" || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return nil, ErrInvalidDomain
		}
	}

	return &Address{
		Raw:    raw,
		Local:  local,
		Domain: ascii,
	}, nil
}

// HasDigitPrefix reports whether the local part begins with a digit,
// a shape common to bulk-generated addresses.
func (a *Address) HasDigitPrefix() bool {
	return len(a.Local) > 0 && a.Local[0] >= '0' && a.Local[0] <= '9'
}
