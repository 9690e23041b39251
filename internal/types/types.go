package types

// CheckStatus is the outcome of a single DNS posture check
type CheckStatus string

const (
	// CheckPass indicates the record was found and looked sane
	CheckPass CheckStatus = "PASS"
	// CheckFail indicates the record was missing or the lookup failed
	CheckFail CheckStatus = "FAIL"
)

// MailVendor classifies the provider hosting a domain's mail exchangers
type MailVendor string

const (
	// VendorGoogle is Google Workspace hosted mail
	VendorGoogle MailVendor = "Google Workspace"
	// VendorMicrosoft is Microsoft 365 hosted mail
	VendorMicrosoft MailVendor = "Microsoft 365"
	// VendorPrivate is any self-hosted or third-party SMTP setup
	VendorPrivate MailVendor = "Private SMTP"
	// VendorUnknown means no MX records resolved, so no classification was possible
	VendorUnknown MailVendor = "Unknown"
)

// Protected reports whether the vendor is known to block bulk RCPT probes
func (v MailVendor) Protected() bool {
	return v == VendorGoogle || v == VendorMicrosoft
}

// SMTPOutcome is the result of the mailbox existence probe
type SMTPOutcome string

const (
	// SMTPAvailable means the server accepted RCPT TO with a 250 reply
	SMTPAvailable SMTPOutcome = "AVAILABLE"
	// SMTPNotFound means the server replied to RCPT TO with a non-250 code
	SMTPNotFound SMTPOutcome = "NOT_FOUND"
	// SMTPProtected means the probe was skipped because the provider
	// rejects bulk verification attempts
	SMTPProtected SMTPOutcome = "PROTECTED"
	// SMTPUnverifiable covers connection, timeout, and protocol failures
	SMTPUnverifiable SMTPOutcome = "UNVERIFIABLE"
	// SMTPInvalid is recorded when the address never reached the probe stage
	SMTPInvalid SMTPOutcome = "INVALID"
)

// ValidationStatus is the syntax verdict for a raw input address
type ValidationStatus string

const (
	// StatusValidFormat means the address parsed into a local part and domain
	StatusValidFormat ValidationStatus = "Valid Format"
	// StatusSyntaxError means the address could not be parsed
	StatusSyntaxError ValidationStatus = "Syntax Error"
	// StatusInternalError means the audit pipeline faulted for this address
	StatusInternalError ValidationStatus = "Internal Error"
)

// DNSFindings is the per-domain DNS posture snapshot. Each field is set
// independently; a failed lookup degrades its own field and nothing else.
type DNSFindings struct {
	// MX reports whether mail exchanger records resolved
	MX CheckStatus `json:"mx" example:"PASS"`
	// SPF reports whether a v=spf1 TXT record was found on the bare domain
	SPF CheckStatus `json:"spf" example:"PASS"`
	// DKIM reports whether any probed selector published a key record
	DKIM CheckStatus `json:"dkim" example:"FAIL"`
	// DMARC reports whether _dmarc.<domain> answered
	DMARC CheckStatus `json:"dmarc" example:"PASS"`
	// Vendor is the mail hosting classification from the primary MX host
	Vendor MailVendor `json:"server" example:"Google Workspace"`
	// DKIMSelector is the first selector that matched, empty when none did
	DKIMSelector string `json:"dkim_selector,omitempty" example:"selector1"`
	// DKIMDiagnostic explains the DKIM verdict (match found, no selector
	// matched, or DNS timeout)
	DKIMDiagnostic string `json:"dkim_report,omitempty" example:"match found: selector1"`
}

// FailedFindings returns findings with every check failed and the vendor
// unknown, used for addresses that never reach the DNS stage.
func FailedFindings() DNSFindings {
	return DNSFindings{
		MX:     CheckFail,
		SPF:    CheckFail,
		DKIM:   CheckFail,
		DMARC:  CheckFail,
		Vendor: VendorUnknown,
	}
}

// AuditRecord is the complete per-address audit result
type AuditRecord struct {
	// Email is the raw input address, trimmed
	Email string `json:"email" example:"bob@example.com"`
	// Status is the syntax verdict for the address
	Status ValidationStatus `json:"status" example:"Valid Format"`
	// DNS holds the DNS posture findings for the address domain
	DNS DNSFindings `json:"dns"`
	// SMTP is the mailbox probe outcome
	SMTP SMTPOutcome `json:"smtp" example:"PROTECTED"`
	// Score is the final deliverability score, floored at zero
	Score int `json:"score" example:"70"`
}

// Batch is an ordered sequence of audit records, index-aligned with the
// input address sequence.
type Batch []AuditRecord
