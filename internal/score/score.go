// Package score turns DNS findings and an SMTP probe outcome into a single
// deliverability score, and partitions scored batches into valid, risky, and
// dead segments. Weights and thresholds are plain data so deployments can
// tune them without code changes.
package score

import (
	"github.com/theopenlane/mailmeter/internal/types"
)

// Weights holds the per-signal contributions to the deliverability score
type Weights struct {
	// MXPass is awarded when MX records resolve
	MXPass int `json:"mx_pass"`
	// SPFPass is awarded for a published SPF policy
	SPFPass int `json:"spf_pass"`
	// DKIMPass is awarded when any DKIM selector holds a key
	DKIMPass int `json:"dkim_pass"`
	// DMARCPass is awarded for a published DMARC record
	DMARCPass int `json:"dmarc_pass"`
	// SMTPAvailable is awarded when the RCPT probe was accepted
	SMTPAvailable int `json:"smtp_available"`
	// SMTPProtected is awarded when the probe was skipped for a guarded
	// provider. Lower than SMTPAvailable: protection is an assumption,
	// not a confirmed accept.
	SMTPProtected int `json:"smtp_protected"`
	// DigitPrefixPenalty is subtracted when the local part starts with a
	// digit run, a shape common to bulk-generated addresses. Zero
	// disables the penalty.
	DigitPrefixPenalty int `json:"digit_prefix_penalty"`
}

// DefaultWeights returns the standard scoring table. The maximum reachable
// score is 100 (20+10+10+10+50).
func DefaultWeights() Weights {
	return Weights{
		MXPass:             20,
		SPFPass:            10,
		DKIMPass:           10,
		DMARCPass:          10,
		SMTPAvailable:      50,
		SMTPProtected:      40,
		DigitPrefixPenalty: 30,
	}
}

// Score computes the deliverability score for one audited address. It is a
// pure function of its inputs and is floored at zero.
func (w Weights) Score(findings types.DNSFindings, outcome types.SMTPOutcome, digitPrefix bool) int {
	score := 0

	if findings.MX == types.CheckPass {
		score += w.MXPass
	}
	if findings.SPF == types.CheckPass {
		score += w.SPFPass
	}
	if findings.DKIM == types.CheckPass {
		score += w.DKIMPass
	}
	if findings.DMARC == types.CheckPass {
		score += w.DMARCPass
	}

	switch outcome {
	case types.SMTPAvailable:
		score += w.SMTPAvailable
	case types.SMTPProtected:
		score += w.SMTPProtected
	}

	if digitPrefix {
		score -= w.DigitPrefixPenalty
	}

	if score < 0 {
		return 0
	}

	return score
}
