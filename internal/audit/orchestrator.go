// Package audit runs the per-address deliverability pipeline (syntax
// validation, DNS posture audit, SMTP probe, scoring) across a batch of
// raw address strings under a bounded worker pool.
package audit

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/theopenlane/mailmeter/internal/address"
	"github.com/theopenlane/mailmeter/internal/dnsaudit"
	"github.com/theopenlane/mailmeter/internal/score"
	"github.com/theopenlane/mailmeter/internal/smtpprobe"
	"github.com/theopenlane/mailmeter/internal/types"
)

const (
	// defaultWorkers is the width of the audit worker pool
	defaultWorkers = 10
	// defaultAddressCeiling is the hard per-address time limit, a guard
	// against pathological DNS chains that outlast every per-query timeout
	defaultAddressCeiling = 45 * time.Second
)

// DNSAuditor produces the DNS posture findings for a domain
type DNSAuditor interface {
	Audit(ctx context.Context, domain string) types.DNSFindings
}

// SMTPProber assesses mailbox existence for an address
type SMTPProber interface {
	Probe(ctx context.Context, email, domain string, vendor types.MailVendor) types.SMTPOutcome
}

// Orchestrator dispatches addresses to audit workers and collects
// index-aligned results.
type Orchestrator struct {
	dns            DNSAuditor
	smtp           SMTPProber
	weights        score.Weights
	workers        int
	addressCeiling time.Duration
}

// Option configures the Orchestrator
type Option func(*Orchestrator)

// WithDNSAuditor supplies the DNS auditor, used by tests to stub lookups
func WithDNSAuditor(auditor DNSAuditor) Option {
	return func(o *Orchestrator) {
		if auditor != nil {
			o.dns = auditor
		}
	}
}

// WithSMTPProber supplies the SMTP prober, used by tests to stub probes
func WithSMTPProber(prober SMTPProber) Option {
	return func(o *Orchestrator) {
		if prober != nil {
			o.smtp = prober
		}
	}
}

// WithWorkers sets the concurrency bound for the audit pool
func WithWorkers(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithWeights overrides the scoring table
func WithWeights(w score.Weights) Option {
	return func(o *Orchestrator) {
		o.weights = w
	}
}

// WithAddressCeiling sets the hard per-address time limit
func WithAddressCeiling(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.addressCeiling = d
		}
	}
}

// New creates an audit orchestrator. Without options it audits against live
// DNS and SMTP with default weights.
func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		weights:        score.DefaultWeights(),
		workers:        defaultWorkers,
		addressCeiling: defaultAddressCeiling,
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.dns == nil {
		o.dns = dnsaudit.New()
	}
	if o.smtp == nil {
		o.smtp = smtpprobe.New()
	}

	return o
}

// Run audits every address and returns a batch index-aligned with the
// input: result i always corresponds to emails[i], whatever order the
// workers finish in. Failures are contained per address; the only error Run
// returns is context cancellation, in which case records for addresses that
// never started are left zero-valued.
func (o *Orchestrator) Run(ctx context.Context, emails []string) (types.Batch, error) {
	batch := make(types.Batch, len(emails))

	type job struct {
		idx int
		raw string
	}

	jobs := make(chan job)

	go func() {
		defer close(jobs)

		for i, raw := range emails {
			select {
			case jobs <- job{idx: i, raw: raw}:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup

	for range o.workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := range jobs {
				batch[j.idx] = o.auditOne(ctx, j.raw)
			}
		}()
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return batch, err
	}

	return batch, nil
}

// auditOne runs the full pipeline for a single address. Panics are
// contained here so one bad address can never abort the batch.
func (o *Orchestrator) auditOne(ctx context.Context, raw string) (record types.AuditRecord) {
	raw = strings.TrimSpace(raw)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("email", raw).Any("panic", r).Msg("audit pipeline fault")

			record = types.AuditRecord{
				Email:  raw,
				Status: types.StatusInternalError,
				DNS:    types.FailedFindings(),
				SMTP:   types.SMTPInvalid,
			}
		}
	}()

	addr, err := address.Parse(raw)
	if err != nil {
		return types.AuditRecord{
			Email:  raw,
			Status: types.StatusSyntaxError,
			DNS:    types.FailedFindings(),
			SMTP:   types.SMTPInvalid,
		}
	}

	actx, cancel := context.WithTimeout(ctx, o.addressCeiling)
	defer cancel()

	findings := o.dns.Audit(actx, addr.Domain)
	outcome := o.smtp.Probe(actx, addr.Raw, addr.Domain, findings.Vendor)

	return types.AuditRecord{
		Email:  addr.Raw,
		Status: types.StatusValidFormat,
		DNS:    findings,
		SMTP:   outcome,
		Score:  o.weights.Score(findings, outcome, addr.HasDigitPrefix()),
	}
}
