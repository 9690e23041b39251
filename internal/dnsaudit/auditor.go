package dnsaudit

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/theopenlane/mailmeter/internal/types"
)

const (
	// defaultDNSServer is the DNS resolver used when none is configured
	defaultDNSServer = "8.8.8.8:53"
	// defaultQueryTimeout is the per-query timeout. The DKIM probe issues
	// one query per selector, so each query must fail fast or a dead
	// domain stalls the whole audit.
	defaultQueryTimeout = 2 * time.Second

	// DiagnosticNoMatch is reported when every selector was probed without a hit
	DiagnosticNoMatch = "no selector matched"
	// DiagnosticTimeout is reported when a timeout aborted the selector loop
	DiagnosticTimeout = "DNS timeout"
)

// Auditor performs the per-domain DNS posture audit: MX, SPF, DMARC, and
// DKIM selector probing. Every sub-check is independent and degrades to a
// FAIL field on lookup failure; Audit never returns an error.
type Auditor struct {
	client    *dns.Client
	dnsServer string
	selectors []string
}

// Option configures the Auditor
type Option func(*Auditor)

// WithDNSServer overrides the DNS server used for lookups
func WithDNSServer(server string) Option {
	return func(a *Auditor) {
		if server != "" {
			a.dnsServer = server
		}
	}
}

// WithQueryTimeout overrides the per-query DNS timeout
func WithQueryTimeout(timeout time.Duration) Option {
	return func(a *Auditor) {
		if timeout > 0 {
			a.client.Timeout = timeout
		}
	}
}

// WithSelectors overrides the DKIM selector probe list. Order determines
// which selector is reported on the first match.
func WithSelectors(selectors []string) Option {
	return func(a *Auditor) {
		if len(selectors) > 0 {
			a.selectors = selectors
		}
	}
}

// New creates a DNS posture auditor
func New(opts ...Option) *Auditor {
	a := &Auditor{
		client: &dns.Client{
			Timeout: defaultQueryTimeout,
		},
		dnsServer: defaultDNSServer,
		selectors: CommonSelectors,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Audit resolves the four record sets for the domain and returns the
// findings snapshot. Failed sub-checks degrade their own field only.
func (a *Auditor) Audit(ctx context.Context, domain string) types.DNSFindings {
	domain = strings.TrimSpace(strings.ToLower(domain))

	findings := types.FailedFindings()
	if domain == "" {
		return findings
	}

	a.checkMX(ctx, domain, &findings)
	a.checkSPF(ctx, domain, &findings)
	a.checkDMARC(ctx, domain, &findings)
	a.probeDKIM(ctx, domain, &findings)

	return findings
}

// checkMX resolves MX records and classifies the mail hosting vendor from
// the primary exchange hostname.
func (a *Auditor) checkMX(ctx context.Context, domain string, findings *types.DNSFindings) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeMX)
	msg.RecursionDesired = true

	resp, _, err := a.client.ExchangeContext(ctx, msg, a.dnsServer)
	if err != nil || resp == nil {
		return
	}

	var exchanges []*dns.MX
	for _, rr := range resp.Answer {
		if mx, ok := rr.(*dns.MX); ok {
			exchanges = append(exchanges, mx)
		}
	}

	if len(exchanges) == 0 {
		return
	}

	sort.SliceStable(exchanges, func(i, j int) bool {
		return exchanges[i].Preference < exchanges[j].Preference
	})

	findings.MX = types.CheckPass
	findings.Vendor = ClassifyVendor(exchanges[0].Mx)
}

// ClassifyVendor maps a mail exchanger hostname to a hosting vendor by
// substring match on the lowercase host.
func ClassifyVendor(mxHost string) types.MailVendor {
	host := strings.ToLower(strings.TrimSuffix(mxHost, "."))

	switch {
	case strings.Contains(host, "google"):
		return types.VendorGoogle
	case strings.Contains(host, "outlook"), strings.Contains(host, "microsoft"):
		return types.VendorMicrosoft
	default:
		return types.VendorPrivate
	}
}

// checkSPF looks for a v=spf1 TXT record on the bare domain
func (a *Auditor) checkSPF(ctx context.Context, domain string, findings *types.DNSFindings) {
	records, err := a.lookupTXT(ctx, domain)
	if err != nil {
		return
	}

	for _, record := range records {
		if strings.Contains(strings.ToLower(record), "v=spf1") {
			findings.SPF = types.CheckPass
			return
		}
	}
}

// checkDMARC treats any TXT answer at _dmarc.<domain> as a pass. Policy
// content is not inspected; publication alone is the signal scored here.
func (a *Auditor) checkDMARC(ctx context.Context, domain string, findings *types.DNSFindings) {
	records, err := a.lookupTXT(ctx, "_dmarc."+domain)
	if err != nil || len(records) == 0 {
		return
	}

	findings.DMARC = types.CheckPass
}

// probeDKIM queries TXT records for each configured selector in order,
// stopping at the first published key. A timeout aborts the loop because
// the remaining selectors would each eat the same timeout against an
// unresponsive resolver; a plain miss moves on to the next selector.
func (a *Auditor) probeDKIM(ctx context.Context, domain string, findings *types.DNSFindings) {
	findings.DKIMDiagnostic = DiagnosticNoMatch

	for _, selector := range a.selectors {
		if ctx.Err() != nil {
			findings.DKIMDiagnostic = DiagnosticTimeout
			return
		}

		qname := fmt.Sprintf("%s._domainkey.%s", selector, domain)

		records, err := a.lookupTXT(ctx, qname)
		if err != nil {
			if isTimeout(err) {
				findings.DKIMDiagnostic = DiagnosticTimeout
				return
			}
			continue
		}

		for _, record := range records {
			lower := strings.ToLower(record)
			if strings.Contains(lower, "v=dkim1") || strings.Contains(lower, "p=") {
				findings.DKIM = types.CheckPass
				findings.DKIMSelector = selector
				findings.DKIMDiagnostic = "match found: " + selector
				return
			}
		}
	}
}

// lookupTXT resolves TXT records at the given name, joining multi-string
// answers into single records.
func (a *Auditor) lookupTXT(ctx context.Context, name string) ([]string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), dns.TypeTXT)
	msg.RecursionDesired = true

	resp, _, err := a.client.ExchangeContext(ctx, msg, a.dnsServer)
	if err != nil {
		return nil, err
	}

	if resp == nil || resp.Rcode != dns.RcodeSuccess {
		return nil, ErrLookupFailed
	}

	var records []string
	for _, rr := range resp.Answer {
		if txt, ok := rr.(*dns.TXT); ok {
			records = append(records, strings.Join(txt.Txt, ""))
		}
	}

	return records, nil
}

// isTimeout reports whether a lookup error was a timeout rather than a
// negative answer or transport hiccup.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
