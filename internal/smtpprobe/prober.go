package smtpprobe

import (
	"context"
	"net"
	"net/textproto"
	"sort"
	"time"

	"github.com/miekg/dns"

	"github.com/theopenlane/mailmeter/internal/types"
)

const (
	// defaultDNSServer is the DNS resolver used for the MX lookup
	defaultDNSServer = "8.8.8.8:53"
	// defaultConnTimeout bounds the dial and the whole SMTP exchange
	defaultConnTimeout = 3 * time.Second
	// defaultHelloDomain is the name announced in the HELO command
	defaultHelloDomain = "mailmeter.local"
	// defaultMailFrom is the inert sender used for the probe; nothing is
	// ever delivered to it
	defaultMailFrom = "verify@test.com"
	// smtpPort is the standard SMTP submission port for MX hosts
	smtpPort = "25"

	codeGreeting = 220
	codeOK       = 250
)

// Dialer abstracts connection establishment so tests can supply a fake server
type Dialer interface {
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

// MXLookup resolves the primary mail exchanger hostname for a domain
type MXLookup func(ctx context.Context, domain string) (string, error)

// Prober assesses mailbox existence with a best-effort RCPT TO handshake.
// Probe never returns an error; every failure mode maps to an outcome.
type Prober struct {
	client      *dns.Client
	dnsServer   string
	helloDomain string
	mailFrom    string
	timeout     time.Duration
	dialer      Dialer
	lookupMX    MXLookup
}

// Option configures the Prober
type Option func(*Prober)

// WithDNSServer overrides the DNS server used for the MX lookup
func WithDNSServer(server string) Option {
	return func(p *Prober) {
		if server != "" {
			p.dnsServer = server
		}
	}
}

// WithTimeout overrides the connection and exchange timeout
func WithTimeout(timeout time.Duration) Option {
	return func(p *Prober) {
		if timeout > 0 {
			p.timeout = timeout
			p.client.Timeout = timeout
		}
	}
}

// WithHelloDomain overrides the name announced in HELO
func WithHelloDomain(domain string) Option {
	return func(p *Prober) {
		if domain != "" {
			p.helloDomain = domain
		}
	}
}

// WithMailFrom overrides the probe sender address
func WithMailFrom(addr string) Option {
	return func(p *Prober) {
		if addr != "" {
			p.mailFrom = addr
		}
	}
}

// WithDialer supplies a custom dialer, used by tests to avoid live connections
func WithDialer(dialer Dialer) Option {
	return func(p *Prober) {
		if dialer != nil {
			p.dialer = dialer
		}
	}
}

// WithMXLookup overrides MX resolution, used by tests
func WithMXLookup(lookup MXLookup) Option {
	return func(p *Prober) {
		if lookup != nil {
			p.lookupMX = lookup
		}
	}
}

// New creates an SMTP prober
func New(opts ...Option) *Prober {
	p := &Prober{
		client: &dns.Client{
			Timeout: defaultConnTimeout,
		},
		dnsServer:   defaultDNSServer,
		helloDomain: defaultHelloDomain,
		mailFrom:    defaultMailFrom,
		timeout:     defaultConnTimeout,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.dialer == nil {
		p.dialer = &net.Dialer{Timeout: p.timeout}
	}
	if p.lookupMX == nil {
		p.lookupMX = p.resolveMX
	}

	return p
}

// Probe checks whether the mail server for the domain would accept mail for
// the address. Google and Microsoft hosted domains are reported Protected
// without any network attempt: both reject bulk verification probes, so a
// real handshake produces noise and burns sender reputation.
func (p *Prober) Probe(ctx context.Context, email, domain string, vendor types.MailVendor) types.SMTPOutcome {
	if vendor.Protected() {
		return types.SMTPProtected
	}

	mxHost, err := p.lookupMX(ctx, domain)
	if err != nil {
		return types.SMTPUnverifiable
	}

	return p.handshake(ctx, mxHost, email)
}

// handshake dials the exchanger and walks the HELO / MAIL FROM / RCPT TO
// sequence. The connection is closed on every exit path.
func (p *Prober) handshake(ctx context.Context, mxHost, email string) types.SMTPOutcome {
	dialCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	conn, err := p.dialer.DialContext(dialCtx, "tcp", net.JoinHostPort(mxHost, smtpPort))
	if err != nil {
		return types.SMTPUnverifiable
	}
	defer conn.Close()

	_ = conn.SetDeadline(time.Now().Add(p.timeout))

	tp := textproto.NewConn(conn)
	defer tp.Close()

	code, _, err := tp.ReadResponse(-1)
	if err != nil || code != codeGreeting {
		return types.SMTPUnverifiable
	}

	// Reply codes for HELO and MAIL FROM are read but not enforced; the
	// RCPT reply is the verdict that matters.
	if _, err := p.command(tp, "HELO %s", p.helloDomain); err != nil {
		return types.SMTPUnverifiable
	}

	if _, err := p.command(tp, "MAIL FROM:<%s>", p.mailFrom); err != nil {
		return types.SMTPUnverifiable
	}

	code, err = p.command(tp, "RCPT TO:<%s>", email)
	if err != nil {
		return types.SMTPUnverifiable
	}

	if code == codeOK {
		return types.SMTPAvailable
	}

	return types.SMTPNotFound
}

// command writes one SMTP command line and reads the reply code
func (p *Prober) command(tp *textproto.Conn, format string, args ...any) (int, error) {
	if err := tp.PrintfLine(format, args...); err != nil {
		return 0, err
	}

	code, _, err := tp.ReadResponse(-1)
	if err != nil {
		return 0, err
	}

	return code, nil
}

// resolveMX returns the lowest-preference exchanger hostname for the domain
func (p *Prober) resolveMX(ctx context.Context, domain string) (string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeMX)
	msg.RecursionDesired = true

	resp, _, err := p.client.ExchangeContext(ctx, msg, p.dnsServer)
	if err != nil {
		return "", err
	}

	if resp == nil || resp.Rcode != dns.RcodeSuccess {
		return "", ErrNoMXRecords
	}

	var exchanges []*dns.MX
	for _, rr := range resp.Answer {
		if mx, ok := rr.(*dns.MX); ok {
			exchanges = append(exchanges, mx)
		}
	}

	if len(exchanges) == 0 {
		return "", ErrNoMXRecords
	}

	sort.SliceStable(exchanges, func(i, j int) bool {
		return exchanges[i].Preference < exchanges[j].Preference
	})

	return trimDot(exchanges[0].Mx), nil
}

func trimDot(host string) string {
	if len(host) > 0 && host[len(host)-1] == '.' {
		return host[:len(host)-1]
	}
	return host
}
