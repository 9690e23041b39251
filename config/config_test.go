package config

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.ReadTimeout != 30*time.Second {
		t.Errorf("expected default read timeout 30s, got %v", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout != 180*time.Second {
		t.Errorf("expected default write timeout 180s, got %v", cfg.WriteTimeout)
	}
	if cfg.Workers != 10 {
		t.Errorf("expected default worker count 10, got %d", cfg.Workers)
	}
	if cfg.DNSTimeout != 2*time.Second {
		t.Errorf("expected default DNS timeout 2s, got %v", cfg.DNSTimeout)
	}
	if cfg.SMTPTimeout != 3*time.Second {
		t.Errorf("expected default SMTP timeout 3s, got %v", cfg.SMTPTimeout)
	}
	if cfg.ValidThreshold != 50 {
		t.Errorf("expected default valid threshold 50, got %d", cfg.ValidThreshold)
	}
	if cfg.DigitPrefixPenalty != 30 {
		t.Errorf("expected default digit prefix penalty 30, got %d", cfg.DigitPrefixPenalty)
	}
	if cfg.MaxBodySize != 1024*1024 {
		t.Errorf("expected default max body size 1048576, got %d", cfg.MaxBodySize)
	}
	if cfg.DKIMReport {
		t.Error("expected DKIM report column disabled by default")
	}
}

func TestNewWithEnvVars(t *testing.T) {
	t.Setenv("MAILMETER_PORT", "9090")
	t.Setenv("MAILMETER_WORKERS", "25")
	t.Setenv("MAILMETER_DNS_TIMEOUT", "5s")
	t.Setenv("MAILMETER_VALID_THRESHOLD", "70")
	t.Setenv("MAILMETER_DIGIT_PREFIX_PENALTY", "0")
	t.Setenv("MAILMETER_DKIM_REPORT", "true")
	t.Setenv("MAILMETER_DNS_SERVER", "1.1.1.1:53")

	cfg := New()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.Workers != 25 {
		t.Errorf("expected 25 workers, got %d", cfg.Workers)
	}
	if cfg.DNSTimeout != 5*time.Second {
		t.Errorf("expected DNS timeout 5s, got %v", cfg.DNSTimeout)
	}
	if cfg.ValidThreshold != 70 {
		t.Errorf("expected valid threshold 70, got %d", cfg.ValidThreshold)
	}
	if cfg.DigitPrefixPenalty != 0 {
		t.Errorf("expected digit prefix penalty disabled, got %d", cfg.DigitPrefixPenalty)
	}
	if !cfg.DKIMReport {
		t.Error("expected DKIM report column enabled")
	}
	if cfg.DNSServer != "1.1.1.1:53" {
		t.Errorf("expected DNS server 1.1.1.1:53, got %s", cfg.DNSServer)
	}
}

func TestNewWithInvalidEnvVars(t *testing.T) {
	t.Setenv("MAILMETER_WORKERS", "not-a-number")
	t.Setenv("MAILMETER_DNS_TIMEOUT", "soon")

	cfg := New()

	if cfg.Workers != 10 {
		t.Errorf("expected fallback to default workers, got %d", cfg.Workers)
	}
	if cfg.DNSTimeout != 2*time.Second {
		t.Errorf("expected fallback to default DNS timeout, got %v", cfg.DNSTimeout)
	}
}

func TestValidate(t *testing.T) {
	cfg := New()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}

	cfg.ValidThreshold = 0
	if err := cfg.Validate(); err != ErrInvalidThreshold {
		t.Errorf("expected ErrInvalidThreshold, got %v", err)
	}

	cfg = New()
	cfg.Workers = -1
	if err := cfg.Validate(); err != ErrInvalidWorkers {
		t.Errorf("expected ErrInvalidWorkers, got %v", err)
	}
}
