package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds service configuration
type Config struct {
	// Port is the HTTP listen port for serve mode
	Port string
	// ReadTimeout bounds HTTP request reads
	ReadTimeout time.Duration
	// WriteTimeout bounds HTTP response writes; batch audits of slow
	// domains can run long
	WriteTimeout time.Duration
	// ShutdownTimeout bounds graceful server shutdown
	ShutdownTimeout time.Duration
	// MaxBodySize caps audit request bodies in bytes
	MaxBodySize int64

	// Workers is the audit worker pool width
	Workers int
	// AddressCeiling is the hard per-address audit time limit
	AddressCeiling time.Duration
	// DNSServer is the resolver address for posture lookups
	DNSServer string
	// DNSTimeout is the per-query DNS timeout
	DNSTimeout time.Duration
	// SMTPTimeout bounds the probe connection and exchange
	SMTPTimeout time.Duration
	// SMTPHelloDomain is the name announced in the probe HELO
	SMTPHelloDomain string
	// SMTPMailFrom is the inert sender used for RCPT probes
	SMTPMailFrom string

	// ValidThreshold is the minimum score for the valid segment
	ValidThreshold int
	// DigitPrefixPenalty is the deduction for digit-prefixed local
	// parts; zero disables it
	DigitPrefixPenalty int
	// DKIMReport includes the DKIM diagnostic column in CSV reports
	DKIMReport bool

	// SlackWebhookURL enables batch summary notifications when set
	SlackWebhookURL string
	// SlackTimeout bounds webhook notification requests
	SlackTimeout time.Duration
}

// New creates a new configuration from environment variables
func New() *Config {
	return &Config{
		Port:            getEnv("MAILMETER_PORT", "8080"),
		ReadTimeout:     getDurationEnv("MAILMETER_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:    getDurationEnv("MAILMETER_WRITE_TIMEOUT", 180*time.Second),
		ShutdownTimeout: getDurationEnv("MAILMETER_SHUTDOWN_TIMEOUT", 30*time.Second),
		MaxBodySize:     getInt64Env("MAILMETER_MAX_BODY_SIZE", 1024*1024), // 1MB

		Workers:         getIntEnv("MAILMETER_WORKERS", 10),
		AddressCeiling:  getDurationEnv("MAILMETER_ADDRESS_CEILING", 45*time.Second),
		DNSServer:       getEnv("MAILMETER_DNS_SERVER", "8.8.8.8:53"),
		DNSTimeout:      getDurationEnv("MAILMETER_DNS_TIMEOUT", 2*time.Second),
		SMTPTimeout:     getDurationEnv("MAILMETER_SMTP_TIMEOUT", 3*time.Second),
		SMTPHelloDomain: getEnv("MAILMETER_SMTP_HELLO_DOMAIN", "mailmeter.local"),
		SMTPMailFrom:    getEnv("MAILMETER_SMTP_MAIL_FROM", "verify@test.com"),

		ValidThreshold:     getIntEnv("MAILMETER_VALID_THRESHOLD", 50),
		DigitPrefixPenalty: getIntEnv("MAILMETER_DIGIT_PREFIX_PENALTY", 30),
		DKIMReport:         getBoolEnv("MAILMETER_DKIM_REPORT", false),

		SlackWebhookURL: getEnv("MAILMETER_SLACK_WEBHOOK_URL", ""),
		SlackTimeout:    getDurationEnv("MAILMETER_SLACK_TIMEOUT", 10*time.Second),
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv gets a duration environment variable with a default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getIntEnv gets an int environment variable with a default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getInt64Env gets an int64 environment variable with a default value
func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getBoolEnv gets a boolean environment variable with a default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
