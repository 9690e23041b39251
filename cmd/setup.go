package cmd

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/theopenlane/mailmeter/config"
	"github.com/theopenlane/mailmeter/internal/audit"
	"github.com/theopenlane/mailmeter/internal/dnsaudit"
	"github.com/theopenlane/mailmeter/internal/score"
	"github.com/theopenlane/mailmeter/internal/slack"
	"github.com/theopenlane/mailmeter/internal/smtpprobe"
)

// setupOrchestrator wires the audit pipeline from config
func setupOrchestrator(cfg *config.Config) *audit.Orchestrator {
	auditor := dnsaudit.New(
		dnsaudit.WithDNSServer(cfg.DNSServer),
		dnsaudit.WithQueryTimeout(cfg.DNSTimeout),
	)

	prober := smtpprobe.New(
		smtpprobe.WithDNSServer(cfg.DNSServer),
		smtpprobe.WithTimeout(cfg.SMTPTimeout),
		smtpprobe.WithHelloDomain(cfg.SMTPHelloDomain),
		smtpprobe.WithMailFrom(cfg.SMTPMailFrom),
	)

	return audit.New(
		audit.WithDNSAuditor(auditor),
		audit.WithSMTPProber(prober),
		audit.WithWorkers(cfg.Workers),
		audit.WithWeights(buildWeights(cfg)),
		audit.WithAddressCeiling(cfg.AddressCeiling),
	)
}

// buildWeights derives scoring weights from config
func buildWeights(cfg *config.Config) score.Weights {
	weights := score.DefaultWeights()
	weights.DigitPrefixPenalty = cfg.DigitPrefixPenalty

	return weights
}

// buildThresholds derives segmentation thresholds from config
func buildThresholds(cfg *config.Config) score.Thresholds {
	return score.Thresholds{Valid: cfg.ValidThreshold}
}

// setupSlack initializes the Slack webhook client from config, returning nil when unconfigured
func setupSlack(cfg *config.Config) *slack.Client {
	if cfg.SlackWebhookURL == "" {
		log.Info().Msg("slack notifications not configured, skipping")
		return nil
	}

	client, err := slack.New(
		cfg.SlackWebhookURL,
		slack.WithHTTPClient(&http.Client{Timeout: cfg.SlackTimeout}),
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize slack client")
		return nil
	}

	log.Info().Msg("slack notifications configured")

	return client
}
