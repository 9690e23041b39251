package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/theopenlane/mailmeter/config"
	"github.com/theopenlane/mailmeter/internal/exporter"
	"github.com/theopenlane/mailmeter/internal/loader"
	"github.com/theopenlane/mailmeter/internal/score"
)

// validReportName and riskyReportName are the segmented output files
const (
	validReportName = "Valid_Emails.csv"
	riskyReportName = "Risky_Emails.csv"
)

// ErrNoInput is returned when neither an input file nor a URL is given
var ErrNoInput = errors.New("either --input or --url is required")

// auditCmd is the cobra command that audits a CSV of addresses
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "audit a list of email addresses and write segmented CSV reports",
	Run: func(cmd *cobra.Command, _ []string) {
		err := runAudit(cmd.Context())
		cobra.CheckErr(err)
	},
}

// init registers the audit command and its flags on the root command
func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.PersistentFlags().String("input", "", "path to a CSV file of addresses, first column is read")
	auditCmd.PersistentFlags().String("url", "", "URL of a remote CSV of addresses")
	auditCmd.PersistentFlags().String("output-dir", ".", "directory for the segmented CSV reports")
	auditCmd.PersistentFlags().Bool("header", true, "treat the first CSV row as a header")
	auditCmd.PersistentFlags().Bool("notify", false, "send a batch summary to the configured slack webhook")
}

// runAudit loads the address list, runs the audit pipeline, and writes the
// valid and risky segments as CSV reports
func runAudit(ctx context.Context) error {
	cfg := config.New()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	emails, err := loadAddresses(ctx)
	if err != nil {
		return err
	}

	log.Info().Int("addresses", len(emails)).Int("workers", cfg.Workers).Msg("starting audit")

	orchestrator := setupOrchestrator(cfg)

	batch, err := orchestrator.Run(ctx, emails)
	if err != nil {
		return fmt.Errorf("running audit: %w", err)
	}

	segments := score.Partition(batch, buildThresholds(cfg))
	counts := segments.Counts()

	log.Info().
		Int("total", counts.Total).
		Int("valid", counts.Valid).
		Int("risky", counts.Risky).
		Int("dead", counts.Dead).
		Msg("audit complete")

	exportOpts := []exporter.Option{}
	if cfg.DKIMReport {
		exportOpts = append(exportOpts, exporter.WithDKIMReport())
	}

	writer := exporter.New(exportOpts...)
	outDir := k.String("output-dir")

	validPath := filepath.Join(outDir, validReportName)
	if err := writer.WriteFile(validPath, segments.Valid); err != nil {
		return fmt.Errorf("writing valid report: %w", err)
	}

	riskyPath := filepath.Join(outDir, riskyReportName)
	if err := writer.WriteFile(riskyPath, segments.Risky); err != nil {
		return fmt.Errorf("writing risky report: %w", err)
	}

	log.Info().Str("valid", validPath).Str("risky", riskyPath).Msg("reports written")

	if k.Bool("notify") {
		if client := setupSlack(cfg); client != nil {
			if err := client.NotifySummary(ctx, counts); err != nil {
				log.Warn().Err(err).Msg("failed to send slack summary")
			}
		}
	}

	return nil
}

// loadAddresses reads the input list from a local file or a remote URL
func loadAddresses(ctx context.Context) ([]string, error) {
	input := k.String("input")
	url := k.String("url")
	skipHeader := loader.WithSkipHeader(k.Bool("header"))

	switch {
	case url != "":
		return loader.NewFetcher().Fetch(ctx, url, skipHeader)
	case input != "":
		return loader.ReadFile(input, skipHeader)
	default:
		return nil, ErrNoInput
	}
}
