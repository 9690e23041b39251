// Package exporter renders audit batches as CSV reports in the nine or ten
// column layout consumed by downstream list-hygiene tooling.
package exporter

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/samber/lo"

	"github.com/theopenlane/mailmeter/internal/types"
)

// baseHeader is the standard report column layout
var baseHeader = []string{"EMAIL", "SPF", "SMTP", "DKIM", "DMARC", "MX", "STATUS", "SERVER", "SCORE"}

// reportHeader is the layout with the DKIM diagnostic column included
var reportHeader = []string{"EMAIL", "SPF", "SMTP", "DKIM", "DMARC", "MX", "STATUS", "SERVER", "DKIM_REPORT", "SCORE"}

// Writer renders audit batches as CSV
type Writer struct {
	dkimReport bool
	writeBOM   bool
}

// Option configures the Writer
type Option func(*Writer)

// WithDKIMReport includes the DKIM_REPORT diagnostic column, used by
// deployments that triage selector coverage.
func WithDKIMReport() Option {
	return func(w *Writer) {
		w.dkimReport = true
	}
}

// WithoutBOM drops the UTF-8 byte order mark. The BOM is written by default
// so spreadsheet software opens the report cleanly.
func WithoutBOM() Option {
	return func(w *Writer) {
		w.writeBOM = false
	}
}

// New creates a CSV report writer
func New(opts ...Option) *Writer {
	w := &Writer{writeBOM: true}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the batch to out with a header row
func (w *Writer) Write(out io.Writer, batch types.Batch) error {
	if w.writeBOM {
		if _, err := out.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(out)

	header := baseHeader
	if w.dkimReport {
		header = reportHeader
	}

	if err := cw.Write(header); err != nil {
		return err
	}

	rows := lo.Map(batch, func(r types.AuditRecord, _ int) []string {
		return w.row(r)
	})

	if err := cw.WriteAll(rows); err != nil {
		return err
	}

	cw.Flush()

	return cw.Error()
}

// WriteFile renders the batch to a file, truncating any existing report
func (w *Writer) WriteFile(path string, batch types.Batch) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := w.Write(file, batch); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// row flattens one audit record into report columns
func (w *Writer) row(r types.AuditRecord) []string {
	server := string(r.DNS.Vendor)
	if r.Status != types.StatusValidFormat {
		server = "N/A"
	}

	row := []string{
		r.Email,
		string(r.DNS.SPF),
		string(r.SMTP),
		string(r.DNS.DKIM),
		string(r.DNS.DMARC),
		string(r.DNS.MX),
		string(r.Status),
		server,
	}

	if w.dkimReport {
		row = append(row, r.DNS.DKIMDiagnostic)
	}

	return append(row, strconv.Itoa(r.Score))
}
