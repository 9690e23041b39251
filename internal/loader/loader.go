// Package loader reads raw email addresses from tabular input: local CSV
// files or CSVs fetched over HTTP. Only the first column is consumed; blank
// cells are dropped.
package loader

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// utf8BOM is the byte order mark some spreadsheet exports prepend
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// options control how tabular input is interpreted
type options struct {
	skipHeader bool
}

// Option configures address loading
type Option func(*options)

// WithSkipHeader controls whether the first row is treated as a header and
// dropped. Defaults to true, matching the usual export shape.
func WithSkipHeader(skip bool) Option {
	return func(o *options) {
		o.skipHeader = skip
	}
}

// Read extracts addresses from CSV data: first column of each row, trimmed,
// blank cells dropped.
func Read(r io.Reader, opts ...Option) ([]string, error) {
	o := &options{skipHeader: true}
	for _, opt := range opts {
		opt(o)
	}

	br := bufio.NewReader(r)

	// tolerate a UTF-8 BOM from spreadsheet exports
	if head, err := br.Peek(len(utf8BOM)); err == nil && string(head) == string(utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var emails []string
	first := true

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if first {
			first = false

			if o.skipHeader {
				continue
			}
		}

		if len(record) == 0 {
			continue
		}

		email := strings.TrimSpace(record[0])
		if email == "" {
			continue
		}

		emails = append(emails, email)
	}

	return emails, nil
}

// ReadFile extracts addresses from a CSV file on disk
func ReadFile(path string, opts ...Option) ([]string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file, opts...)
}
