// Package loader reads a delimited ledger file into ordered raw rows with
// named field lookup. It knows nothing about canonical transactions; the
// normalizer consumes its output.
package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"fjacquet/ledger-recon/internal/config"
	"fjacquet/ledger-recon/internal/fileutils"
	"fjacquet/ledger-recon/internal/logging"
	"fjacquet/ledger-recon/internal/models"
	"fjacquet/ledger-recon/internal/reconerror"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	logging.Register(log)
}

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Row is one raw data row: original column name -> original string value.
// Every header column is present as a key; empty cells map to "".
type Row map[string]string

// Ledger is one fully loaded input file. Rows preserve file order.
type Ledger struct {
	Name    models.LedgerID
	Path    string
	Columns []string
	Rows    []Row
}

// Load reads the file at path according to the ledger section's skip_rows
// setting. The first row after the skipped ones is the header; all remaining
// rows become Row maps in file order.
func Load(path string, cfg *config.LedgerConfig) (*Ledger, error) {
	log.WithFields(logrus.Fields{
		logging.FieldFile:     path,
		logging.FieldLedger:   cfg.Name,
		logging.FieldSkipRows: cfg.SkipRows,
	}).Info("Loading ledger file")

	data, err := fileutils.ReadFile(path)
	if err != nil {
		return nil, &reconerror.LoadError{Path: path, Ledger: cfg.Name, SkipRows: cfg.SkipRows, Err: err}
	}

	data, err = skipLines(data, cfg.SkipRows)
	if err != nil {
		return nil, &reconerror.LoadError{Path: path, Ledger: cfg.Name, SkipRows: cfg.SkipRows, Err: err}
	}

	columns, err := readHeader(data)
	if err != nil {
		return nil, &reconerror.LoadError{Path: path, Ledger: cfg.Name, SkipRows: cfg.SkipRows, Err: err}
	}

	maps, err := gocsv.CSVToMaps(bytes.NewReader(data))
	if err != nil && err != io.EOF {
		return nil, &reconerror.LoadError{Path: path, Ledger: cfg.Name, SkipRows: cfg.SkipRows, Err: err}
	}

	rows := make([]Row, 0, len(maps))
	for _, m := range maps {
		rows = append(rows, Row(m))
	}

	log.WithFields(logrus.Fields{
		logging.FieldFile:   path,
		logging.FieldLedger: cfg.Name,
		logging.FieldCount:  len(rows),
	}).Info("Loaded ledger rows")

	return &Ledger{
		Name:    models.LedgerID(cfg.Name),
		Path:    path,
		Columns: columns,
		Rows:    rows,
	}, nil
}

// skipLines drops n leading lines. Skipped lines are not parsed as CSV; bank
// exports routinely prepend free-form preamble that would trip the reader.
func skipLines(data []byte, n int) ([]byte, error) {
	for i := 0; i < n; i++ {
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			return nil, fmt.Errorf("file has fewer than %d lines to skip", n)
		}
		data = data[idx+1:]
	}
	return data, nil
}

// readHeader parses only the header record, so the column set is available
// even for files with zero data rows.
func readHeader(data []byte) ([]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("no header row found")
	}
	if err != nil {
		return nil, fmt.Errorf("cannot parse header row: %w", err)
	}
	return header, nil
}
