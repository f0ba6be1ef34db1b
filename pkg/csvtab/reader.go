// Package csvtab reads a CSV export into header-keyed row mappings.
// It knows nothing about time tracking; it only shapes tabular input
// for the billing pipeline.
package csvtab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Row maps a column name to the cell value of one record.
type Row map[string]string

var ErrNoHeader = errors.New("The uploaded CSV has no header row.")

// Read parses CSV bytes into rows keyed by the header line. Ragged
// records are tolerated: short records simply lack the trailing
// columns, extra cells beyond the header are dropped. Fully blank
// records are skipped.
func Read(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV record: %w", err)
		}
		if blank(record) {
			continue
		}

		row := make(Row, len(header))
		for i, name := range header {
			if name == "" || i >= len(record) {
				continue
			}
			row[name] = record[i]
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func blank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
