package tabio

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV reads all records from r. Thin adapter: comma-separated,
// variable field counts allowed (downstream converters enforce widths).
func ReadCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}

	return rows, nil
}

// WriteCSV writes records to w, one line per record.
func WriteCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}
