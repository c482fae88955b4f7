// Package roster reads event registration exports: one CSV file per
// event, first row is the header, UTF-8 with an optional byte-order
// mark.
package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyFile reports an export with no header row.
var ErrEmptyFile = errors.New("export has no header row")

// Roster is one parsed export: the header row plus every data row in
// file order. Rows may be shorter or longer than the header; missing
// cells read as empty.
type Roster struct {
	Headers []string
	Rows    [][]string
}

// Read parses the export at path. Ragged rows are accepted, blank rows
// are dropped, and a leading byte-order mark on the first header is
// stripped.
func Read(path string) (*Roster, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads an export from r. See Read.
func Parse(r io.Reader) (*Roster, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("read header row: %w", err)
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")
	}

	roster := &Roster{Headers: headers}
	for {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(roster.Rows)+2, err)
		}
		if blank(row) {
			continue
		}
		roster.Rows = append(roster.Rows, row)
	}
	return roster, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
