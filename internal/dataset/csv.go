package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Source supplies raw college records from a tabular backing store.
type Source interface {
	Read() ([]Record, error)
}

// CSVSource reads records from a comma-separated file with a header row.
type CSVSource struct {
	Path string
}

// NewCSVSource creates a CSV source for the given file path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

// Read loads and normalizes all records from the CSV file. It fails when the
// file is unreadable or the header is missing any expected column.
func (s *CSVSource) Read() ([]Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", s.Path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows; short rows become NA cells

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", s.Path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %s: empty file", s.Path)
	}

	colIdx, err := mapHeader(rows[0])
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", s.Path, err)
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make(map[string]string, len(colIdx))
		for col, idx := range colIdx {
			if idx < len(row) {
				cells[col] = row[idx]
			}
		}
		records = append(records, fromRow(cells))
	}

	return records, nil
}

// mapHeader resolves each expected column to its position in the header,
// matching case-insensitively on the trimmed name.
func mapHeader(header []string) (map[string]int, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.ToLower(strings.TrimSpace(h))] = i
	}

	colIdx := make(map[string]int, len(Columns))
	var missing []string
	for _, col := range Columns {
		idx, ok := byName[strings.ToLower(col)]
		if !ok {
			missing = append(missing, col)
			continue
		}
		colIdx[col] = idx
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return colIdx, nil
}
