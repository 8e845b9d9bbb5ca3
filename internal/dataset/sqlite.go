package dataset

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteSource reads records from a table in a SQLite snapshot. The table
// must carry one column per entry in Columns.
type SQLiteSource struct {
	Path  string
	Table string
}

// NewSQLiteSource creates a SQLite source for the given database file and
// table name.
func NewSQLiteSource(path, table string) *SQLiteSource {
	return &SQLiteSource{Path: path, Table: table}
}

// Read loads and normalizes all records from the SQLite table, preserving
// rowid order so downstream filters keep the dataset's row order.
func (s *SQLiteSource) Read() ([]Record, error) {
	db, err := sql.Open("sqlite3", s.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", s.Path, err)
	}
	defer db.Close()

	cols := make([]string, len(Columns))
	for i, c := range Columns {
		cols[i] = fmt.Sprintf("%q", c)
	}

	query := fmt.Sprintf("SELECT %s FROM %q ORDER BY rowid", strings.Join(cols, ", "), s.Table)
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query dataset table %s: %w", s.Table, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		values := make([]sql.NullString, len(Columns))
		dest := make([]interface{}, len(Columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan dataset row: %w", err)
		}

		cells := make(map[string]string, len(Columns))
		for i, col := range Columns {
			if values[i].Valid {
				cells[col] = values[i].String
			}
		}
		records = append(records, fromRow(cells))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dataset rows: %w", err)
	}

	return records, nil
}
