package strength

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Column names of the offline table resource
const (
	HolesColumn     = "Holes"
	StrengthsColumn = "Strengths"
)

// Load reads a table from a CSV file on disk
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open strength table: %w", err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read parses a CSV table with a header naming the Holes and Strengths
// columns. Extra columns (such as an exported row index) are ignored.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrInvalidTable)
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	holesIdx, strengthsIdx := -1, -1
	for i, name := range header {
		switch name {
		case HolesColumn:
			holesIdx = i
		case StrengthsColumn:
			strengthsIdx = i
		}
	}
	if holesIdx < 0 || strengthsIdx < 0 {
		return nil, fmt.Errorf("%w: header must contain %q and %q columns", ErrInvalidTable, HolesColumn, StrengthsColumn)
	}

	entries := make(map[Key]float64, NumKeys)
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		line++

		if holesIdx >= len(record) || strengthsIdx >= len(record) {
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrInvalidTable, line, len(record))
		}

		key, err := ParseKey(record[holesIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		v, err := strconv.ParseFloat(record[strengthsIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidTable, line, err)
		}
		if _, dup := entries[key]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate key %s", ErrInvalidTable, line, key)
		}
		entries[key] = v
	}

	return New(entries)
}

// Write emits the table as CSV in canonical key order
func (t *Table) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{HolesColumn, StrengthsColumn}); err != nil {
		return err
	}
	for _, k := range Keys() {
		v, ok := t.entries[k]
		if !ok {
			continue
		}
		if err := cw.Write([]string{string(k), strconv.FormatFloat(v, 'f', 6, 64)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
