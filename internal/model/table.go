// Package model defines the row types for every sheet the planner touches.
package model

import "fmt"

// Table is a rectangular, string-typed snapshot of one sheet. Every cell is
// text; absent cells are empty strings, never a null sentinel.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable creates an empty table with the given columns.
func NewTable(columns []string) *Table {
	return &Table{Columns: columns, Rows: make([][]string, 0)}
}

// MissingColumnsError reports columns a caller required but the loaded sheet
// does not carry. It is a schema-shape fault, not a transport fault.
type MissingColumnsError struct {
	Table   string
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("table %q is missing required columns %v", e.Table, e.Missing)
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Require verifies that every named column is present. It returns a
// *MissingColumnsError naming the table so the fault is reportable without
// the caller re-deriving context.
func (t *Table) Require(name string, columns ...string) error {
	var missing []string
	for _, c := range columns {
		if t.ColumnIndex(c) < 0 {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Table: name, Missing: missing}
	}
	return nil
}

// Get returns the cell at (row, column name). Out-of-range rows and unknown
// columns yield "" so callers never index past a ragged edge.
func (t *Table) Get(row int, column string) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	i := t.ColumnIndex(column)
	if i < 0 || i >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][i]
}

// Set writes the cell at (row, column name), padding the row if the sheet
// was ragged at that position. Unknown columns are ignored.
func (t *Table) Set(row int, column, value string) {
	if row < 0 || row >= len(t.Rows) {
		return
	}
	i := t.ColumnIndex(column)
	if i < 0 {
		return
	}
	for len(t.Rows[row]) <= i {
		t.Rows[row] = append(t.Rows[row], "")
	}
	t.Rows[row][i] = value
}

// Append adds a row, padded or truncated to the column count.
func (t *Table) Append(cells ...string) {
	row := make([]string, len(t.Columns))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	t.Rows = append(t.Rows, row)
}

// Normalize pads every row to the column count in place. Sheets API reads
// drop trailing empty cells, so loaded rows are routinely short.
func (t *Table) Normalize() {
	for r := range t.Rows {
		for len(t.Rows[r]) < len(t.Columns) {
			t.Rows[r] = append(t.Rows[r], "")
		}
		if len(t.Rows[r]) > len(t.Columns) {
			t.Rows[r] = t.Rows[r][:len(t.Columns)]
		}
	}
}

// Clone returns a deep copy. Passes that augment a table work on a clone so
// a failed save never leaves a half-mutated snapshot behind.
func (t *Table) Clone() *Table {
	c := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		c.Rows[i] = append([]string(nil), row...)
	}
	return c
}
