package models

import "fmt"

// Dataset is an in-memory table loaded from a CSV or XLSX file. Cell values
// are kept as the original text so an exported file matches its source.
type Dataset struct {
	Name    string
	columns []string
	rows    [][]string
	index   map[string]int
}

// NewDataset builds a Dataset. Every row must have exactly one cell per column.
func NewDataset(name string, columns []string, rows [][]string) (*Dataset, error) {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if _, dup := index[col]; dup {
			return nil, fmt.Errorf("duplicate column %q", col)
		}
		index[col] = i
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", i, len(row), len(columns))
		}
	}

	cols := make([]string, len(columns))
	copy(cols, columns)

	return &Dataset{
		Name:    name,
		columns: cols,
		rows:    rows,
		index:   index,
	}, nil
}

func (d *Dataset) Columns() []string {
	cols := make([]string, len(d.columns))
	copy(cols, d.columns)
	return cols
}

func (d *Dataset) Len() int {
	return len(d.rows)
}

func (d *Dataset) Width() int {
	return len(d.columns)
}

// Cell returns the text at (row, col) by position.
func (d *Dataset) Cell(row, col int) string {
	if row < 0 || row >= len(d.rows) || col < 0 || col >= len(d.columns) {
		return ""
	}
	return d.rows[row][col]
}

// Value returns the cell of the named column in the given row.
func (d *Dataset) Value(row int, column string) (string, bool) {
	col, ok := d.index[column]
	if !ok || row < 0 || row >= len(d.rows) {
		return "", false
	}
	return d.rows[row][col], true
}

// Row returns a row as a column-name to value mapping.
func (d *Dataset) Row(row int) map[string]string {
	if row < 0 || row >= len(d.rows) {
		return nil
	}
	out := make(map[string]string, len(d.columns))
	for i, col := range d.columns {
		out[col] = d.rows[row][i]
	}
	return out
}

// Column returns all values of the named column in row order.
func (d *Dataset) Column(name string) ([]string, bool) {
	col, ok := d.index[name]
	if !ok {
		return nil, false
	}
	values := make([]string, len(d.rows))
	for i, row := range d.rows {
		values[i] = row[col]
	}
	return values, true
}

// HasColumns reports whether all names are present (exact, case-sensitive).
func (d *Dataset) HasColumns(names ...string) bool {
	return len(d.MissingColumns(names...)) == 0
}

func (d *Dataset) MissingColumns(names ...string) []string {
	var missing []string
	for _, name := range names {
		if _, ok := d.index[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Records returns a copy of the rows, suitable for a CSV writer.
func (d *Dataset) Records() [][]string {
	out := make([][]string, len(d.rows))
	for i, row := range d.rows {
		r := make([]string, len(row))
		copy(r, row)
		out[i] = r
	}
	return out
}

// Equal compares columns and rows; the name is ignored.
func (d *Dataset) Equal(other *Dataset) bool {
	if d == nil || other == nil {
		return d == other
	}
	if len(d.columns) != len(other.columns) || len(d.rows) != len(other.rows) {
		return false
	}
	for i := range d.columns {
		if d.columns[i] != other.columns[i] {
			return false
		}
	}
	for i := range d.rows {
		for j := range d.rows[i] {
			if d.rows[i][j] != other.rows[i][j] {
				return false
			}
		}
	}
	return true
}
