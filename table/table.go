// Package table transforms a sparse cell listing into the caller-facing
// representations: a dense rectangular Table or a flat NamedVector.
package table

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/johnfrye/googlesheets/feed"
)

// ErrNoCells indicates there were no cells to work with - nothing found in
// the requested region. It is a no-op condition, not a failure.
var ErrNoCells = errors.New("no cells to reshape")

// ErrHeaderRows indicates a header was requested but the cells span a single
// row, so there is no data beneath the header. Retry with the header disabled.
var ErrHeaderRows = errors.New("cells span a single row so there is no data below the header - retry with the header disabled")

// Datum is one table cell value. Missing reports that the feed returned no
// cell at this position, as opposed to a cell whose text is the empty string.
type Datum struct {
	Text    string
	Missing bool
}

// Table is a dense rectangular view of a worksheet region: a header of column
// names and records aligned by row.
type Table struct {
	Header  []string
	Records [][]Datum
}

// Strings flattens the records to plain strings, rendering missing cells as
// empty strings.
func (t *Table) Strings() [][]string {
	records := make([][]string, len(t.Records))
	for i, record := range t.Records {
		row := make([]string, len(record))
		for j, d := range record {
			row[j] = d.Text
		}
		records[i] = row
	}

	return records
}

// Reshape builds a dense Table from a sparse cell listing. The bounding
// rectangle is computed from the cells themselves; positions the feed omitted
// are filled with missing markers so the result has no gaps. With header set,
// column names are taken from the first spanned row (blank cells get a
// synthetic "C<col>" name) and that row is excluded from the records.
func Reshape(cells []feed.Cell, header bool) (*Table, error) {
	if len(cells) == 0 {
		return nil, ErrNoCells
	}

	// ... bounding rectangle actually spanned by the cells
	minRow, maxRow := cells[0].Row, cells[0].Row
	minCol, maxCol := cells[0].Col, cells[0].Col

	for _, cell := range cells[1:] {
		if cell.Row < minRow {
			minRow = cell.Row
		}

		if cell.Row > maxRow {
			maxRow = cell.Row
		}

		if cell.Col < minCol {
			minCol = cell.Col
		}

		if cell.Col > maxCol {
			maxCol = cell.Col
		}
	}

	if header && minRow == maxRow {
		return nil, ErrHeaderRows
	}

	// ... index cells by position
	grid := make(map[[2]int]feed.Cell, len(cells))
	for _, cell := range cells {
		grid[[2]int{cell.Row, cell.Col}] = cell
	}

	// ... column names
	names := make([]string, 0, maxCol-minCol+1)
	for col := minCol; col <= maxCol; col++ {
		name := fmt.Sprintf("C%d", col)

		if header {
			if cell, ok := grid[[2]int{minRow, col}]; ok && strings.TrimSpace(cell.Value) != "" {
				name = MakeName(cell.Value)
			}
		}

		names = append(names, name)
	}

	// ... records, in row then column order
	firstRow := minRow
	if header {
		firstRow = minRow + 1
	}

	records := make([][]Datum, 0, maxRow-firstRow+1)
	for row := firstRow; row <= maxRow; row++ {
		record := make([]Datum, 0, maxCol-minCol+1)

		for col := minCol; col <= maxCol; col++ {
			if cell, ok := grid[[2]int{row, col}]; ok {
				record = append(record, Datum{Text: cell.Value})
			} else {
				record = append(record, Datum{Missing: true})
			}
		}

		records = append(records, record)
	}

	return &Table{Header: names, Records: records}, nil
}

// MakeName sanitizes header text into an identifier-like column name:
// disallowed characters become '.', and a name starting with a digit is
// prefixed with 'X'. Duplicate names are deliberately left alone.
func MakeName(text string) string {
	var b strings.Builder

	for _, r := range strings.TrimSpace(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('.')
		}
	}

	name := b.String()
	if name == "" {
		return "X"
	}

	if first := rune(name[0]); unicode.IsDigit(first) {
		name = "X" + name
	}

	return name
}
