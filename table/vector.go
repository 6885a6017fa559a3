package table

import (
	"github.com/johnfrye/googlesheets/feed"
)

// Notation selects the key style for a NamedVector.
type Notation int

const (
	A1 Notation = iota // letter-number, e.g. "B4"
	RC                 // row/column number, e.g. "R4C2"
)

// HeaderMode is the tri-state header flag for Simplify.
type HeaderMode int

const (
	// HeaderAuto infers a header exactly when the minimum row present is 1
	// and all cells share a single column, i.e. the listing looks like a
	// single labelled column read.
	HeaderAuto HeaderMode = iota
	HeaderYes
	HeaderNo
)

// NamedValue is one (cell address, value) pair.
type NamedValue struct {
	Key   string
	Value any
}

// NamedVector is an ordered sequence of named values.
type NamedVector []NamedValue

// Simplify flattens a cell listing into a NamedVector, keyed by the chosen
// notation's address per cell. Ordering follows the input listing. Unlike
// Reshape, no placeholders are synthesized: cells absent from the listing do
// not appear in the result. With a header (explicit or inferred), every cell
// in the minimum row present is dropped. With convert set, each value is
// passed through Convert; otherwise values are the raw text.
func Simplify(cells []feed.Cell, convert bool, notation Notation, header HeaderMode) NamedVector {
	if len(cells) == 0 {
		return NamedVector{}
	}

	minRow := cells[0].Row
	cols := map[int]bool{}

	for _, cell := range cells {
		if cell.Row < minRow {
			minRow = cell.Row
		}

		cols[cell.Col] = true
	}

	dropHeader := false
	switch header {
	case HeaderYes:
		dropHeader = true

	case HeaderAuto:
		dropHeader = minRow == 1 && len(cols) == 1
	}

	vector := make(NamedVector, 0, len(cells))
	for _, cell := range cells {
		if dropHeader && cell.Row == minRow {
			continue
		}

		key := cell.Label
		if notation == RC {
			key = cell.Ref
		}

		var value any = cell.Value
		if convert {
			value = Convert(cell.Value)
		}

		vector = append(vector, NamedValue{Key: key, Value: value})
	}

	return vector
}
