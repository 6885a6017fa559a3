// Package cellrange validates and normalises the row/column limits of a cell
// query and parses user-facing cell range expressions into those limits.
package cellrange

import (
	"fmt"
	"strconv"
	"strings"
)

// Extent is the nominal declared size of a worksheet, supplied at registration
// time. It is an upper bound for validation only, not a measure of how much of
// the worksheet is actually populated. A zero extent means the size is unknown
// and extent checks are skipped.
type Extent struct {
	Rows int
	Cols int
}

// Limits bounds the rectangle of a cell query. A zero field means unbounded in
// that direction.
type Limits struct {
	MinRow int
	MaxRow int
	MinCol int
	MaxCol int
}

// Empty reports whether no bounds are set at all.
func (l Limits) Empty() bool {
	return l.MinRow == 0 && l.MaxRow == 0 && l.MinCol == 0 && l.MaxCol == 0
}

// Validate checks each bound individually and then cross-checks the bounds
// against each other and against the worksheet extent. Individual bounds are
// checked first so that a single malformed bound produces one unambiguous
// error rather than a cascade of comparison failures.
func (l Limits) Validate(extent Extent) error {
	bounds := []struct {
		name  string
		value int
	}{
		{"min_row", l.MinRow},
		{"max_row", l.MaxRow},
		{"min_col", l.MinCol},
		{"max_col", l.MaxCol},
	}

	for _, bound := range bounds {
		if bound.value < 0 {
			return fmt.Errorf("%s must be a positive integer, got %d", bound.name, bound.value)
		}
	}

	if l.MinRow > 0 && l.MaxRow > 0 && l.MinRow > l.MaxRow {
		return fmt.Errorf("min_row (%d) exceeds max_row (%d)", l.MinRow, l.MaxRow)
	}

	if l.MinCol > 0 && l.MaxCol > 0 && l.MinCol > l.MaxCol {
		return fmt.Errorf("min_col (%d) exceeds max_col (%d)", l.MinCol, l.MaxCol)
	}

	if extent.Rows > 0 {
		if l.MinRow > extent.Rows {
			return fmt.Errorf("min_row (%d) exceeds the worksheet row extent (%d)", l.MinRow, extent.Rows)
		}

		if l.MaxRow > extent.Rows {
			return fmt.Errorf("max_row (%d) exceeds the worksheet row extent (%d)", l.MaxRow, extent.Rows)
		}
	}

	if extent.Cols > 0 {
		if l.MinCol > extent.Cols {
			return fmt.Errorf("min_col (%d) exceeds the worksheet column extent (%d)", l.MinCol, extent.Cols)
		}

		if l.MaxCol > extent.Cols {
			return fmt.Errorf("max_col (%d) exceeds the worksheet column extent (%d)", l.MaxCol, extent.Cols)
		}
	}

	return nil
}

// ParseBound converts the textual form of a single bound to an integer,
// naming the bound in any error. An empty string means the bound is absent.
func ParseBound(name, value string) (int, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, nil
	}

	if strings.ContainsAny(s, ", \t") {
		return 0, fmt.Errorf("%s expects a single value, got %q", name, value)
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s cannot be interpreted as an integer, got %q", name, value)
	}

	if v < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %d", name, v)
	}

	return v, nil
}
