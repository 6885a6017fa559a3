package cellrange

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var rcCorner = regexp.MustCompile(`^[Rr]([0-9]+)(?:[Cc]([0-9]+))?$`)

// ParseRange converts a cell range expression into Limits. Supported forms:
//
//	"B4"          single cell
//	"B2:D4"       rectangle, A1 notation
//	"R2C3:R4C5"   rectangle, RC notation
//	"A2:E"        open-ended rows (column-only corner)
//	"3:7"         row range
//	"A:C"         column range
//
// A leading "Sheet!" qualifier is ignored; the worksheet is identified by the
// reference the limits are applied to.
func ParseRange(expression string) (Limits, error) {
	s := strings.TrimSpace(expression)
	if i := strings.LastIndex(s, "!"); i >= 0 {
		s = s[i+1:]
	}

	if s == "" {
		return Limits{}, fmt.Errorf("empty cell range")
	}

	corners := strings.Split(s, ":")
	if len(corners) > 2 {
		return Limits{}, fmt.Errorf("invalid cell range %q", expression)
	}

	minRow, minCol, err := parseCorner(corners[0])
	if err != nil {
		return Limits{}, fmt.Errorf("invalid cell range %q: %w", expression, err)
	}

	maxRow, maxCol := minRow, minCol
	if len(corners) == 2 {
		if maxRow, maxCol, err = parseCorner(corners[1]); err != nil {
			return Limits{}, fmt.Errorf("invalid cell range %q: %w", expression, err)
		}
	}

	limits := Limits{
		MinRow: minRow,
		MaxRow: maxRow,
		MinCol: minCol,
		MaxCol: maxCol,
	}

	if limits.Empty() {
		return Limits{}, fmt.Errorf("invalid cell range %q", expression)
	}

	return limits, nil
}

// parseCorner parses one corner of a range expression. Either axis may be
// absent (0): "B2" sets both, "B" only the column, "2" only the row.
func parseCorner(corner string) (row, col int, err error) {
	s := strings.TrimSpace(strings.ReplaceAll(corner, "$", ""))
	if s == "" {
		return 0, 0, fmt.Errorf("empty corner")
	}

	// RC notation ("R4C2", "R4"). "C2" on its own reads as A1 column C, row 2.
	if match := rcCorner.FindStringSubmatch(s); match != nil {
		if row, err = strconv.Atoi(match[1]); err != nil || row < 1 {
			return 0, 0, fmt.Errorf("invalid row in corner %q", corner)
		}

		if match[2] != "" {
			if col, err = strconv.Atoi(match[2]); err != nil || col < 1 {
				return 0, 0, fmt.Errorf("invalid column in corner %q", corner)
			}
		}

		return row, col, nil
	}

	letters := 0
	for letters < len(s) && isLetter(s[letters]) {
		letters++
	}

	switch {
	case letters == 0:
		if row, err = strconv.Atoi(s); err != nil || row < 1 {
			return 0, 0, fmt.Errorf("invalid row in corner %q", corner)
		}
		return row, 0, nil

	case letters == len(s):
		if col, err = ColNumber(s); err != nil {
			return 0, 0, fmt.Errorf("invalid column in corner %q", corner)
		}
		return 0, col, nil

	default:
		if row, col, err = ParseLabel(s); err != nil {
			return 0, 0, err
		}
		return row, col, nil
	}
}
