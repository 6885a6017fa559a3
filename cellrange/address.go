package cellrange

import (
	"fmt"
	"strconv"
	"strings"
)

// ColName converts a 1-based column number to its letter name.
// 1→"A", 26→"Z", 27→"AA"
func ColName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return name
}

// ColNumber converts a column letter name to its 1-based column number.
// "A"→1, "Z"→26, "AA"→27
func ColNumber(name string) (int, error) {
	s := strings.ToUpper(strings.TrimSpace(name))
	if s == "" {
		return 0, fmt.Errorf("empty column name")
	}

	col := 0
	for _, ch := range s {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("invalid column name %q", name)
		}
		col = col*26 + int(ch-'A') + 1
	}

	return col, nil
}

// Label formats a cell position in A1 notation, e.g. Label(4, 2) → "B4".
func Label(row, col int) string {
	return fmt.Sprintf("%s%d", ColName(col), row)
}

// Ref formats a cell position in RC notation, e.g. Ref(4, 2) → "R4C2".
func Ref(row, col int) string {
	return fmt.Sprintf("R%dC%d", row, col)
}

// ParseLabel parses an A1-style cell address like "B4" into row and column.
func ParseLabel(label string) (row, col int, err error) {
	s := strings.TrimSpace(strings.ReplaceAll(label, "$", ""))

	i := 0
	for i < len(s) && isLetter(s[i]) {
		i++
	}

	if i == 0 || i == len(s) {
		return 0, 0, fmt.Errorf("invalid cell address %q", label)
	}

	if col, err = ColNumber(s[:i]); err != nil {
		return 0, 0, fmt.Errorf("invalid cell address %q: %w", label, err)
	}

	if row, err = strconv.Atoi(s[i:]); err != nil || row < 1 {
		return 0, 0, fmt.Errorf("invalid row in cell address %q", label)
	}

	return row, col, nil
}

// ParseRef parses an RC-style cell address like "R4C2" into row and column.
func ParseRef(ref string) (row, col int, err error) {
	s := strings.ToUpper(strings.TrimSpace(ref))
	if !strings.HasPrefix(s, "R") {
		return 0, 0, fmt.Errorf("invalid cell reference %q", ref)
	}

	c := strings.Index(s, "C")
	if c < 0 {
		return 0, 0, fmt.Errorf("invalid cell reference %q", ref)
	}

	if row, err = strconv.Atoi(s[1:c]); err != nil || row < 1 {
		return 0, 0, fmt.Errorf("invalid row in cell reference %q", ref)
	}

	if col, err = strconv.Atoi(s[c+1:]); err != nil || col < 1 {
		return 0, 0, fmt.Errorf("invalid column in cell reference %q", ref)
	}

	return row, col, nil
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
