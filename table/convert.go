package table

import (
	"strconv"
	"strings"
)

// Convert coerces cell text to a typed value with an explicit ordered
// attempt: boolean literal, then integer, then real number, falling back to
// the text itself when nothing parses unambiguously.
func Convert(text string) any {
	s := strings.TrimSpace(text)

	switch s {
	case "TRUE", "True", "true":
		return true

	case "FALSE", "False", "false":
		return false
	}

	if v, err := strconv.Atoi(s); err == nil {
		return v
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}

	return text
}
