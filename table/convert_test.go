package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		text     string
		expected any
	}{
		{"TRUE", true},
		{"false", false},
		{"True", true},
		{"17", 17},
		{"-3", -3},
		{"3.5", 3.5},
		{"1e3", 1000.0},
		{" 42 ", 42},
		{"hello", "hello"},
		{"", ""},
		{"17x", "17x"},
		{"TRUEISH", "TRUEISH"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Convert(test.text), "text %q", test.text)
	}
}

func TestConvertOrder(t *testing.T) {
	// integers stay integers rather than becoming floats
	assert.IsType(t, int(0), Convert("7"))
	assert.IsType(t, float64(0), Convert("7.0"))
}
