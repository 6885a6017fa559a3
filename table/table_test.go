package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnfrye/googlesheets/cellrange"
	"github.com/johnfrye/googlesheets/feed"
)

func cell(row, col int, value string) feed.Cell {
	return feed.Cell{
		Label: cellrange.Label(row, col),
		Ref:   cellrange.Ref(row, col),
		Row:   row,
		Col:   col,
		Value: value,
	}
}

func TestReshapeWithHeader(t *testing.T) {
	cells := []feed.Cell{
		cell(1, 1, "a"),
		cell(1, 2, "b"),
		cell(2, 1, "1"),
		cell(2, 2, "2"),
	}

	table, err := Reshape(cells, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, table.Header)
	assert.Equal(t, [][]string{{"1", "2"}}, table.Strings())
}

func TestReshapeWithoutHeader(t *testing.T) {
	cells := []feed.Cell{
		cell(1, 1, "a"),
		cell(1, 2, "b"),
		cell(2, 1, "1"),
		cell(2, 2, "2"),
	}

	table, err := Reshape(cells, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"C1", "C2"}, table.Header)
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}}, table.Strings())
}

func TestReshapeDensifiesMissingCells(t *testing.T) {
	// rows 1-3 with (2,2) never returned by the feed
	cells := []feed.Cell{
		cell(1, 1, "a"),
		cell(1, 2, "b"),
		cell(2, 1, "1"),
		cell(3, 1, "3"),
		cell(3, 2, "4"),
	}

	table, err := Reshape(cells, false)
	require.NoError(t, err)

	require.Len(t, table.Records, 3)
	assert.Equal(t, Datum{Text: "1"}, table.Records[1][0])
	assert.Equal(t, Datum{Missing: true}, table.Records[1][1])
}

func TestReshapeDimensions(t *testing.T) {
	// cells spanning rows 3-7, cols 2-5, sparsely populated
	cells := []feed.Cell{
		cell(3, 2, "tl"),
		cell(5, 4, "x"),
		cell(7, 5, "br"),
	}

	table, err := Reshape(cells, false)
	require.NoError(t, err)

	assert.Len(t, table.Header, 4)
	assert.Len(t, table.Records, 5)

	for _, record := range table.Records {
		assert.Len(t, record, 4)
	}

	assert.Equal(t, []string{"C2", "C3", "C4", "C5"}, table.Header)
}

func TestReshapeIdempotentOnDenseInput(t *testing.T) {
	cells := []feed.Cell{}
	for row := 1; row <= 3; row++ {
		for col := 1; col <= 2; col++ {
			cells = append(cells, cell(row, col, cellrange.Label(row, col)))
		}
	}

	first, err := Reshape(cells, false)
	require.NoError(t, err)

	// rebuild the cell listing from the table and reshape again
	rebuilt := []feed.Cell{}
	for i, record := range first.Strings() {
		for j, value := range record {
			rebuilt = append(rebuilt, cell(i+1, j+1, value))
		}
	}

	second, err := Reshape(rebuilt, false)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReshapeOrderIndependent(t *testing.T) {
	ordered := []feed.Cell{
		cell(1, 1, "a"),
		cell(1, 2, "b"),
		cell(2, 1, "1"),
		cell(2, 2, "2"),
	}

	shuffled := []feed.Cell{ordered[3], ordered[0], ordered[2], ordered[1]}

	expected, err := Reshape(ordered, true)
	require.NoError(t, err)

	actual, err := Reshape(shuffled, true)
	require.NoError(t, err)

	assert.Equal(t, expected, actual)
}

func TestReshapeBlankHeaderCells(t *testing.T) {
	cells := []feed.Cell{
		cell(1, 1, "name"),
		cell(1, 2, ""),
		cell(2, 1, "x"),
		cell(2, 2, "y"),
		cell(2, 3, "z"),
	}

	table, err := Reshape(cells, true)
	require.NoError(t, err)

	// blank and absent header cells both get synthetic names
	assert.Equal(t, []string{"name", "C2", "C3"}, table.Header)
}

func TestReshapeEmptyStringIsNotMissing(t *testing.T) {
	cells := []feed.Cell{
		cell(1, 1, "a"),
		cell(1, 2, ""),
		cell(2, 1, "x"),
	}

	table, err := Reshape(cells, false)
	require.NoError(t, err)

	assert.Equal(t, Datum{Text: ""}, table.Records[0][1])
	assert.Equal(t, Datum{Missing: true}, table.Records[1][1])
}

func TestReshapeNoCells(t *testing.T) {
	_, err := Reshape([]feed.Cell{}, false)
	assert.ErrorIs(t, err, ErrNoCells)

	_, err = Reshape(nil, true)
	assert.ErrorIs(t, err, ErrNoCells)
}

func TestReshapeSingleRowWithHeader(t *testing.T) {
	cells := []feed.Cell{
		cell(1, 1, "a"),
		cell(1, 2, "b"),
	}

	_, err := Reshape(cells, true)
	assert.ErrorIs(t, err, ErrHeaderRows)

	// same cells without a header reshape fine
	table, err := Reshape(cells, false)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}}, table.Strings())
}

func TestMakeName(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"plain", "plain"},
		{"Card Number", "Card.Number"},
		{"a-b c", "a.b.c"},
		{"2019 totals", "X2019.totals"},
		{"_keep", "_keep"},
		{"дата", "дата"},
		{"!!!", "..."},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, MakeName(test.text), "text %q", test.text)
	}
}

func TestMakeNameDuplicatesTolerated(t *testing.T) {
	cells := []feed.Cell{
		cell(1, 1, "total"),
		cell(1, 2, "total"),
		cell(2, 1, "1"),
		cell(2, 2, "2"),
	}

	table, err := Reshape(cells, true)
	require.NoError(t, err)

	// duplicate names are allowed, not deduplicated
	assert.Equal(t, []string{"total", "total"}, table.Header)
}
