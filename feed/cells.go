package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/johnfrye/googlesheets/cellrange"
)

const editRel = "edit"

// Cell is one cell returned by the cell feed: its position in both notations
// and its display text. ID and EditLink are bookkeeping fields used only when
// editing; they are populated only when links are requested.
type Cell struct {
	Label string // A1 notation, e.g. "B4"
	Ref   string // RC notation, e.g. "R4C2"
	Row   int
	Col   int
	Value string

	ID       string
	EditLink string
}

type cellFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Title   string      `xml:"title"`
	Entries []cellEntry `xml:"entry"`
}

type cellEntry struct {
	ID      string `xml:"id"`
	Title   string `xml:"title"`
	Content string `xml:"content"`
	Cell    struct {
		Row        int    `xml:"row,attr"`
		Col        int    `xml:"col,attr"`
		InputValue string `xml:"inputValue,attr"`
	} `xml:"cell"`
	Links []link `xml:"link"`
}

type cellQuery struct {
	includeEmpty bool
	includeLinks bool
}

// CellOption modifies a cell feed query.
type CellOption func(*cellQuery)

// IncludeEmpty asks the feed to return empty cells within the requested
// limits, not just populated ones.
func IncludeEmpty() CellOption {
	return func(q *cellQuery) { q.includeEmpty = true }
}

// IncludeLinks retains the per-cell bookkeeping fields (entry ID and edit
// link) needed for editing. By default they are stripped.
func IncludeLinks() CellOption {
	return func(q *cellQuery) { q.includeLinks = true }
}

// GetCells queries the worksheet's cell feed for the rectangle described by
// limits and returns the cells found, in feed order. Limits are validated
// against the worksheet extent before any remote call. A worksheet region
// with no populated cells yields an empty (non-nil) slice.
func (c *Client) GetCells(ctx context.Context, ws Worksheet, limits cellrange.Limits, opts ...CellOption) ([]Cell, error) {
	if err := limits.Validate(ws.Extent); err != nil {
		return nil, err
	}

	var q cellQuery
	for _, opt := range opts {
		opt(&q)
	}

	if q.includeEmpty && limits.Empty() {
		warnf("requesting empty cells without limits scans the default worksheet size (1000 rows x 26 columns) and can be slow")
	}

	params := url.Values{}

	if limits.MinRow > 0 {
		params.Set("min-row", strconv.Itoa(limits.MinRow))
	}

	if limits.MaxRow > 0 {
		params.Set("max-row", strconv.Itoa(limits.MaxRow))
	}

	if limits.MinCol > 0 {
		params.Set("min-col", strconv.Itoa(limits.MinCol))
	}

	if limits.MaxCol > 0 {
		params.Set("max-col", strconv.Itoa(limits.MaxCol))
	}

	if q.includeEmpty {
		params.Set("return-empty", "true")
	}

	body, err := c.get(ctx, ws.CellsFeed, params)
	if err != nil {
		return nil, err
	}

	var parsed cellFeed
	if err := xml.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("cannot parse cell feed (%w)", err)
	}

	cells := make([]Cell, 0, len(parsed.Entries))
	editable := false

	for _, entry := range parsed.Entries {
		cell := Cell{
			Label: entry.Title,
			Ref:   refFromID(entry.ID, entry.Cell.Row, entry.Cell.Col),
			Row:   entry.Cell.Row,
			Col:   entry.Cell.Col,
			Value: entry.Content,
		}

		if edit := findLink(entry.Links, editRel); edit != "" {
			editable = true
			if q.includeLinks {
				cell.ID = entry.ID
				cell.EditLink = edit
			}
		}

		cells = append(cells, cell)
	}

	// the absence of edit links across the whole feed means the account has
	// read-only access; note it once rather than per cell
	if len(cells) > 0 && !editable {
		infof("worksheet %q is read-only for this account", ws.Title)
	}

	return cells, nil
}

// GetRows retrieves the cells of rows first..last.
func (c *Client) GetRows(ctx context.Context, ws Worksheet, first, last int, opts ...CellOption) ([]Cell, error) {
	return c.GetCells(ctx, ws, cellrange.Limits{MinRow: first, MaxRow: last}, opts...)
}

// GetCols retrieves the cells of columns first..last.
func (c *Client) GetCols(ctx context.Context, ws Worksheet, first, last int, opts ...CellOption) ([]Cell, error) {
	return c.GetCells(ctx, ws, cellrange.Limits{MinCol: first, MaxCol: last}, opts...)
}

// GetRange retrieves the cells of a range expression like "B2:D4".
func (c *Client) GetRange(ctx context.Context, ws Worksheet, expression string, opts ...CellOption) ([]Cell, error) {
	limits, err := cellrange.ParseRange(expression)
	if err != nil {
		return nil, err
	}

	return c.GetCells(ctx, ws, limits, opts...)
}

// refFromID derives the RC-style label from the entry's internal identifier,
// whose last path segment is "R<row>C<col>", falling back to the computed
// row/col position.
func refFromID(id string, row, col int) string {
	segment := id[strings.LastIndex(id, "/")+1:]
	if r, c, err := cellrange.ParseRef(segment); err == nil && r == row && c == col {
		return segment
	}

	return cellrange.Ref(row, col)
}
