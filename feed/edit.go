package feed

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"

	"github.com/johnfrye/googlesheets/cellrange"
)

type updateEntry struct {
	XMLName xml.Name   `xml:"entry"`
	Xmlns   string     `xml:"xmlns,attr"`
	XmlnsGS string     `xml:"xmlns:gs,attr"`
	ID      string     `xml:"id"`
	Cell    updateCell `xml:"gs:cell"`
}

type updateCell struct {
	Row        int    `xml:"row,attr"`
	Col        int    `xml:"col,attr"`
	InputValue string `xml:"inputValue,attr"`
}

// UpdateCell sets the value of a single cell and returns the updated cell as
// reported by the service. The worksheet reference is not modified; the edit
// is performed against the cell's own edit link, fetched as part of the call.
func (c *Client) UpdateCell(ctx context.Context, ws Worksheet, row, col int, value string) (Cell, error) {
	limits := cellrange.Limits{MinRow: row, MaxRow: row, MinCol: col, MaxCol: col}

	cells, err := c.GetCells(ctx, ws, limits, IncludeEmpty(), IncludeLinks())
	if err != nil {
		return Cell{}, err
	}

	if len(cells) == 0 {
		return Cell{}, fmt.Errorf("no cell at %s in worksheet %q", cellrange.Ref(row, col), ws.Title)
	}

	target := cells[0]
	if target.EditLink == "" {
		return Cell{}, fmt.Errorf("worksheet %q is read-only - cell %s has no edit link", ws.Title, target.Label)
	}

	entry := updateEntry{
		Xmlns:   "http://www.w3.org/2005/Atom",
		XmlnsGS: "http://schemas.google.com/spreadsheets/2006",
		ID:      target.ID,
		Cell: updateCell{
			Row:        row,
			Col:        col,
			InputValue: value,
		},
	}

	payload, err := xml.Marshal(entry)
	if err != nil {
		return Cell{}, err
	}

	rq, err := http.NewRequestWithContext(ctx, http.MethodPut, target.EditLink, bytes.NewReader(payload))
	if err != nil {
		return Cell{}, err
	}

	rq.Header.Set("Content-Type", "application/atom+xml")
	rq.Header.Set("If-Match", "*")

	response, err := c.http.Do(rq)
	if err != nil {
		return Cell{}, fmt.Errorf("cell update failed (%w)", err)
	}

	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return Cell{}, err
	}

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		return Cell{}, fmt.Errorf("cell update returned %s", response.Status)
	}

	var updated cellEntry
	if err := xml.Unmarshal(body, &updated); err != nil {
		return Cell{}, fmt.Errorf("cannot parse cell update response (%w)", err)
	}

	return Cell{
		Label: updated.Title,
		Ref:   refFromID(updated.ID, updated.Cell.Row, updated.Cell.Col),
		Row:   updated.Cell.Row,
		Col:   updated.Cell.Col,
		Value: updated.Content,
	}, nil
}
