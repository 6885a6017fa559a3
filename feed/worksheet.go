package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/johnfrye/googlesheets/cellrange"
)

const exportCSVRel = "http://schemas.google.com/spreadsheets/2006#exportcsv"

// Worksheet is a read-only reference to a single worksheet of a registered
// spreadsheet. Consumption calls never mutate a Worksheet; operations that
// change the remote worksheet return fresh references.
type Worksheet struct {
	SpreadsheetID string
	SheetID       string
	Title         string
	Extent        cellrange.Extent
	CellsFeed     string
	ExportCSV     string
}

type worksheetsFeed struct {
	XMLName xml.Name         `xml:"feed"`
	Title   string           `xml:"title"`
	Entries []worksheetEntry `xml:"entry"`
}

type worksheetEntry struct {
	ID       string `xml:"id"`
	Title    string `xml:"title"`
	RowCount int    `xml:"rowCount"`
	ColCount int    `xml:"colCount"`
	Links    []link `xml:"link"`
}

type link struct {
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
	Href string `xml:"href,attr"`
}

// Worksheets registers a spreadsheet and returns a reference for each of its
// worksheets, in feed order. The extents reported by the feed are nominal
// declared sizes, not a measure of populated data.
func (c *Client) Worksheets(ctx context.Context, spreadsheetID string) ([]Worksheet, error) {
	endpoint := fmt.Sprintf("%s/worksheets/%s/private/full", c.base, spreadsheetID)

	body, err := c.get(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var parsed worksheetsFeed
	if err := xml.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("cannot parse worksheets feed (%w)", err)
	}

	worksheets := make([]Worksheet, 0, len(parsed.Entries))
	for _, entry := range parsed.Entries {
		id := entry.ID[strings.LastIndex(entry.ID, "/")+1:]

		worksheets = append(worksheets, Worksheet{
			SpreadsheetID: spreadsheetID,
			SheetID:       id,
			Title:         entry.Title,
			Extent: cellrange.Extent{
				Rows: entry.RowCount,
				Cols: entry.ColCount,
			},
			CellsFeed: fmt.Sprintf("%s/cells/%s/%s/private/full", c.base, spreadsheetID, id),
			ExportCSV: findLink(entry.Links, exportCSVRel),
		})
	}

	return worksheets, nil
}

// Worksheet returns the reference for the worksheet with the given title. An
// empty title selects the first worksheet.
func (c *Client) Worksheet(ctx context.Context, spreadsheetID, title string) (Worksheet, error) {
	worksheets, err := c.Worksheets(ctx, spreadsheetID)
	if err != nil {
		return Worksheet{}, err
	}

	if len(worksheets) == 0 {
		return Worksheet{}, fmt.Errorf("spreadsheet %q has no worksheets", spreadsheetID)
	}

	if title == "" {
		return worksheets[0], nil
	}

	for _, ws := range worksheets {
		if strings.EqualFold(strings.TrimSpace(ws.Title), strings.TrimSpace(title)) {
			return ws, nil
		}
	}

	return Worksheet{}, fmt.Errorf("no worksheet titled %q in spreadsheet %q", title, spreadsheetID)
}

func findLink(links []link, rel string) string {
	for _, l := range links {
		if l.Rel == rel {
			return l.Href
		}
	}

	return ""
}
