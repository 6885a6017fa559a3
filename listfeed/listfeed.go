// Package listfeed reads and writes worksheets as dense rectangular tables
// through the Google Sheets values API. It is the bulk consumption path for
// clean, well-formed rectangles with a header row, sharing the table output
// contract of the cell feed pipeline.
package listfeed

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/johnfrye/googlesheets/feed"
	"github.com/johnfrye/googlesheets/table"
)

// Reader wraps a Sheets values API client.
type Reader struct {
	service *sheets.Service
}

// NewReader creates a Reader on top of an authenticated HTTP client.
func NewReader(ctx context.Context, authenticated *http.Client) (*Reader, error) {
	service, err := sheets.NewService(ctx, option.WithHTTPClient(authenticated))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets client (%w)", err)
	}

	return &Reader{service: service}, nil
}

// Read fetches the whole worksheet as a dense rectangle and converts it to a
// Table. The first row is treated as the header.
func (r *Reader) Read(ctx context.Context, ws feed.Worksheet) (*table.Table, error) {
	response, err := r.service.Spreadsheets.Values.Get(ws.SpreadsheetID, ws.Title).Context(ctx).Do()
	if err != nil {
		return nil, classify(err, ws)
	}

	return FromRows(response.Values)
}

// Write stores a header row and data rows back to the worksheet.
func (r *Reader) Write(ctx context.Context, spreadsheetID string, ranges []*sheets.ValueRange) error {
	rq := sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             ranges,
	}

	if _, err := r.service.Spreadsheets.Values.BatchUpdate(spreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}

// FromRows converts a values API response into a Table. The first row is the
// header; blank header cells get synthetic "C<col>" names. Rows shorter than
// the widest row are padded with missing markers.
func FromRows(rows [][]interface{}) (*table.Table, error) {
	if len(rows) == 0 {
		return nil, table.ErrNoCells
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	if width == 0 {
		return nil, table.ErrNoCells
	}

	header := make([]string, 0, width)
	for col := 0; col < width; col++ {
		name := fmt.Sprintf("C%d", col+1)
		if col < len(rows[0]) {
			if text := asText(rows[0][col]); text != "" {
				name = table.MakeName(text)
			}
		}

		header = append(header, name)
	}

	records := make([][]table.Datum, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make([]table.Datum, 0, width)

		for col := 0; col < width; col++ {
			if col < len(row) {
				record = append(record, table.Datum{Text: asText(row[col])})
			} else {
				record = append(record, table.Datum{Missing: true})
			}
		}

		records = append(records, record)
	}

	return &table.Table{Header: header, Records: records}, nil
}

func asText(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprintf("%v", v)
}

func classify(err error, ws feed.Worksheet) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusForbidden || apiErr.Code == http.StatusNotFound) {
		return fmt.Errorf("cannot read worksheet %q (HTTP %d) - check that the spreadsheet is shared with this account (%w)", ws.Title, apiErr.Code, err)
	}

	return fmt.Errorf("unable to retrieve data from worksheet %q (%w)", ws.Title, err)
}
