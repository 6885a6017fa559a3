// Package export downloads a worksheet's delimited-text export and converts
// it to a table, bypassing the cell feed entirely.
package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/johnfrye/googlesheets/feed"
	"github.com/johnfrye/googlesheets/table"
)

// ErrUnsupported indicates the worksheet has no CSV export endpoint. Legacy
// document formats lack the export capability; the list feed is the
// alternative consumption path for those.
var ErrUnsupported = errors.New("worksheet does not support CSV export - read it via the list feed instead")

// CSV downloads the worksheet's CSV export and converts it to a Table. With
// header set, the first record supplies the column names (blank cells get
// synthetic "C<col>" names).
func CSV(ctx context.Context, authenticated *http.Client, ws feed.Worksheet, header bool) (*table.Table, error) {
	if ws.ExportCSV == "" {
		return nil, ErrUnsupported
	}

	client := authenticated
	if client == nil {
		client = http.DefaultClient
	}

	rq, err := http.NewRequestWithContext(ctx, http.MethodGet, ws.ExportCSV, nil)
	if err != nil {
		return nil, err
	}

	response, err := client.Do(rq)
	if err != nil {
		return nil, fmt.Errorf("export request failed (%w)", err)
	}

	defer response.Body.Close()

	mediatype, _, _ := mime.ParseMediaType(response.Header.Get("Content-Type"))
	if strings.Contains(mediatype, "html") {
		return nil, &feed.PermissionError{
			StatusCode:  response.StatusCode,
			ContentType: mediatype,
		}
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("export request returned %s", response.Status)
	}

	reader := csv.NewReader(response.Body)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse CSV export (%w)", err)
	}

	return fromRecords(records, header)
}

func fromRecords(records [][]string, header bool) (*table.Table, error) {
	if len(records) == 0 {
		return nil, table.ErrNoCells
	}

	width := 0
	for _, record := range records {
		if len(record) > width {
			width = len(record)
		}
	}

	if width == 0 {
		return nil, table.ErrNoCells
	}

	names := make([]string, 0, width)
	for col := 0; col < width; col++ {
		name := fmt.Sprintf("C%d", col+1)
		if header && col < len(records[0]) && strings.TrimSpace(records[0][col]) != "" {
			name = table.MakeName(records[0][col])
		}

		names = append(names, name)
	}

	first := 0
	if header {
		if len(records) < 2 {
			return nil, table.ErrHeaderRows
		}

		first = 1
	}

	rows := make([][]table.Datum, 0, len(records)-first)
	for _, record := range records[first:] {
		row := make([]table.Datum, 0, width)

		for col := 0; col < width; col++ {
			if col < len(record) {
				row = append(row, table.Datum{Text: record[col]})
			} else {
				row = append(row, table.Datum{Missing: true})
			}
		}

		rows = append(rows, row)
	}

	return &table.Table{Header: names, Records: rows}, nil
}
