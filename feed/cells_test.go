package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnfrye/googlesheets/cellrange"
)

const cellFeedXML = `<?xml version='1.0' encoding='UTF-8'?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:gs="http://schemas.google.com/spreadsheets/2006">
  <title>Sheet1</title>
  <entry>
    <id>https://spreadsheets.google.com/feeds/cells/key/od6/private/full/R1C1</id>
    <title>A1</title>
    <content type="text">a</content>
    <link rel="edit" type="application/atom+xml" href="https://spreadsheets.google.com/feeds/cells/key/od6/private/full/R1C1/1v1"/>
    <gs:cell row="1" col="1" inputValue="a">a</gs:cell>
  </entry>
  <entry>
    <id>https://spreadsheets.google.com/feeds/cells/key/od6/private/full/R2C2</id>
    <title>B2</title>
    <content type="text">x</content>
    <link rel="edit" type="application/atom+xml" href="https://spreadsheets.google.com/feeds/cells/key/od6/private/full/R2C2/1v1"/>
    <gs:cell row="2" col="2" inputValue="x">x</gs:cell>
  </entry>
</feed>`

const emptyFeedXML = `<?xml version='1.0' encoding='UTF-8'?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:gs="http://schemas.google.com/spreadsheets/2006">
  <title>Sheet1</title>
</feed>`

const readOnlyFeedXML = `<?xml version='1.0' encoding='UTF-8'?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:gs="http://schemas.google.com/spreadsheets/2006">
  <title>Sheet1</title>
  <entry>
    <id>https://spreadsheets.google.com/feeds/cells/key/od6/private/full/R1C1</id>
    <title>A1</title>
    <content type="text">a</content>
    <gs:cell row="1" col="1" inputValue="a">a</gs:cell>
  </entry>
</feed>`

func atomServer(t *testing.T, body string, requests *[]*http.Request) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		if requests != nil {
			*requests = append(*requests, rq.Clone(context.Background()))
		}

		w.Header().Set("Content-Type", "application/atom+xml; charset=UTF-8")
		fmt.Fprint(w, body)
	}))
}

func TestGetCells(t *testing.T) {
	server := atomServer(t, cellFeedXML, nil)
	defer server.Close()

	client := NewClient(nil)
	ws := Worksheet{Title: "Sheet1", CellsFeed: server.URL}

	cells, err := client.GetCells(context.Background(), ws, cellrange.Limits{})
	require.NoError(t, err)
	require.Len(t, cells, 2)

	assert.Equal(t, Cell{Label: "A1", Ref: "R1C1", Row: 1, Col: 1, Value: "a"}, cells[0])
	assert.Equal(t, Cell{Label: "B2", Ref: "R2C2", Row: 2, Col: 2, Value: "x"}, cells[1])
}

func TestGetCellsQueryParameters(t *testing.T) {
	requests := []*http.Request{}
	server := atomServer(t, cellFeedXML, &requests)
	defer server.Close()

	client := NewClient(nil)
	ws := Worksheet{Title: "Sheet1", CellsFeed: server.URL, Extent: cellrange.Extent{Rows: 100, Cols: 26}}

	limits := cellrange.Limits{MinRow: 2, MaxRow: 4, MinCol: 1, MaxCol: 3}

	_, err := client.GetCells(context.Background(), ws, limits, IncludeEmpty())
	require.NoError(t, err)

	require.Len(t, requests, 1)
	query := requests[0].URL.Query()
	assert.Equal(t, "2", query.Get("min-row"))
	assert.Equal(t, "4", query.Get("max-row"))
	assert.Equal(t, "1", query.Get("min-col"))
	assert.Equal(t, "3", query.Get("max-col"))
	assert.Equal(t, "true", query.Get("return-empty"))
}

func TestGetCellsNoParametersByDefault(t *testing.T) {
	requests := []*http.Request{}
	server := atomServer(t, cellFeedXML, &requests)
	defer server.Close()

	client := NewClient(nil)
	ws := Worksheet{Title: "Sheet1", CellsFeed: server.URL}

	_, err := client.GetCells(context.Background(), ws, cellrange.Limits{})
	require.NoError(t, err)

	require.Len(t, requests, 1)
	assert.Empty(t, requests[0].URL.RawQuery)
}

func TestGetCellsValidatesBeforeFetching(t *testing.T) {
	requests := []*http.Request{}
	server := atomServer(t, cellFeedXML, &requests)
	defer server.Close()

	client := NewClient(nil)
	ws := Worksheet{Title: "Sheet1", CellsFeed: server.URL}

	_, err := client.GetCells(context.Background(), ws, cellrange.Limits{MinRow: 5, MaxRow: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_row (5)")
	assert.Contains(t, err.Error(), "max_row (2)")

	// no network access on validation failure
	assert.Empty(t, requests)
}

func TestGetCellsEmptyFeed(t *testing.T) {
	server := atomServer(t, emptyFeedXML, nil)
	defer server.Close()

	client := NewClient(nil)
	ws := Worksheet{Title: "Sheet1", CellsFeed: server.URL}

	cells, err := client.GetCells(context.Background(), ws, cellrange.Limits{MinRow: 50, MaxRow: 60})
	require.NoError(t, err)

	// empty but typed - distinguishable from "worksheet has no feed"
	require.NotNil(t, cells)
	assert.Len(t, cells, 0)
}

func TestGetCellsStripsLinksByDefault(t *testing.T) {
	server := atomServer(t, cellFeedXML, nil)
	defer server.Close()

	client := NewClient(nil)
	ws := Worksheet{Title: "Sheet1", CellsFeed: server.URL}

	cells, err := client.GetCells(context.Background(), ws, cellrange.Limits{})
	require.NoError(t, err)

	for _, cell := range cells {
		assert.Empty(t, cell.ID)
		assert.Empty(t, cell.EditLink)
	}

	cells, err = client.GetCells(context.Background(), ws, cellrange.Limits{}, IncludeLinks())
	require.NoError(t, err)

	for _, cell := range cells {
		assert.NotEmpty(t, cell.ID)
		assert.NotEmpty(t, cell.EditLink)
	}
}

func TestGetCellsReadOnlyFeed(t *testing.T) {
	server := atomServer(t, readOnlyFeedXML, nil)
	defer server.Close()

	client := NewClient(nil)
	ws := Worksheet{Title: "Sheet1", CellsFeed: server.URL}

	cells, err := client.GetCells(context.Background(), ws, cellrange.Limits{}, IncludeLinks())
	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.Empty(t, cells[0].EditLink)
}

func TestGetCellsPermissionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=UTF-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "<html><head><title>Google Sheets - sign in</title></head><body></body></html>")
	}))

	defer server.Close()

	client := NewClient(nil)
	ws := Worksheet{Title: "Sheet1", CellsFeed: server.URL}

	_, err := client.GetCells(context.Background(), ws, cellrange.Limits{})
	require.Error(t, err)

	var permission *PermissionError
	require.ErrorAs(t, err, &permission)
	assert.Equal(t, "text/html", permission.ContentType)
	assert.Equal(t, "Google Sheets - sign in", permission.Title)
	assert.Contains(t, err.Error(), "published to the web")
}

func TestGetRowsColsRange(t *testing.T) {
	requests := []*http.Request{}
	server := atomServer(t, cellFeedXML, &requests)
	defer server.Close()

	client := NewClient(nil)
	ws := Worksheet{Title: "Sheet1", CellsFeed: server.URL}

	_, err := client.GetRows(context.Background(), ws, 2, 4)
	require.NoError(t, err)

	_, err = client.GetCols(context.Background(), ws, 1, 3)
	require.NoError(t, err)

	_, err = client.GetRange(context.Background(), ws, "B2:D4")
	require.NoError(t, err)

	require.Len(t, requests, 3)

	assert.Equal(t, "2", requests[0].URL.Query().Get("min-row"))
	assert.Equal(t, "4", requests[0].URL.Query().Get("max-row"))
	assert.Empty(t, requests[0].URL.Query().Get("min-col"))

	assert.Equal(t, "1", requests[1].URL.Query().Get("min-col"))
	assert.Equal(t, "3", requests[1].URL.Query().Get("max-col"))

	assert.Equal(t, "2", requests[2].URL.Query().Get("min-row"))
	assert.Equal(t, "4", requests[2].URL.Query().Get("max-col"))

	_, err = client.GetRange(context.Background(), ws, "not a range")
	assert.Error(t, err)
}
