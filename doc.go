/*
Package googlesheets is a client library for registering, reading and editing
spreadsheets hosted by Google Sheets, exposing worksheet data to the caller as
structured records.

The library is organised around the cell feed: a cell-granular listing of a
worksheet's populated cells, each tagged with its row/column position and text.
Reading a worksheet region retrieves the matching cells and then reshapes the
sparse listing into either a dense rectangular table (with header handling and
placeholders for cells the feed omitted) or a flat named vector keyed by cell
address.

  - cellrange validates and normalises row/column limits and parses cell range
    expressions ("B2:D4", "R2C3:R4C5")
  - feed registers worksheets and retrieves/edits cells over the cell feed
  - table reshapes cell listings into tables and named vectors
  - listfeed reads and writes dense rectangular tables through the Sheets
    values API
  - export downloads a worksheet's CSV export

The gsheets command line tool supports the following commands:

  - authorise, to authorise gsheets to access a Google Sheets spreadsheet
  - get, to download a worksheet region via the cell feed to a TSV file
  - export, to download a worksheet's CSV export to a TSV file
  - put, to store a TSV file to a Google Sheets worksheet
*/
package googlesheets
