package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/johnfrye/googlesheets/cellrange"
	"github.com/johnfrye/googlesheets/feed"
	"github.com/johnfrye/googlesheets/table"
)

var GetCmd = Get{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: filepath.Join(DEFAULT_WORKDIR, ".google", "credentials.json"),
	},

	header: true,
	file:   time.Now().Format("2006-01-02T150405.tsv"),
}

// Get is a CLI command implementation that reads a worksheet region via the
// cell feed, reshapes it into a table and stores it to a local TSV file.
type Get struct {
	command
	area         string
	file         string
	header       bool
	includeEmpty bool
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves a worksheet region via the cell feed and stores it to a TSV file"
}

func (cmd *Get) Usage() string {
	return "--credentials <file> --url <url> --range <range> --file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --url <URL> --range <range> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads a worksheet region to a TSV file, filling in cells the feed omitted")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gsheets --debug get --credentials "credentials.json" \`)
	fmt.Println(`                        --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                        --range "B2:D4" \`)
	fmt.Println(`                        --file "example.tsv"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.area, "range", cmd.area, "Cell range e.g. 'B2:D4'. Defaults to the whole worksheet")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")
	flagset.BoolVar(&cmd.header, "header", cmd.header, "Treats the first row as column names")
	flagset.BoolVar(&cmd.includeEmpty, "include-empty", cmd.includeEmpty, "Asks the feed to return empty cells within the range")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.url) == "" {
		return fmt.Errorf("--url is a required option")
	}

	spreadsheet, err := cmd.spreadsheetID()
	if err != nil {
		return err
	}

	limits := cellrange.Limits{}
	if strings.TrimSpace(cmd.area) != "" {
		if limits, err = cellrange.ParseRange(cmd.area); err != nil {
			return err
		}
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  range:%s  limits:%+v", spreadsheet, cmd.area, limits)
	}

	// ... authorise
	client, err := authorize(cmd.credentials, READONLY, cmd.tokensFile())
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%v)", err)
	}

	// ... fetch and reshape
	gsheets := feed.NewClient(client, feed.WithDebug(cmd.debug))

	ws, err := gsheets.Worksheet(context.Background(), spreadsheet, cmd.worksheet)
	if err != nil {
		return err
	}

	opts := []feed.CellOption{}
	if cmd.includeEmpty {
		opts = append(opts, feed.IncludeEmpty())
	}

	cells, err := gsheets.GetCells(context.Background(), ws, limits, opts...)
	if err != nil {
		return err
	}

	t, err := table.Reshape(cells, cmd.header)

	switch {
	case errors.Is(err, table.ErrNoCells):
		infof("No cells in the requested range - nothing to do")
		return nil

	case errors.Is(err, table.ErrHeaderRows):
		infof("%v", err)
		return nil

	case err != nil:
		return err
	}

	return cmd.store(t)
}

func (cmd *Get) store(t *table.Table) error {
	tmp, err := os.CreateTemp(os.TempDir(), "gsheets")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := writeTSV(tmp, t); err != nil {
		return fmt.Errorf("error creating TSV file (%v)", err)
	}

	tmp.Close()

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	infof("Retrieved worksheet to file %s", cmd.file)

	return nil
}
