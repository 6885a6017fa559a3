package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/johnfrye/googlesheets/export"
	"github.com/johnfrye/googlesheets/feed"
)

var ExportCmd = Export{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: filepath.Join(DEFAULT_WORKDIR, ".google", "credentials.json"),
	},

	header: true,
	file:   time.Now().Format("2006-01-02T150405.tsv"),
}

// Export is a CLI command implementation that downloads a worksheet's CSV
// export and stores it to a local TSV file.
type Export struct {
	command
	file   string
	header bool
}

func (cmd *Export) Name() string {
	return "export"
}

func (cmd *Export) Description() string {
	return "Downloads a worksheet's CSV export and stores it to a TSV file"
}

func (cmd *Export) Usage() string {
	return "--credentials <file> --url <url> --file <file>"
}

func (cmd *Export) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] export [options] --url <URL> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads a worksheet's CSV export to a TSV file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gsheets export --credentials "credentials.json" \`)
	fmt.Println(`                   --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                   --file "example.tsv"`)
	fmt.Println()
}

func (cmd *Export) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("export")

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")
	flagset.BoolVar(&cmd.header, "header", cmd.header, "Treats the first row as column names")

	return flagset
}

func (cmd *Export) Execute(args ...any) error {
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

	// ... authorise
	client, err := authorize(cmd.credentials, READONLY, cmd.tokensFile())
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%v)", err)
	}

	// ... download
	gsheets := feed.NewClient(client, feed.WithDebug(cmd.debug))

	ws, err := gsheets.Worksheet(context.Background(), spreadsheet, cmd.worksheet)
	if err != nil {
		return err
	}

	t, err := export.CSV(context.Background(), client, ws, cmd.header)
	if err != nil {
		return err
	}

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

	if err := os.MkdirAll(filepath.Dir(cmd.file), 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	infof("Exported worksheet %q to file %s", ws.Title, cmd.file)

	return nil
}
