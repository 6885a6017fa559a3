package commands

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"
)

var AuthoriseCmd = Authorise{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: filepath.Join(DEFAULT_WORKDIR, ".google", "credentials.json"),
	},
}

// Authorise is a CLI command implementation that walks the user through the
// OAuth2 consent flow and caches the resulting tokens.
type Authorise struct {
	command
	readwrite bool
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises gsheets to access a Google Sheets spreadsheet"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options]\n", APP)
	fmt.Println()
	fmt.Println("  Authorises gsheets to access a Google Sheets spreadsheet")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gsheets authorise --credentials "credentials.json"`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("authorise")

	flagset.BoolVar(&cmd.readwrite, "read-write", cmd.readwrite, "Requests read-write access (required by the 'put' command)")

	return flagset
}

func (cmd *Authorise) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	scope := READONLY
	if cmd.readwrite {
		scope = SHEETS
	}

	if _, err := authorize(cmd.credentials, scope, cmd.tokensFile()); err != nil {
		return fmt.Errorf("authorisation error (%v)", err)
	}

	infof("Stored OAuth2 tokens in %s", cmd.tokensFile())

	return nil
}
