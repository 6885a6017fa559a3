// Package commands implements the gsheets CLI commands.
package commands

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
)

const APP = "gsheets"
const VERSION = "v0.1.0"

const SHEETS = "https://www.googleapis.com/auth/spreadsheets"
const READONLY = "https://www.googleapis.com/auth/spreadsheets.readonly"

var DEFAULT_WORKDIR = defaultWorkdir()

func defaultWorkdir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "gsheets")
	}

	return ".gsheets"
}

// Options are the top level command line options shared by all commands.
type Options struct {
	Debug bool
}

type command struct {
	workdir     string
	credentials string
	tokens      string
	url         string
	worksheet   string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.workdir, "workdir", c.workdir, "Directory for working files (tokens etc)")
	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&c.tokens, "tokens", c.tokens, "Path for the stored OAuth2 tokens file")
	flagset.StringVar(&c.url, "url", c.url, "Spreadsheet URL")
	flagset.StringVar(&c.worksheet, "worksheet", c.worksheet, "Worksheet title. Defaults to the first worksheet")

	return flagset
}

// spreadsheetID extracts the spreadsheet key from the --url option.
func (c *command) spreadsheetID() (string, error) {
	match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(c.url)
	if len(match) < 2 {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

func (c *command) tokensFile() string {
	if c.tokens != "" {
		return c.tokens
	}

	return filepath.Join(c.workdir, ".google", "tokens.json")
}

func helpOptions(flagset *flag.FlagSet) {
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-12s %s\n", f.Name, f.Usage)
	})
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}
