package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/johnfrye/googlesheets/commands"
)

// Command is the interface implemented by the CLI commands.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(args ...any) error
}

var cli = []Command{
	&commands.AuthoriseCmd,
	&commands.GetCmd,
	&commands.ExportCmd,
	&commands.PutCmd,
	&commands.VersionCmd,
}

var options = commands.Options{
	Debug: false,
}

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 || args[0] == "help" {
		usage()
		os.Exit(1)
	}

	for _, cmd := range cli {
		if cmd.Name() == args[0] {
			if len(args) > 1 && args[1] == "help" {
				cmd.Help()
				return
			}

			flagset := cmd.FlagSet()
			if err := flagset.Parse(args[1:]); err != nil {
				fmt.Printf("\nError parsing command line: %v\n\n", err)
				os.Exit(1)
			}

			if err := cmd.Execute(&options); err != nil {
				log.Fatalf("ERROR: %v", err)
			}

			return
		}
	}

	fmt.Printf("\nInvalid command %q\n\n", args[0])
	usage()
	os.Exit(1)
}

func usage() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] <command> [options]\n", commands.APP)
	fmt.Println()
	fmt.Println("  Commands:")

	for _, cmd := range cli {
		fmt.Printf("    %-10s %s\n", cmd.Name(), cmd.Description())
	}

	fmt.Println()
	fmt.Printf("  Use '%s <command> help' for command details\n", commands.APP)
	fmt.Println()
}
