package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-conway/source"
	"github.com/sheikhrachel/go-conway/utils"
)

const defaultConfigFile = "config.json"

// printUsage shows the command line and what each option letter does
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "conway [-config file] filepath [options] [generations]")
	fmt.Fprintln(w, "options: g: generate input,\n\t h: display help,\n\t i: display input,\n\t t: display times,\n\t s: suppress output,\n\t r: return output.")
	fmt.Fprintln(w, "generations: number of generations to calculate.")
}

// loadConfig loads the configuration file, falling back to defaults.
// A missing default file is expected and not reported.
func loadConfig(filename string) utils.Config {
	config, err := utils.LoadConfig(filename)
	if err != nil {
		if filename != defaultConfigFile || !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Using default configuration: %v\n", err)
		}
		return utils.DefaultConfig()
	}
	return config
}

// newSource picks random or file input for the run
func newSource(args utils.Args, config utils.Config) source.Source {
	if args.Options.Generate {
		return source.Random{Width: config.RandomWidth, Height: config.RandomHeight}
	}
	return source.File{Path: args.FilePath}
}
