package utils

import (
	"strconv"
	"strings"
)

// Options are the single-letter switches of the options argument
type Options struct {
	Generate  bool // g: generate random input instead of reading a file
	Help      bool // h: show help
	ShowInput bool // i: print the input before processing
	Timings   bool // t: print lap timings
	Suppress  bool // s: do not print each generation
	Return    bool // r: hand the final generation back to the caller
}

// ParseOptions sets an option for every known letter present in s.
// Other characters are ignored.
func ParseOptions(s string) Options {
	return Options{
		Generate:  strings.ContainsRune(s, 'g'),
		Help:      strings.ContainsRune(s, 'h'),
		ShowInput: strings.ContainsRune(s, 'i'),
		Timings:   strings.ContainsRune(s, 't'),
		Suppress:  strings.ContainsRune(s, 's'),
		Return:    strings.ContainsRune(s, 'r'),
	}
}

// Args are the positional command-line arguments: filePath [options] [generations]
type Args struct {
	FilePath    string
	Options     Options
	Generations int
}

// ParseArgs reads positional arguments. A missing generation count becomes
// defaultGenerations.
func ParseArgs(args []string, defaultGenerations int) Args {
	var (
		parsed      Args
		generations string
	)
	if len(args) > 0 {
		parsed.FilePath = args[0]
	}
	if len(args) > 1 {
		parsed.Options = ParseOptions(args[1])
	}
	if len(args) > 2 {
		generations = args[2]
	}
	parsed.Generations = ParseGenerations(generations, defaultGenerations)
	return parsed
}

// ShowUsage reports whether usage should be printed instead of running
func (a Args) ShowUsage() bool {
	return a.Options.Help || a.FilePath == ""
}

// ParseGenerations converts a generation count. Empty input yields fallback.
// Anything that is not a positive integer, including the fallback, yields 1:
// at least one generation is always computed.
func ParseGenerations(s string, fallback int) int {
	n := fallback
	if s != "" {
		var err error
		if n, err = strconv.Atoi(strings.TrimSpace(s)); err != nil {
			n = 1
		}
	}
	return max(n, 1)
}
