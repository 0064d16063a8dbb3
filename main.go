package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sheikhrachel/go-conway/game"
	"github.com/sheikhrachel/go-conway/utils"
)

func main() {
	configFile := flag.String("config", defaultConfigFile, "JSON or YAML configuration file")
	flag.Usage = func() {
		printUsage(flag.CommandLine.Output())
		flag.PrintDefaults()
	}
	flag.Parse()

	config := loadConfig(*configFile)
	args := utils.ParseArgs(flag.Args(), config.DefaultGenerations)
	if args.ShowUsage() {
		printUsage(os.Stdout)
		return
	}

	output, err := game.Run(newSource(args, config), args.Options, args.Generations, config, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// The final generation is the run's result when asked for
	if args.Options.Return {
		fmt.Println(output)
	}
}
