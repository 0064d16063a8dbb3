// Package game runs the generation loop: parse, count neighbors, apply the
// rules, print, and feed the result back in as the next input.
package game

import (
	"fmt"
	"io"

	"github.com/sheikhrachel/go-conway/model"
	"github.com/sheikhrachel/go-conway/source"
	"github.com/sheikhrachel/go-conway/utils"
)

// Run reads the first generation from src and computes generations more,
// at least one. Unless suppressed, every generation is written to out.
// The final generation is returned.
func Run(
	src source.Source,
	opts utils.Options,
	generations int,
	config utils.Config,
	out io.Writer,
) (string, error) {
	if out == nil {
		out = io.Discard
	}

	var timer *utils.LapTimer
	if opts.Timings {
		timer = utils.NewLapTimer(out)
	}
	lap := func(title string) {
		if timer != nil {
			timer.Lap(title)
		}
	}

	input, err := src.Input()
	if err != nil {
		return "", err
	}
	if opts.ShowInput {
		fmt.Fprintf(out, "%s\n\n", input)
	}

	var (
		renderer = model.NewRenderer(out, config.Render)
		output   string
	)
	for generation := 1; ; generation++ {
		output = nextGeneration(input, config.Workers, lap)

		if !opts.Suppress {
			renderer.Display(output)
			lap("printOutput:")
		}

		input = output
		if generation >= generations {
			break
		}
	}

	return output, nil
}

// nextGeneration computes one generation from text, one phase after another
func nextGeneration(input string, workers int, lap func(string)) string {
	grid := model.ParseGrid(input)
	lap("parseGrid:")

	counts := grid.CountNeighborsParallel(workers)
	lap("countNeighbors:")

	output := grid.NextParallel(counts, workers)
	lap("nextGeneration:")

	return output
}
