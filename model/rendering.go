package model

import (
	"fmt"
	"io"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// RenderText prints generations in the same text format they are read in
	RenderText = "text"
	// RenderBlocks prints live cells as solid blocks
	RenderBlocks = "blocks"
)

// TerminalRenderer writes generations to an output stream
type TerminalRenderer struct {
	out  io.Writer
	mode string
}

// NewRenderer creates a renderer for the given mode. Unknown modes render text.
func NewRenderer(out io.Writer, mode string) *TerminalRenderer {
	if out == nil {
		out = io.Discard
	}
	return &TerminalRenderer{out: out, mode: mode}
}

// Display writes one generation followed by a blank line
func (r *TerminalRenderer) Display(generation string) {
	if r.mode == RenderBlocks {
		generation = blocks(generation)
	}
	fmt.Fprintf(r.out, "%s\n\n", generation)
}

func blocks(generation string) string {
	var b strings.Builder
	for _, cell := range generation {
		switch cell {
		case Alive:
			b.WriteString(gridPosBlock)
		case '\n', '\r':
			b.WriteRune(cell)
		default:
			b.WriteString(gridPosEmpty)
		}
	}
	return b.String()
}
