package model

import (
	"strings"

	"github.com/sheikhrachel/go-conway/rules"
)

// Cell states as they appear in generation text. Any other character is a
// dead cell as far as the rules are concerned.
const (
	Alive = '1'
	Dead  = '0'
)

// Grid is one generation split into rows of single-character cells.
// Rows keep their own length; nothing forces the grid to be rectangular.
type Grid [][]rune

// Counts holds the number of live neighbors of every cell of a Grid, row for row
type Counts [][]int

// ParseGrid converts generation text into a Grid. Rows are separated by "\n"
// or "\r\n". Empty text yields a single empty row.
func ParseGrid(text string) Grid {
	lines := strings.Split(text, "\n")
	grid := make(Grid, len(lines))
	for i, line := range lines {
		if i < len(lines)-1 {
			line = strings.TrimSuffix(line, "\r")
		}
		grid[i] = []rune(line)
	}
	return grid
}

// IsAlive reports whether the cell at (row, col) exists and is alive
func (g Grid) IsAlive(row, col int) bool {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return false
	}
	return g[row][col] == Alive
}

// liveNeighbors counts the live cells among the 8 positions around (row, col).
func (g Grid) liveNeighbors(row, col int) (count int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dy == 0 && dx == 0 {
				continue // Skip the cell itself
			}
			if g.IsAlive(row+dy, col+dx) {
				count++
			}
		}
	}
	return
}

// CountNeighbors returns the live neighbor count of every cell
func (g Grid) CountNeighbors() Counts {
	return g.CountNeighborsParallel(1)
}

// CountNeighborsParallel is CountNeighbors with rows split across workers
func (g Grid) CountNeighborsParallel(workers int) Counts {
	counts := make(Counts, len(g))
	forEachRow(len(g), workers, func(row int) {
		counts[row] = make([]int, len(g[row]))
		for col := range g[row] {
			counts[row][col] = g.liveNeighbors(row, col)
		}
	})
	return counts
}

// Next applies the rules to every cell and returns the next generation as text
func (g Grid) Next(counts Counts) string {
	return g.NextParallel(counts, 1)
}

// NextParallel is Next with rows split across workers
func (g Grid) NextParallel(counts Counts, workers int) string {
	rows := make([]string, len(counts))
	forEachRow(len(counts), workers, func(row int) {
		var b strings.Builder
		b.Grow(len(counts[row]))
		for col, count := range counts[row] {
			if rules.ApplyConwayRules(count, g.IsAlive(row, col)) {
				b.WriteRune(Alive)
			} else {
				b.WriteRune(Dead)
			}
		}
		rows[row] = b.String()
	})
	return strings.Join(rows, "\n")
}

// String serializes the grid unchanged, in the same text format ParseGrid reads
func (g Grid) String() string {
	rows := make([]string, len(g))
	for i, row := range g {
		rows[i] = string(row)
	}
	return strings.Join(rows, "\n")
}
