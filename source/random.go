package source

import (
	"math/rand"
	"strings"
)

const (
	DefaultSize = 5
	MinSize     = 1
	MaxSize     = 9
)

// Random generates a grid of independently random cells
type Random struct {
	Width  int
	Height int
	// Rand is used when set, otherwise the package-level generator
	Rand *rand.Rand
}

// Dimensions returns the width and height that will be generated.
// A width outside [MinSize, MaxSize] becomes DefaultSize; a height outside
// that range becomes the width.
func (r Random) Dimensions() (width, height int) {
	width, height = r.Width, r.Height
	if width < MinSize || width > MaxSize {
		width = DefaultSize
	}
	if height < MinSize || height > MaxSize {
		height = width
	}
	return width, height
}

// Input returns Height rows of Width random '0'/'1' cells
func (r Random) Input() (string, error) {
	intn := rand.Intn
	if r.Rand != nil {
		intn = r.Rand.Intn
	}

	width, height := r.Dimensions()
	rows := make([]string, height)
	for y := range rows {
		var b strings.Builder
		b.Grow(width)
		for range width {
			b.WriteByte('0' + byte(intn(2)))
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n"), nil
}
