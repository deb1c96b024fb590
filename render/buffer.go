package render

import (
	"github.com/gdamore/tcell/v2"
)

// BlendMode selects how a Set composites against the existing cell
type BlendMode uint8

const (
	// BlendReplace overwrites the cell
	BlendReplace BlendMode = iota
	// BlendAlpha mixes source over destination by alpha
	BlendAlpha
	// BlendAdd sums channels, clamped; used for glow and particle pileup
	BlendAdd
)

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Buffer is a compositor over a cell grid with dirty tracking
// All scene layers draw here; one flush per frame hands the grid to tcell
type Buffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Size returns current dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets all cells to empty using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set composites a cell with the specified blend mode and alpha
func (b *Buffer) Set(x, y int, mainRune rune, fg, bg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	switch mode {
	case BlendReplace:
		dst.Rune = mainRune
		dst.Fg = fg
		dst.Bg = bg
	case BlendAlpha:
		if mainRune != 0 {
			dst.Rune = mainRune
			dst.Fg = Lerp(dst.Fg, fg, alpha)
		}
		dst.Bg = Lerp(dst.Bg, bg, alpha)
	case BlendAdd:
		if mainRune != 0 {
			dst.Rune = mainRune
			dst.Fg = addChannels(dst.Fg, fg, alpha)
		}
		dst.Bg = addChannels(dst.Bg, bg, alpha)
	}
	b.touched[idx] = true
}

// SetFgOnly writes a rune and foreground, preserving the background
// Text layers use this so chrome floats over the composited scene
func (b *Buffer) SetFgOnly(x, y int, mainRune rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Rune = mainRune
	b.cells[idx].Fg = fg
	b.touched[idx] = true
}

// At returns the cell at x,y for inspection; zero Cell out of bounds
func (b *Buffer) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Flush writes touched cells to the screen and shows the frame
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			idx := row + x
			if !b.touched[idx] {
				continue
			}
			c := b.cells[idx]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(c.Fg.ToTcell()).
				Background(c.Bg.ToTcell())
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}

func addChannels(dst, src RGB, alpha float64) RGB {
	return RGB{
		clamp(float64(dst.R) + float64(src.R)*alpha),
		clamp(float64(dst.G) + float64(src.G)*alpha),
		clamp(float64(dst.B) + float64(src.B)*alpha),
	}
}
