package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is a single rendered screen cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is a 2D cell grid composed by renderers and flushed to the
// terminal once per frame
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer creates a buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// Resize reallocates the grid; contents are discarded, the next frame
// repaints everything anyway
func (b *Buffer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	b.width = width
	b.height = height
	b.cells = make([]Cell, width*height)
	b.Clear()
}

// Clear resets every cell to a blank default
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Style: tcell.StyleDefault}
	}
}

// Set writes one cell, ignoring out-of-bounds coordinates
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at the given position
func (b *Buffer) Get(x, y int) (Cell, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// SetString writes a horizontal run of cells starting at x,y
func (b *Buffer) SetString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		b.Set(x, y, r, style)
		x++
	}
}

// FlushToScreen pushes the full buffer to the terminal
func (b *Buffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}
