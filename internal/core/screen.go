// Package core provides the character buffer shared by the game and the
// terminal front ends. It has no external dependencies (especially no Bubble Tea)
// so game code stays pure and testable.
package core

import (
	"iter"
	"strings"
)

// Cell is one character of the buffer and the tile tone it belongs to.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a fixed-size character buffer, stored row-major.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a blank width×height buffer.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Clear resets every cell to an uncoloured space.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// Set places a rune with the given tone at (x, y).
// Out-of-bounds coordinates are ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if s.inBounds(x, y) {
		s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
	}
}

// GetCell returns the cell at (x, y), or an uncoloured space off the buffer.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blank
	}
	return s.cells[y*s.width+x]
}

// DrawText writes text on row y starting at column x, clipped to the buffer.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	for _, r := range text {
		s.Set(x, y, r, c)
		x++
	}
}

// FillSpan paints w cells of row y, starting at column x, with fill.
func (s *Screen) FillSpan(x, y, w int, fill rune, c Color) {
	for i := range w {
		s.Set(x+i, y, fill, c)
	}
}

// Row returns row y as plain text. Rows off the buffer are blank.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	sb.Grow(s.width)
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Runs yields the maximal runs of equally toned cells in row y, left to right.
func (s *Screen) Runs(y int) iter.Seq2[Color, string] {
	return func(yield func(Color, string) bool) {
		if y < 0 || y >= s.height {
			return
		}
		row := s.cells[y*s.width : (y+1)*s.width]
		for start := 0; start < len(row); {
			tone := row[start].Color
			var sb strings.Builder
			end := start
			for ; end < len(row) && row[end].Color == tone; end++ {
				sb.WriteRune(row[end].Rune)
			}
			if !yield(tone, sb.String()) {
				return
			}
			start = end
		}
	}
}

// String returns the buffer as plain text, rows joined with newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
