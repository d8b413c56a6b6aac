// Package t2048 implements the 2048 sliding-tile puzzle: the board, the
// move-resolution engine, the tile spawner and the game session that ties
// them together.
package t2048

import (
	"fmt"
	"strings"
)

// BoardSize is the board dimension used by the game.
const BoardSize = 4

// WinTile is the tile value that wins the game.
const WinTile = 2048

// Pos is a board position. Rows run top-to-bottom, columns left-to-right.
type Pos struct {
	Row int
	Col int
}

// Board is an N×N grid of tile values. Zero marks an empty cell.
type Board struct {
	size  int
	cells []int
}

// NewBoard returns an empty size×size board.
func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]int, size*size),
	}
}

// BoardFromRows builds a board from row slices, top row first.
// The rows must form a square grid.
func BoardFromRows(rows [][]int) (*Board, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("t2048: empty board")
	}
	b := NewBoard(n)
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("t2048: row %d has %d cells, want %d", r, len(row), n)
		}
		for c, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("t2048: negative value %d at (%d, %d)", v, r, c)
			}
			b.cells[r*n+c] = v
		}
	}
	return b, nil
}

// Size returns the board dimension N.
func (b *Board) Size() int {
	return b.size
}

// At returns the value at (row, col).
func (b *Board) At(row, col int) int {
	return b.cells[row*b.size+col]
}

// Set writes a value at (row, col).
func (b *Board) Set(row, col, value int) {
	b.cells[row*b.size+col] = value
}

func (b *Board) index(p Pos) int {
	return p.Row*b.size + p.Col
}

func (b *Board) contains(p Pos) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{size: b.size, cells: make([]int, len(b.cells))}
	copy(c.cells, b.cells)
	return c
}

// Equal reports whether two boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for i, v := range b.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Rows returns the board contents as row slices, top row first.
func (b *Board) Rows() [][]int {
	rows := make([][]int, b.size)
	for r := range b.size {
		rows[r] = make([]int, b.size)
		copy(rows[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return rows
}

// EmptyCells returns the positions of all empty cells in row-major order.
func (b *Board) EmptyCells() []Pos {
	var cells []Pos
	for i, v := range b.cells {
		if v == 0 {
			cells = append(cells, Pos{Row: i / b.size, Col: i % b.size})
		}
	}
	return cells
}

// TileCount returns the number of non-empty cells.
func (b *Board) TileCount() int {
	n := 0
	for _, v := range b.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// Sum returns the total of all tile values.
func (b *Board) Sum() int {
	total := 0
	for _, v := range b.cells {
		total += v
	}
	return total
}

// MaxTile returns the maximum tile value on the board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for _, v := range b.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// String renders the board as space-separated rows, mainly for test output.
func (b *Board) String() string {
	var sb strings.Builder
	for r := range b.size {
		for c := range b.size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%4d", b.At(r, c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
