package t2048

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDirection is returned when a non-movement direction reaches the engine.
	ErrInvalidDirection = errors.New("t2048: not a movement direction")

	// ErrBoardFull is returned when a tile is spawned onto a board with no empty cell.
	ErrBoardFull = errors.New("t2048: no empty cell to spawn into")
)

// MoveResult describes what a slide did to the board.
type MoveResult struct {
	Changed bool
	Merges  []Pos // Cells where a merged tile landed, in merge order
	Passes  int   // Sweeps until quiescence, including the final no-op sweep
}

// Slide moves every tile on b one step at a time in dir until a full sweep
// changes nothing. A cell that received a merged tile is locked for the
// rest of the call, so each tile merges at most once per move.
// The board is modified in place; no tile is spawned.
func Slide(b *Board, dir Direction) (MoveResult, error) {
	if !dir.IsMove() {
		return MoveResult{}, fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}

	dy, dx := dir.Delta()
	locked := make([]bool, len(b.cells))
	var res MoveResult

	for {
		changes := 0
		for p := range dir.Traversal(b.size) {
			from := b.index(p)
			v := b.cells[from]
			if v == 0 {
				continue
			}

			q := Pos{Row: p.Row + dy, Col: p.Col + dx}
			if !b.contains(q) {
				continue
			}
			to := b.index(q)

			switch w := b.cells[to]; {
			case w == 0:
				b.cells[to] = v
				b.cells[from] = 0
				changes++
			case w == v && !locked[from] && !locked[to]:
				b.cells[to] = v * 2
				b.cells[from] = 0
				locked[to] = true
				res.Merges = append(res.Merges, q)
				changes++
			}
		}

		res.Passes++
		if changes == 0 {
			return res, nil
		}
		res.Changed = true
	}
}

// Update applies a move and, if the board changed, spawns exactly one tile.
// It reports whether the move changed the board.
func Update(b *Board, dir Direction, sp Spawner) (bool, error) {
	res, err := update(b, dir, sp)
	return res.Changed, err
}

func update(b *Board, dir Direction, sp Spawner) (MoveResult, error) {
	res, err := Slide(b, dir)
	if err != nil {
		return res, err
	}
	if !res.Changed {
		return res, nil
	}
	if err := sp.Spawn(b); err != nil {
		return res, fmt.Errorf("t2048: spawn after %s: %w", dir, err)
	}
	return res, nil
}

// IsWon returns true if any tile has reached WinTile.
func IsWon(b *Board) bool {
	return b.MaxTile() >= WinTile
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(b *Board) bool {
	for _, v := range b.cells {
		if v == 0 {
			return true
		}
	}
	return false
}

// HasPossibleMerge returns true if two orthogonally adjacent tiles hold the same value.
func HasPossibleMerge(b *Board) bool {
	n := b.size
	for r := range n {
		for c := range n {
			v := b.At(r, c)
			if v == 0 {
				continue
			}
			if c < n-1 && b.At(r, c+1) == v {
				return true
			}
			if r < n-1 && b.At(r+1, c) == v {
				return true
			}
		}
	}
	return false
}

// HasLegalMove returns true if some direction would change the board.
func HasLegalMove(b *Board) bool {
	return HasEmptyCell(b) || HasPossibleMerge(b)
}
