package t2048

import "iter"

// Direction is a player command. Only the four movement directions reach
// the move engine; DirQuit ends the session.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
	DirQuit
)

// MoveDirections lists the four movement directions.
var MoveDirections = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirQuit:
		return "quit"
	default:
		return "none"
	}
}

// ParseDirectionName is the inverse of String.
func ParseDirectionName(name string) (Direction, bool) {
	for _, d := range [...]Direction{DirLeft, DirRight, DirUp, DirDown, DirQuit} {
		if d.String() == name {
			return d, true
		}
	}
	return DirNone, false
}

// IsMove reports whether d is one of the four movement directions.
func (d Direction) IsMove() bool {
	return d >= DirLeft && d <= DirDown
}

// Delta returns the unit step (dy, dx) a tile takes when moving in d.
func (d Direction) Delta() (dy, dx int) {
	switch d {
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	default:
		return 0, 0
	}
}

// Traversal yields every position of an n×n board, both axes ordered from
// the edge tiles move toward. A tile shifted one step in d is therefore
// never visited again in the same sweep.
func (d Direction) Traversal(n int) iter.Seq[Pos] {
	dy, dx := d.Delta()
	return func(yield func(Pos) bool) {
		for i := range n {
			row := i
			if dy > 0 {
				row = n - 1 - i
			}
			for j := range n {
				col := j
				if dx > 0 {
					col = n - 1 - j
				}
				if !yield(Pos{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}
