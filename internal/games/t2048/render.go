package t2048

import (
	"strconv"

	"github.com/vovakirdan/term2048/internal/core"
)

// CellWidth is the width of each rendered cell in columns.
const CellWidth = 5

// ScreenSize returns the screen dimensions needed to draw a size×size board.
func ScreenSize(size int) (w, h int) {
	return size * CellWidth, size
}

// RenderBoard draws b into dst, one row per board row. Each value is centred
// in a CellWidth-wide field tagged with the value's tile tone; empty cells
// are left blank.
func RenderBoard(b *Board, dst *core.Screen) {
	for r := range b.size {
		for c := range b.size {
			val := b.At(r, c)
			tone := core.TileColor(val)
			x := c * CellWidth

			dst.FillSpan(x, r, CellWidth, ' ', tone)
			if val == 0 {
				continue
			}

			valStr := strconv.Itoa(val)
			if len(valStr) > CellWidth {
				valStr = valStr[:CellWidth]
			}
			padLeft := (CellWidth - len(valStr)) / 2
			dst.DrawText(x+padLeft, r, valStr, tone)
		}
	}
}

// Render draws the current board into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	RenderBoard(g.board, dst)
}

// Controls returns the control hints for the given key letters.
func Controls(left, right, up, down, quit string) string {
	return left + ": left | " + right + ": right | " + up + ": up | " + down + ": down | " + quit + ": quit"
}
