package core

// Color is a presentational tone attached to a screen cell.
// The platform layer decides how a tone maps onto terminal styles.
type Color uint8

// Tones used by the board renderer. Each tile value has its own tone;
// ColorTileOther covers empty cells and values past 2048.
const (
	ColorDefault Color = iota
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileOther
)

// TileColor returns the tone for a cell value.
func TileColor(value int) Color {
	switch value {
	case 2:
		return ColorTile2
	case 4:
		return ColorTile4
	case 8:
		return ColorTile8
	case 16:
		return ColorTile16
	case 32:
		return ColorTile32
	case 64:
		return ColorTile64
	case 128:
		return ColorTile128
	case 256:
		return ColorTile256
	case 512:
		return ColorTile512
	case 1024:
		return ColorTile1024
	case 2048:
		return ColorTile2048
	default:
		return ColorTileOther
	}
}
