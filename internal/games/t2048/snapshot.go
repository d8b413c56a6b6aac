package t2048

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Seed    int64
	Moves   int // Moves that changed the board
	Merges  int
	Board   [][]int
	MaxTile int
	Status  Status
	Outcome string // Empty while playing
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Seed:    g.opts.Seed,
		Moves:   g.moves,
		Merges:  g.merges,
		Board:   g.board.Rows(),
		MaxTile: g.board.MaxTile(),
		Status:  g.status,
	}
	if g.Over() {
		snap.Outcome = g.Outcome()
	}
	return snap
}
