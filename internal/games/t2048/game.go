package t2048

import (
	"fmt"
	"math/rand"
)

// Status is the lifecycle state of a game session.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
	StatusQuit    Status = "quit"
)

// Announcements printed when a session ends.
const (
	AnnounceWin  = "YOU WIN"
	AnnounceLose = "YOU LOSE"
)

// Options configures a game session.
type Options struct {
	Size   int     // Board dimension
	Seed   int64   // RNG seed for deterministic gameplay
	Spawn4 float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// DefaultOptions returns the classic 4×4 setup.
func DefaultOptions() Options {
	return Options{
		Size:   BoardSize,
		Spawn4: DefaultSpawn4,
	}
}

// Recorder observes a session: every applied command, then the final state.
type Recorder interface {
	Record(dir Direction)
	Finish(snap Snapshot)
}

// Game is a single-player 2048 session. It owns the board and lends it to
// the engine and the spawner one call at a time.
type Game struct {
	opts    Options
	rng     *rand.Rand
	spawner Spawner

	board   *Board
	status  Status
	moves   int // Moves that changed the board
	merges  int
	journal []Direction

	recorder Recorder
}

// New creates a session and deals the two opening tiles.
func New(opts Options) *Game {
	if opts.Size <= 0 {
		opts.Size = BoardSize
	}
	g := &Game{opts: opts}
	g.Reset()
	return g
}

// Reset restarts the session from the configured seed.
func (g *Game) Reset() {
	g.rng = rand.New(rand.NewSource(g.opts.Seed))
	g.spawner = NewTileSpawner(g.rng, g.opts.Spawn4)
	g.board = NewBoard(g.opts.Size)
	g.status = StatusPlaying
	g.moves = 0
	g.merges = 0
	g.journal = nil

	// An empty board always has room for the opening tiles
	for range 2 {
		_ = g.spawner.Spawn(g.board)
	}
	g.refreshStatus()
}

// Attach sets the recorder notified of commands and of the session end.
func (g *Game) Attach(r Recorder) {
	g.recorder = r
}

// Move applies one player command. DirQuit ends the session; a movement
// direction runs the engine and spawns a tile if the board changed.
// Commands after the session has ended are ignored.
func (g *Game) Move(dir Direction) (bool, error) {
	if g.status != StatusPlaying {
		return false, nil
	}

	if dir == DirQuit {
		g.record(dir)
		g.status = StatusQuit
		g.finish()
		return false, nil
	}

	res, err := update(g.board, dir, g.spawner)
	if err != nil {
		return false, fmt.Errorf("t2048: move %d: %w", len(g.journal)+1, err)
	}
	g.record(dir)

	if res.Changed {
		g.moves++
		g.merges += len(res.Merges)
	}
	g.refreshStatus()
	if g.Over() {
		g.finish()
	}

	return res.Changed, nil
}

func (g *Game) record(dir Direction) {
	g.journal = append(g.journal, dir)
	if g.recorder != nil {
		g.recorder.Record(dir)
	}
}

func (g *Game) finish() {
	if g.recorder != nil {
		g.recorder.Finish(g.Snapshot())
	}
}

// refreshStatus applies the end-of-game checks.
func (g *Game) refreshStatus() {
	switch {
	case IsWon(g.board):
		g.status = StatusWon
	case !HasLegalMove(g.board):
		g.status = StatusLost
	}
}

// Status returns the session state.
func (g *Game) Status() Status {
	return g.status
}

// Over reports whether the session has ended.
func (g *Game) Over() bool {
	return g.status != StatusPlaying
}

// Outcome returns the end-of-game announcement. A quit session is
// announced the same way as any other: by whether the board is won.
func (g *Game) Outcome() string {
	if IsWon(g.board) {
		return AnnounceWin
	}
	return AnnounceLose
}

// Board returns a copy of the current board.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// Seed returns the RNG seed of the session.
func (g *Game) Seed() int64 {
	return g.opts.Seed
}

// Options returns the session options.
func (g *Game) Options() Options {
	return g.opts
}

// Moves returns the number of moves that changed the board.
func (g *Game) Moves() int {
	return g.moves
}

// Journal returns every command applied so far, no-op moves included.
func (g *Game) Journal() []Direction {
	out := make([]Direction, len(g.journal))
	copy(out, g.journal)
	return out
}

// Replay rebuilds a session by applying dirs to a fresh game with opts.
// Given the same seed and commands it reproduces the played board exactly.
func Replay(opts Options, dirs []Direction) (*Game, error) {
	g := New(opts)
	for _, d := range dirs {
		if g.Over() {
			break
		}
		if _, err := g.Move(d); err != nil {
			return nil, err
		}
	}
	return g, nil
}
