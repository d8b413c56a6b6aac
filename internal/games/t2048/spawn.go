package t2048

// DefaultSpawn4 is the probability that a spawned tile is a 4 rather than a 2.
const DefaultSpawn4 = 0.10

// RNG is the randomness a spawner needs. *math/rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// Spawner places a new tile on the board after an effective move.
type Spawner interface {
	Spawn(b *Board) error
}

// SpawnerFunc adapts a function to the Spawner interface.
type SpawnerFunc func(b *Board) error

// Spawn calls f(b).
func (f SpawnerFunc) Spawn(b *Board) error {
	return f(b)
}

// TileSpawner spawns a 2 or a 4 into a uniformly chosen empty cell.
type TileSpawner struct {
	rng    RNG
	spawn4 float64
}

// NewTileSpawner creates a spawner drawing from rng. spawn4 is the
// probability of placing a 4.
func NewTileSpawner(rng RNG, spawn4 float64) *TileSpawner {
	return &TileSpawner{rng: rng, spawn4: spawn4}
}

// Spawn places one tile. It returns ErrBoardFull if no cell is empty.
func (s *TileSpawner) Spawn(b *Board) error {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return ErrBoardFull
	}

	cell := empty[s.rng.Intn(len(empty))]

	value := 2
	if s.rng.Float64() < s.spawn4 {
		value = 4
	}

	b.Set(cell.Row, cell.Col, value)
	return nil
}
