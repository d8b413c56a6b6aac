package t2048

import (
	"math/rand"
	"testing"
)

// randomBoard fills a size×size board with empty cells and small powers of two.
func randomBoard(rng *rand.Rand, size int) *Board {
	b := NewBoard(size)
	for r := range size {
		for c := range size {
			if rng.Intn(3) == 0 {
				continue
			}
			b.Set(r, c, 1<<(1+rng.Intn(5)))
		}
	}
	return b
}

// slideLine is the compact/merge/re-compact formulation of a move, applied to
// a line whose first element is the edge tiles slide toward.
func slideLine(line []int) []int {
	result := make([]int, len(line))
	writePos := 0
	merged := false

	for _, v := range line {
		if v == 0 {
			continue
		}
		if writePos > 0 && !merged && result[writePos-1] == v {
			result[writePos-1] *= 2
			merged = true
			continue
		}
		result[writePos] = v
		writePos++
		merged = false
	}
	return result
}

// referenceSlide applies slideLine to every row or column of b in dir.
func referenceSlide(b *Board, dir Direction) *Board {
	n := b.Size()
	out := NewBoard(n)
	dy, dx := dir.Delta()

	for k := range n {
		// Positions of line k, starting at the edge tiles move toward
		line := make([]Pos, n)
		for i := range n {
			switch {
			case dx < 0:
				line[i] = Pos{k, i}
			case dx > 0:
				line[i] = Pos{k, n - 1 - i}
			case dy < 0:
				line[i] = Pos{i, k}
			default:
				line[i] = Pos{n - 1 - i, k}
			}
		}

		values := make([]int, n)
		for i, p := range line {
			values[i] = b.At(p.Row, p.Col)
		}
		for i, v := range slideLine(values) {
			out.Set(line[i].Row, line[i].Col, v)
		}
	}
	return out
}

func mirrorColumns(b *Board) *Board {
	n := b.Size()
	out := NewBoard(n)
	for r := range n {
		for c := range n {
			out.Set(r, n-1-c, b.At(r, c))
		}
	}
	return out
}

func mirrorRows(b *Board) *Board {
	n := b.Size()
	out := NewBoard(n)
	for r := range n {
		for c := range n {
			out.Set(n-1-r, c, b.At(r, c))
		}
	}
	return out
}

func mustSlide(t *testing.T, b *Board, dir Direction) MoveResult {
	t.Helper()
	res, err := Slide(b, dir)
	if err != nil {
		t.Fatalf("Slide(%s): %v", dir, err)
	}
	return res
}

func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

const propertyRounds = 500

func TestSlideMatchesCompactMerge(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range propertyRounds {
		for _, size := range []int{2, 4, 5} {
			b := randomBoard(rng, size)
			for _, dir := range MoveDirections {
				got := b.Clone()
				mustSlide(t, got, dir)
				if want := referenceSlide(b, dir); !got.Equal(want) {
					t.Fatalf("Slide(%s) of\n%vgot\n%vwant\n%v", dir, b, got, want)
				}
			}
		}
	}
}

func TestSlideIsQuiescent(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for range propertyRounds {
		b := randomBoard(rng, BoardSize)
		for _, dir := range MoveDirections {
			once := b.Clone()
			mustSlide(t, once, dir)

			twice := once.Clone()
			if res := mustSlide(t, twice, dir); res.Changed {
				// Pairs that only met during the first move may merge now,
				// but nothing may move without a merge.
				if len(res.Merges) == 0 {
					t.Fatalf("second %s slide moved tiles without merging:\n%v", dir, once)
				}
			}
		}
	}
}

func TestSlideFinalSweepIsNoOp(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range propertyRounds {
		b := randomBoard(rng, BoardSize)
		for _, dir := range MoveDirections {
			got := b.Clone()
			res := mustSlide(t, got, dir)
			if res.Passes < 1 {
				t.Fatalf("Slide(%s) reported %d passes", dir, res.Passes)
			}
			if !res.Changed && !got.Equal(b) {
				t.Fatalf("Slide(%s) reported no change but modified the board", dir)
			}
			if res.Changed && got.Equal(b) {
				t.Fatalf("Slide(%s) reported a change but the board is identical", dir)
			}
		}
	}
}

func TestSlideConservesTiles(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for range propertyRounds {
		b := randomBoard(rng, BoardSize)
		for _, dir := range MoveDirections {
			got := b.Clone()
			res := mustSlide(t, got, dir)

			if got.Sum() != b.Sum() {
				t.Fatalf("Slide(%s) changed the tile sum from %d to %d", dir, b.Sum(), got.Sum())
			}
			if want := b.TileCount() - len(res.Merges); got.TileCount() != want {
				t.Fatalf("Slide(%s) left %d tiles, want %d", dir, got.TileCount(), want)
			}
		}
	}
}

func TestUpdateSpawnsOneTile(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	spawner := NewTileSpawner(rand.New(rand.NewSource(6)), DefaultSpawn4)

	for range propertyRounds {
		b := randomBoard(rng, BoardSize)
		for _, dir := range MoveDirections {
			slid := b.Clone()
			res := mustSlide(t, slid, dir)

			got := b.Clone()
			changed, err := Update(got, dir, spawner)
			if err != nil {
				t.Fatalf("Update(%s): %v", dir, err)
			}
			if changed != res.Changed {
				t.Fatalf("Update(%s) changed = %v, Slide said %v", dir, changed, res.Changed)
			}
			if !changed {
				if !got.Equal(b) {
					t.Fatalf("no-op Update(%s) modified the board", dir)
				}
				continue
			}

			if got.TileCount() != slid.TileCount()+1 {
				t.Fatalf("Update(%s) should add exactly one tile", dir)
			}
			if added := got.Sum() - slid.Sum(); added != 2 && added != 4 {
				t.Fatalf("Update(%s) spawned value %d", dir, added)
			}
		}
	}
}

func TestValuesStayPowersOfTwo(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range propertyRounds {
		b := randomBoard(rng, BoardSize)
		for _, dir := range MoveDirections {
			got := b.Clone()
			mustSlide(t, got, dir)
			for _, row := range got.Rows() {
				for _, v := range row {
					if v != 0 && !isPowerOfTwo(v) {
						t.Fatalf("Slide(%s) produced %d", dir, v)
					}
				}
			}
		}
	}
}

func TestOneMergePerTilePerMove(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for range propertyRounds {
		b := randomBoard(rng, BoardSize)
		for _, dir := range MoveDirections {
			res := mustSlide(t, b.Clone(), dir)
			seen := make(map[Pos]bool)
			for _, p := range res.Merges {
				if seen[p] {
					t.Fatalf("Slide(%s) merged into %v twice:\n%v", dir, p, b)
				}
				seen[p] = true
			}
		}
	}
}

func TestDirectionSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for range propertyRounds {
		b := randomBoard(rng, BoardSize)

		left := mirrorColumns(b)
		mustSlide(t, left, DirLeft)
		right := b.Clone()
		mustSlide(t, right, DirRight)
		if !left.Equal(mirrorColumns(right)) {
			t.Fatalf("left/right symmetry broken for\n%v", b)
		}

		up := mirrorRows(b)
		mustSlide(t, up, DirUp)
		down := b.Clone()
		mustSlide(t, down, DirDown)
		if !up.Equal(mirrorRows(down)) {
			t.Fatalf("up/down symmetry broken for\n%v", b)
		}
	}
}

func TestHasLegalMoveMatchesEngine(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for range propertyRounds * 4 {
		// Dense boards so stalemates actually occur
		b := NewBoard(BoardSize)
		for r := range BoardSize {
			for c := range BoardSize {
				if rng.Intn(20) != 0 {
					b.Set(r, c, 1<<(1+rng.Intn(4)))
				}
			}
		}

		anyChange := false
		for _, dir := range MoveDirections {
			if mustSlide(t, b.Clone(), dir).Changed {
				anyChange = true
			}
		}
		if got := HasLegalMove(b); got != anyChange {
			t.Fatalf("HasLegalMove = %v, engine says %v for\n%v", got, anyChange, b)
		}
	}
}
