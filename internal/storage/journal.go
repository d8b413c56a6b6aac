package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/games/t2048"
)

// Journal records one session into a Store as it is played.
// A write failure is logged once and disables the journal; the game
// itself carries on.
type Journal struct {
	store  *Store
	gameID int64
	seq    int
	logger *log.Logger
	broken bool
}

// NewJournal starts journaling a session played with opts.
func (s *Store) NewJournal(opts t2048.Options, logger *log.Logger) (*Journal, error) {
	id, err := s.StartGame(opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("journal started", "game", id, "seed", opts.Seed)
	return &Journal{store: s, gameID: id, logger: logger}, nil
}

// ID returns the journaled game ID.
func (j *Journal) ID() int64 {
	return j.gameID
}

// Broken reports whether a write failed and the journal stopped recording.
func (j *Journal) Broken() bool {
	return j.broken
}

// Record appends a command.
func (j *Journal) Record(dir t2048.Direction) {
	if j.broken {
		return
	}
	if err := j.store.AppendMove(j.gameID, j.seq, dir); err != nil {
		j.fail(err)
		return
	}
	j.seq++
}

// Finish stores the final snapshot.
func (j *Journal) Finish(snap t2048.Snapshot) {
	if j.broken {
		return
	}
	if err := j.store.FinishGame(j.gameID, snap); err != nil {
		j.fail(err)
		return
	}
	j.logger.Debug("journal finished", "game", j.gameID, "status", snap.Status, "moves", snap.Moves)
}

func (j *Journal) fail(err error) {
	j.broken = true
	j.logger.Warn("journal disabled", "game", j.gameID, "error", err)
}

var _ t2048.Recorder = (*Journal)(nil)
