package leaderboard

import (
	"context"
	"sync"

	"go.uber.org/atomic"

	"github.com/rescuegrid/highscore/src/domain/leaderboard"
	"github.com/rescuegrid/highscore/src/domain/shared"
)

// MemoryRepository implements leaderboard.Repository using in-memory storage.
type MemoryRepository struct {
	mu      sync.RWMutex
	board   *leaderboard.Board
	evicted atomic.Int64
}

// NewMemoryRepository creates an empty in-memory leaderboard.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		board: leaderboard.NewBoard(),
	}
}

// Insert ranks a record, dropping whatever falls off the bottom.
func (r *MemoryRepository) Insert(ctx context.Context, rec leaderboard.ScoreRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if dropped := r.board.Insert(rec); len(dropped) > 0 {
		r.evicted.Add(int64(len(dropped)))
	}
	return nil
}

// List returns a private, ranked copy of the records matching difficulty.
func (r *MemoryRepository) List(ctx context.Context, difficulty shared.Difficulty) ([]leaderboard.ScoreRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.board.Filter(difficulty), nil
}

// Count returns the number of ranked records.
func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.board.Len(), nil
}

// Evicted returns how many records have been pushed off the board.
func (r *MemoryRepository) Evicted() int64 {
	return r.evicted.Load()
}
