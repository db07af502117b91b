package leaderboard

import (
	"slices"

	"github.com/rescuegrid/highscore/src/domain/shared"
)

// MaxRecords caps how many records a Board retains.
const MaxRecords = 50

// Board is a bounded collection kept in Compare order. It is not safe for
// concurrent use; repositories guard it.
type Board struct {
	records []ScoreRecord
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{records: make([]ScoreRecord, 0, MaxRecords+1)}
}

// Insert adds rec, re-sorts, and drops the worst-ranked records beyond
// MaxRecords. The dropped records are returned, worst last.
func (b *Board) Insert(rec ScoreRecord) []ScoreRecord {
	b.records = append(b.records, rec)
	slices.SortStableFunc(b.records, Compare)

	if len(b.records) <= MaxRecords {
		return nil
	}
	evicted := slices.Clone(b.records[MaxRecords:])
	clear(b.records[MaxRecords:])
	b.records = b.records[:MaxRecords]
	return evicted
}

// Records returns a copy of every record in rank order.
func (b *Board) Records() []ScoreRecord {
	return slices.Clone(b.records)
}

// Filter returns a private copy of the records matching difficulty, sorted by
// Compare. The board's own order is left untouched.
func (b *Board) Filter(difficulty shared.Difficulty) []ScoreRecord {
	all := difficulty.IsAll()
	out := make([]ScoreRecord, 0, len(b.records))
	for _, rec := range b.records {
		if all || rec.Difficulty.Matches(difficulty) {
			out = append(out, rec)
		}
	}
	slices.SortStableFunc(out, Compare)
	return out
}

// Len reports how many records the board holds.
func (b *Board) Len() int {
	return len(b.records)
}
