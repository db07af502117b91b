package leaderboard

import (
	"cmp"
	"errors"
	"time"

	"github.com/rescuegrid/highscore/src/domain/shared"
)

// ScoreRecord is one submitted game result. Records are handed out by value
// and never modified after creation.
type ScoreRecord struct {
	Score      float64
	Time       float64
	Difficulty shared.Difficulty
	PlayerName string
	Timestamp  time.Time
}

// NewScoreRecord builds a record stamped at createdAt. A nil player name
// falls back to shared.DefaultPlayerName.
func NewScoreRecord(score, elapsed float64, difficulty shared.Difficulty, playerName *string, createdAt time.Time) (ScoreRecord, error) {
	if createdAt.IsZero() {
		return ScoreRecord{}, errors.New("creation time is required")
	}
	name := shared.DefaultPlayerName
	if playerName != nil {
		name = *playerName
	}
	return ScoreRecord{
		Score:      score,
		Time:       elapsed,
		Difficulty: difficulty,
		PlayerName: name,
		Timestamp:  createdAt,
	}, nil
}

// Compare orders records by score descending, then time ascending.
// It returns a negative number when a ranks ahead of b.
func Compare(a, b ScoreRecord) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return cmp.Compare(a.Time, b.Time)
}
