package leaderboard

import (
	"context"

	"github.com/rescuegrid/highscore/src/domain/shared"
)

// Repository stores the ranked score records.
type Repository interface {
	Insert(ctx context.Context, rec ScoreRecord) error
	List(ctx context.Context, difficulty shared.Difficulty) ([]ScoreRecord, error)
	Count(ctx context.Context) (int, error)
}
