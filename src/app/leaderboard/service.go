package leaderboard

import (
	"context"
	"time"

	domain "github.com/rescuegrid/highscore/src/domain/leaderboard"
	"github.com/rescuegrid/highscore/src/domain/shared"
)

type Repository interface {
	domain.Repository
}

// Service coordinates leaderboard submissions and queries.
type Service struct {
	Repo  Repository
	Clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		Repo:  repo,
		Clock: func() time.Time { return time.Now().UTC() },
	}
}

// SubmitCommand carries a raw submission. Nil fields were absent.
type SubmitCommand struct {
	Score      *float64
	Time       *float64
	Difficulty *string
	PlayerName *string
}

type SubmitResult struct {
	Acknowledged bool
}

// Validate checks presence only; values are taken as given.
func (cmd SubmitCommand) Validate() error {
	if cmd.Score == nil {
		return &domain.MissingFieldError{Field: "score"}
	}
	if cmd.Time == nil {
		return &domain.MissingFieldError{Field: "time"}
	}
	if cmd.Difficulty == nil {
		return &domain.MissingFieldError{Field: "difficulty"}
	}
	return nil
}

func (s *Service) Submit(ctx context.Context, cmd SubmitCommand) (SubmitResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitResult{}, err
	}
	rec, err := domain.NewScoreRecord(*cmd.Score, *cmd.Time, shared.Difficulty(*cmd.Difficulty), cmd.PlayerName, s.Clock())
	if err != nil {
		return SubmitResult{}, err
	}
	if err := s.Repo.Insert(ctx, rec); err != nil {
		return SubmitResult{}, err
	}
	return SubmitResult{Acknowledged: true}, nil
}

// ScoresQuery selects a leaderboard view. Use shared.AllDifficulties for
// every record; any other value, including "", is matched as a category.
type ScoresQuery struct {
	Difficulty shared.Difficulty
}

// Scores returns the ranked records for the query, best first.
func (s *Service) Scores(ctx context.Context, query ScoresQuery) ([]domain.ScoreRecord, error) {
	return s.Repo.List(ctx, query.Difficulty)
}

// Count reports how many records are currently ranked.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.Repo.Count(ctx)
}
