package leaderboard

import (
	"fmt"

	"github.com/rescuegrid/highscore/src/domain/shared"
)

// MissingFieldError reports a required submission field that was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// Is lets callers match any missing field against shared.ErrMissingData.
func (e *MissingFieldError) Is(target error) bool {
	return target == shared.ErrMissingData
}
