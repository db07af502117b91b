package shared

import "golang.org/x/text/cases"

// DefaultPlayerName is recorded when a submission carries no player name.
const DefaultPlayerName = "Anonymous"

// AllDifficulties is the query sentinel that disables filtering.
const AllDifficulties Difficulty = "all"

// Difficulty is a free-text category label partitioning leaderboards.
type Difficulty string

// Matches compares two labels case-insensitively using Unicode case folding.
func (d Difficulty) Matches(other Difficulty) bool {
	return fold(string(d)) == fold(string(other))
}

// IsAll reports whether d is the "all" sentinel. A blank label is an
// ordinary category.
func (d Difficulty) IsAll() bool {
	return d.Matches(AllDifficulties)
}

// Casers keep per-call state, so a fresh one is built each time.
func fold(s string) string {
	return cases.Fold().String(s)
}
