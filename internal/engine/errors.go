package engine

import "errors"

var (
	// ErrInvalidScoreData marks structurally malformed score input: a leg
	// outside 1..6, a duplicate leg for one appearance, negative pins, or
	// an appearance credited to a team that is not playing in the match.
	ErrInvalidScoreData = errors.New("invalid score data")

	// ErrIncompleteMatch marks a match that cannot be scored: a roster side
	// with no appearances, or an appearance with fewer than six legs.
	// Missing legs are never treated as zero.
	ErrIncompleteMatch = errors.New("incomplete match")

	// ErrEmptyInput marks a result computation over a match with no
	// appearances at all. Ranking views return empty slices instead.
	ErrEmptyInput = errors.New("no score records")
)
