package match

import (
	"errors"
	"fmt"
)

// ErrNoMatch indicates no transcript window met the similarity threshold.
// Not fatal; callers surface it as a user-visible "no match" outcome.
var ErrNoMatch = errors.New("no match found")

// ErrOrderingViolation indicates a long-text search whose end anchor only
// matches before the start anchor. Distinct from ErrNoMatch so callers can
// suggest lowering the threshold or shortening the query.
var ErrOrderingViolation = errors.New("end anchor matches before start anchor")

// NoMatchError wraps ErrNoMatch with the best sub-threshold score observed,
// for diagnostics.
type NoMatchError struct {
	BestScore int
	Threshold int
}

func (e *NoMatchError) Error() string {
	if e.BestScore <= 0 {
		return fmt.Sprintf("no match found (threshold %d)", e.Threshold)
	}
	return fmt.Sprintf("no match found: best window scored %d, below threshold %d", e.BestScore, e.Threshold)
}

func (e *NoMatchError) Unwrap() error { return ErrNoMatch }
