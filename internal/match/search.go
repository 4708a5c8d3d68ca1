package match

import (
	"fmt"
	"strings"

	"clipseek/internal/transcript"
)

// Candidate is a scored transcript window. Token indices are inclusive.
type Candidate struct {
	WindowStart int
	WindowEnd   int
	Score       int
}

// Searcher slides fixed-size windows over a transcript and retains the
// single best-scoring window at or above a threshold.
type Searcher struct {
	scorer *Scorer
}

// NewSearcher returns a searcher using the provided scorer, or a default
// Levenshtein-backed scorer when nil.
func NewSearcher(scorer *Scorer) *Searcher {
	if scorer == nil {
		scorer = NewScorer(nil)
	}
	return &Searcher{scorer: scorer}
}

// Scorer exposes the underlying scorer for callers that score outside a
// window scan.
func (s *Searcher) Scorer() *Scorer { return s.scorer }

// Search scans every window of len(query) transcript words and returns the
// highest-scoring one meeting threshold. The scan is exhaustive; a tie on
// the maximum score resolves to the earliest window. Returns a *NoMatchError
// (wrapping ErrNoMatch) carrying the best sub-threshold score when nothing
// qualifies.
func (s *Searcher) Search(words []transcript.Word, query []string, threshold int) (Candidate, error) {
	return s.SearchFrom(words, query, threshold, 0)
}

// SearchFrom behaves like Search but only considers windows starting at or
// after the given word index. Used by long-text anchoring to enforce that an
// excerpt cannot end before it begins.
func (s *Searcher) SearchFrom(words []transcript.Word, query []string, threshold int, from int) (Candidate, error) {
	if len(query) == 0 {
		return Candidate{}, fmt.Errorf("search: empty query")
	}
	if from < 0 {
		from = 0
	}
	window := len(query)
	queryText := strings.Join(query, " ")

	normalized := make([]string, len(words))
	for i, w := range words {
		normalized[i] = NormalizeString(w.Text)
	}

	best := Candidate{WindowStart: -1, Score: -1}
	for start := from; start+window <= len(words); start++ {
		windowText := strings.Join(normalized[start:start+window], " ")
		score := s.scorer.Score(windowText, queryText)
		if score > best.Score {
			best = Candidate{
				WindowStart: start,
				WindowEnd:   start + window - 1,
				Score:       score,
			}
		}
	}
	if best.WindowStart < 0 {
		return Candidate{}, &NoMatchError{Threshold: threshold}
	}
	if best.Score < threshold {
		return Candidate{}, &NoMatchError{BestScore: best.Score, Threshold: threshold}
	}
	return best, nil
}
