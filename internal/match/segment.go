package match

import (
	"fmt"

	"clipseek/internal/transcript"
)

// MaxAnchorWords caps anchor length at the phrase-matching sweet spot.
const MaxAnchorWords = 5

// SpanMatch is a merged long-text match: the start anchor's window start
// through the end anchor's window end. Score is the minimum of the two
// anchor scores; a long excerpt is only as confident as its weakest anchor.
type SpanMatch struct {
	StartAnchor Candidate
	EndAnchor   Candidate
	WindowStart int
	WindowEnd   int
	Score       int
}

// SplitAnchors reduces a long query to a leading and a trailing token chunk,
// each at most MaxAnchorWords long. Inputs of ten or fewer tokens split at
// the midpoint so the anchors never overlap; longer inputs take the first
// and last five tokens. Requires at least two tokens.
func SplitAnchors(text string) (start, end []string, err error) {
	tokens := Normalize(text)
	if len(tokens) < 2 {
		return nil, nil, fmt.Errorf("split anchors: need at least two words, got %d", len(tokens))
	}
	if len(tokens) <= 2*MaxAnchorWords {
		mid := len(tokens) / 2
		startLen := mid
		if startLen > MaxAnchorWords {
			startLen = MaxAnchorWords
		}
		endLen := len(tokens) - mid
		if endLen > MaxAnchorWords {
			endLen = MaxAnchorWords
		}
		return tokens[:startLen], tokens[len(tokens)-endLen:], nil
	}
	return tokens[:MaxAnchorWords], tokens[len(tokens)-MaxAnchorWords:], nil
}

// SearchLong locates a long text excerpt by matching its start and end
// anchors independently and merging the two windows. The end anchor is
// restricted to windows at or after the start anchor's window; when the end
// anchor only matches earlier, the search fails with ErrOrderingViolation
// rather than returning an inverted span.
func (s *Searcher) SearchLong(words []transcript.Word, text string, threshold int) (SpanMatch, error) {
	startQuery, endQuery, err := SplitAnchors(text)
	if err != nil {
		return SpanMatch{}, err
	}

	startCand, err := s.Search(words, startQuery, threshold)
	if err != nil {
		return SpanMatch{}, fmt.Errorf("start anchor: %w", err)
	}

	endCand, err := s.SearchFrom(words, endQuery, threshold, startCand.WindowStart)
	if err != nil {
		// Distinguish "never matches" from "only matches before the start
		// anchor": the latter is an ordering violation, not a plain miss.
		if _, fullErr := s.Search(words, endQuery, threshold); fullErr == nil {
			return SpanMatch{}, fmt.Errorf("end anchor at %d: %w", startCand.WindowStart, ErrOrderingViolation)
		}
		return SpanMatch{}, fmt.Errorf("end anchor: %w", err)
	}

	score := startCand.Score
	if endCand.Score < score {
		score = endCand.Score
	}
	windowEnd := endCand.WindowEnd
	if windowEnd < startCand.WindowEnd {
		windowEnd = startCand.WindowEnd
	}
	return SpanMatch{
		StartAnchor: startCand,
		EndAnchor:   endCand,
		WindowStart: startCand.WindowStart,
		WindowEnd:   windowEnd,
		Score:       score,
	}, nil
}
