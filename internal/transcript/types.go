package transcript

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformed indicates a transcript that violates the ordering invariant.
// It is fatal to the invocation that supplied the transcript and is never
// retried.
var ErrMalformed = errors.New("malformed transcript")

// Word is the smallest unit of timed transcript data. Immutable once created.
type Word struct {
	Text  string        `json:"text"`
	Start time.Duration `json:"start"`
	End   time.Duration `json:"end"`
}

// Segment is a contiguous run of words representing a sentence or utterance
// as emitted by the transcription provider. Start and End equal the bounds of
// the first and last word.
type Segment struct {
	Words []Word        `json:"words"`
	Start time.Duration `json:"start"`
	End   time.Duration `json:"end"`
}

// Transcript holds the full timed word sequence for one media source.
type Transcript struct {
	VideoID  string    `json:"video_id,omitempty"`
	Words    []Word    `json:"words"`
	Segments []Segment `json:"segments,omitempty"`
}

// Text joins the raw word texts with single spaces.
func Text(words []Word) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if trimmed := strings.TrimSpace(w.Text); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}

// Validate checks the ordering invariant over the word sequence: start times
// monotonically non-decreasing and end >= start for every word. Returns an
// error wrapping ErrMalformed naming the first offending index.
func Validate(words []Word) error {
	var prev time.Duration
	for i, w := range words {
		if w.End < w.Start {
			return fmt.Errorf("%w: word %d (%q) ends at %s before it starts at %s",
				ErrMalformed, i, w.Text, w.End, w.Start)
		}
		if w.Start < prev {
			return fmt.Errorf("%w: word %d (%q) starts at %s before preceding word at %s",
				ErrMalformed, i, w.Text, w.Start, prev)
		}
		prev = w.Start
	}
	return nil
}

// NewSegment builds a segment over the provided words, deriving its bounds
// from the first and last word. Returns a zero segment for empty input.
func NewSegment(words []Word) Segment {
	if len(words) == 0 {
		return Segment{}
	}
	return Segment{
		Words: words,
		Start: words[0].Start,
		End:   words[len(words)-1].End,
	}
}
