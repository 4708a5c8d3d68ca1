package clip

import (
	"errors"
	"fmt"
	"strings"

	"clipseek/internal/match"
)

// ErrInvalidQuery indicates a query that violates structural constraints.
// Rejected before any matching work begins.
var ErrInvalidQuery = errors.New("invalid query")

// QueryKind discriminates the query variants. Exactly one is active per
// invocation; mutual exclusivity is enforced here at the boundary.
type QueryKind int

const (
	// QueryPhrase is a short phrase of at most match.MaxAnchorWords words.
	QueryPhrase QueryKind = iota + 1
	// QueryText is an arbitrary-length passage, segmented into anchors.
	QueryText
	// QueryCues is an externally timed cue source that skips matching.
	QueryCues
)

func (k QueryKind) String() string {
	switch k {
	case QueryPhrase:
		return "phrase"
	case QueryText:
		return "text"
	case QueryCues:
		return "cues"
	default:
		return "unknown"
	}
}

// Query is the tagged union of search inputs. Construct with PhraseQuery,
// TextQuery, or CuesQuery; the zero value fails validation.
type Query struct {
	kind  QueryKind
	value string
}

// PhraseQuery builds a short-phrase query.
func PhraseQuery(text string) Query { return Query{kind: QueryPhrase, value: text} }

// TextQuery builds a long-text query.
func TextQuery(text string) Query { return Query{kind: QueryText, value: text} }

// CuesQuery builds a query referencing an external cue file.
func CuesQuery(path string) Query { return Query{kind: QueryCues, value: path} }

// Kind reports which variant is active.
func (q Query) Kind() QueryKind { return q.kind }

// Value returns the phrase text, passage text, or cue file path depending on
// the variant.
func (q Query) Value() string { return q.value }

// Validate enforces the structural constraints: a recognized variant, a
// non-empty value, and the phrase word limit.
func (q Query) Validate() error {
	switch q.kind {
	case QueryPhrase:
		tokens := match.Normalize(q.value)
		if len(tokens) == 0 {
			return fmt.Errorf("%w: empty phrase", ErrInvalidQuery)
		}
		if len(tokens) > match.MaxAnchorWords {
			return fmt.Errorf("%w: phrase has %d words, limit is %d (use a text query for longer passages)",
				ErrInvalidQuery, len(tokens), match.MaxAnchorWords)
		}
	case QueryText:
		if len(match.Normalize(q.value)) == 0 {
			return fmt.Errorf("%w: empty text", ErrInvalidQuery)
		}
	case QueryCues:
		if strings.TrimSpace(q.value) == "" {
			return fmt.Errorf("%w: empty cue path", ErrInvalidQuery)
		}
	default:
		return fmt.Errorf("%w: no query variant supplied", ErrInvalidQuery)
	}
	return nil
}

// Options carries the recognized tuning knobs, passed explicitly rather than
// read from globals.
type Options struct {
	// Threshold is the minimum acceptable similarity score, 0-100.
	Threshold int
	// WindowSize is the number of words per subtitle frame, >= 1.
	WindowSize int
	// ClipDuration caps the derived clip length in seconds; 0 disables clip
	// derivation and frames cover the full matched span.
	ClipDuration int
}

// DefaultOptions mirrors the tool's historical defaults: threshold 80,
// word-by-word frames, 30 second clips.
func DefaultOptions() Options {
	return Options{Threshold: 80, WindowSize: 1, ClipDuration: 30}
}

// Validate bounds-checks the options.
func (o Options) Validate() error {
	if o.Threshold < 0 || o.Threshold > 100 {
		return fmt.Errorf("threshold must be between 0 and 100, got %d", o.Threshold)
	}
	if o.WindowSize < 1 {
		return fmt.Errorf("window size must be at least 1, got %d", o.WindowSize)
	}
	if o.ClipDuration < 0 {
		return fmt.Errorf("clip duration must not be negative, got %d", o.ClipDuration)
	}
	return nil
}
