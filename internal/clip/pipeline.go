package clip

import (
	"fmt"
	"time"

	"clipseek/internal/match"
	"clipseek/internal/transcript"
)

// Source is the timed input a query runs against: a word transcript for
// matching queries, or pre-timed cues for the bypass path.
type Source struct {
	VideoID string
	Words   []transcript.Word
	Cues    []transcript.Cue
}

// Result is the outcome of one query invocation. Match is nil for cue
// sources, which carry no score or span of their own. ClipStart/ClipEnd
// bound the derived clip window; they equal the match span when clip
// derivation is disabled.
type Result struct {
	Match     *Match        `json:"match,omitempty"`
	ClipStart time.Duration `json:"clip_start"`
	ClipEnd   time.Duration `json:"clip_end"`
	Frames    []Frame       `json:"frames"`
}

// Engine runs queries against transcripts. Stateless between calls; safe for
// reuse across invocations.
type Engine struct {
	searcher *match.Searcher
	opts     Options
}

// NewEngine validates the options and builds an engine. A nil scorer selects
// the default edit-distance scorer.
func NewEngine(opts Options, scorer *match.Scorer) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Engine{searcher: match.NewSearcher(scorer), opts: opts}, nil
}

// Run dispatches the query variant once and executes the pipeline: validate,
// search (unless bypassed), resolve timestamps, build frames.
func (e *Engine) Run(src Source, q Query) (*Result, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	if q.Kind() == QueryCues {
		frames := FramesFromCues(src.Cues)
		if len(frames) == 0 {
			return nil, fmt.Errorf("%w: cue source %s holds no usable cues", ErrInvalidQuery, q.Value())
		}
		return &Result{
			ClipStart: frames[0].Start,
			ClipEnd:   frames[len(frames)-1].End,
			Frames:    frames,
		}, nil
	}

	if err := transcript.Validate(src.Words); err != nil {
		return nil, err
	}

	windowStart, windowEnd, score, err := e.locate(src.Words, q)
	if err != nil {
		return nil, err
	}

	m := resolveSpan(src.Words, windowStart, windowEnd, score, src.VideoID)
	clipStart, clipEnd := e.clipWindow(m)
	frames := BuildFrames(clipSpan(src.Words, windowStart, windowEnd, clipEnd), e.opts.WindowSize)

	return &Result{
		Match:     &m,
		ClipStart: clipStart,
		ClipEnd:   clipEnd,
		Frames:    frames,
	}, nil
}

// locate runs the matching strategy for the query variant and returns the
// winning inclusive token span with its score.
func (e *Engine) locate(words []transcript.Word, q Query) (int, int, int, error) {
	switch q.Kind() {
	case QueryPhrase:
		cand, err := e.searcher.Search(words, match.Normalize(q.Value()), e.opts.Threshold)
		if err != nil {
			return 0, 0, 0, err
		}
		return cand.WindowStart, cand.WindowEnd, cand.Score, nil
	case QueryText:
		tokens := match.Normalize(q.Value())
		// Short passages fit in a single window; anchoring would only split
		// them into fragments of themselves.
		if len(tokens) <= match.MaxAnchorWords {
			cand, err := e.searcher.Search(words, tokens, e.opts.Threshold)
			if err != nil {
				return 0, 0, 0, err
			}
			return cand.WindowStart, cand.WindowEnd, cand.Score, nil
		}
		span, err := e.searcher.SearchLong(words, q.Value(), e.opts.Threshold)
		if err != nil {
			return 0, 0, 0, err
		}
		return span.WindowStart, span.WindowEnd, span.Score, nil
	default:
		return 0, 0, 0, fmt.Errorf("%w: variant %s cannot be located", ErrInvalidQuery, q.Kind())
	}
}

// clipWindow bounds the clip derived from a match. The clip never extends
// past the match span; a zero ClipDuration disables capping.
func (e *Engine) clipWindow(m Match) (time.Duration, time.Duration) {
	if e.opts.ClipDuration <= 0 {
		return m.Start, m.End
	}
	end := m.Start + time.Duration(e.opts.ClipDuration)*time.Second
	if end > m.End {
		end = m.End
	}
	return m.Start, end
}

// clipSpan trims the matched span's words to those starting inside the clip
// window.
func clipSpan(words []transcript.Word, windowStart, windowEnd int, clipEnd time.Duration) []transcript.Word {
	span := words[windowStart : windowEnd+1]
	for len(span) > 0 && span[len(span)-1].Start > clipEnd {
		span = span[:len(span)-1]
	}
	return span
}
