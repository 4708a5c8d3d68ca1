package clip

import (
	"strings"
	"time"

	"clipseek/internal/transcript"
)

// Frame is one caption frame: a fixed-size group of consecutive words with
// the timing bounds of its first and last word. Frames partition their
// source span exhaustively, in order, with no gaps or overlaps; only the
// final frame may hold fewer than the window size.
type Frame struct {
	Words []string      `json:"words"`
	Start time.Duration `json:"start"`
	End   time.Duration `json:"end"`
}

// Text joins the frame's words with single spaces.
func (f Frame) Text() string { return strings.Join(f.Words, " ") }

// BuildFrames partitions the word sequence into consecutive groups of
// windowSize. Produces ceil(len(words)/windowSize) frames covering every
// word exactly once.
func BuildFrames(words []transcript.Word, windowSize int) []Frame {
	if len(words) == 0 || windowSize < 1 {
		return nil
	}
	frames := make([]Frame, 0, (len(words)+windowSize-1)/windowSize)
	for start := 0; start < len(words); start += windowSize {
		end := start + windowSize
		if end > len(words) {
			end = len(words)
		}
		group := words[start:end]
		texts := make([]string, len(group))
		for i, w := range group {
			texts[i] = w.Text
		}
		frames = append(frames, Frame{
			Words: texts,
			Start: group[0].Start,
			End:   group[len(group)-1].End,
		})
	}
	return frames
}

// FramesFromCues derives frames directly from pre-timed cue boundaries: one
// frame per cue, keeping the source's own grouping and timing. No matching
// or re-chunking is performed on this path.
func FramesFromCues(cues []transcript.Cue) []Frame {
	frames := make([]Frame, 0, len(cues))
	for _, cue := range cues {
		words := strings.Fields(cue.Text)
		if len(words) == 0 {
			continue
		}
		frames = append(frames, Frame{Words: words, Start: cue.Start, End: cue.End})
	}
	return frames
}
