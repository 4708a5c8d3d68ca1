package clip

import (
	"time"

	"clipseek/internal/transcript"
	"clipseek/internal/youtube"
)

// Match is a resolved search result: the matched transcript text, its
// confidence score, absolute media timestamps, and a timestamped watch link.
type Match struct {
	Text  string        `json:"text"`
	Score int           `json:"score"`
	Start time.Duration `json:"start"`
	End   time.Duration `json:"end"`
	URL   string        `json:"url,omitempty"`
}

// resolveSpan projects an inclusive token span onto absolute timestamps and
// a display link. Pure projection; no searching happens here.
func resolveSpan(words []transcript.Word, windowStart, windowEnd, score int, videoID string) Match {
	span := words[windowStart : windowEnd+1]
	m := Match{
		Text:  transcript.Text(span),
		Score: score,
		Start: span[0].Start,
		End:   span[len(span)-1].End,
	}
	if videoID != "" {
		m.URL = youtube.WatchURL(videoID, m.Start)
	}
	return m
}
