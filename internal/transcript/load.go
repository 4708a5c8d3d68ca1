package transcript

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"time"
)

type providerWord struct {
	Text  string `json:"text"`
	Start int64  `json:"start"`
	End   int64  `json:"end"`
}

type providerPayload struct {
	ID    string         `json:"id"`
	Text  string         `json:"text"`
	Words []providerWord `json:"words"`
}

type whisperWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type whisperSegment struct {
	Text  string        `json:"text"`
	Start float64       `json:"start"`
	End   float64       `json:"end"`
	Words []whisperWord `json:"words"`
}

type whisperPayload struct {
	Segments []whisperSegment `json:"segments"`
}

// ParseProviderJSON decodes a transcription-provider payload: a flat word
// list with millisecond start/end offsets. The result is validated before it
// is returned.
func ParseProviderJSON(data []byte) (*Transcript, error) {
	var payload providerPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse provider json: %w", err)
	}
	words := make([]Word, 0, len(payload.Words))
	for _, w := range payload.Words {
		text := strings.TrimSpace(w.Text)
		if text == "" {
			continue
		}
		words = append(words, Word{
			Text:  text,
			Start: time.Duration(w.Start) * time.Millisecond,
			End:   time.Duration(w.End) * time.Millisecond,
		})
	}
	if err := Validate(words); err != nil {
		return nil, err
	}
	return &Transcript{Words: words}, nil
}

// ParseWhisperJSON decodes a whisper-style payload: segments carrying
// per-word timings as floating-point seconds. Segments without word timings
// fall back to evenly dividing the segment interval across its words.
func ParseWhisperJSON(data []byte) (*Transcript, error) {
	var payload whisperPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse whisper json: %w", err)
	}
	t := &Transcript{}
	for _, seg := range payload.Segments {
		var words []Word
		if len(seg.Words) > 0 {
			words = make([]Word, 0, len(seg.Words))
			for _, w := range seg.Words {
				text := strings.TrimSpace(w.Word)
				if text == "" {
					continue
				}
				words = append(words, Word{
					Text:  text,
					Start: secondsToDuration(w.Start),
					End:   secondsToDuration(w.End),
				})
			}
		} else {
			words = spreadWords(seg.Text, secondsToDuration(seg.Start), secondsToDuration(seg.End))
		}
		if len(words) == 0 {
			continue
		}
		t.Words = append(t.Words, words...)
		t.Segments = append(t.Segments, NewSegment(words))
	}
	if err := Validate(t.Words); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile reads a transcript JSON file, accepting either the provider word
// list shape or the whisper segment shape.
func LoadFile(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	var probe struct {
		Words    []json.RawMessage `json:"words"`
		Segments []json.RawMessage `json:"segments"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse transcript %s: %w", path, err)
	}
	if len(probe.Segments) > 0 && len(probe.Words) == 0 {
		return ParseWhisperJSON(data)
	}
	return ParseProviderJSON(data)
}

// spreadWords divides an interval evenly across the whitespace-separated
// words of text. Used when a source only carries utterance-level timing.
func spreadWords(text string, start, end time.Duration) []Word {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	if end < start {
		end = start
	}
	step := (end - start) / time.Duration(len(fields))
	words := make([]Word, len(fields))
	for i, field := range fields {
		wordStart := start + step*time.Duration(i)
		wordEnd := wordStart + step
		if i == len(fields)-1 {
			wordEnd = end
		}
		words[i] = Word{Text: field, Start: wordStart, End: wordEnd}
	}
	return words
}

// secondsToDuration rounds to the nearest nanosecond so that decimal second
// values from JSON land on exact durations.
func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}
