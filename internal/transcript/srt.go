package transcript

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Cue is one pre-timed subtitle entry from an external SRT source.
type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

// ParseSRT decodes SRT subtitle content into ordered cues. Blocks that do not
// carry a parsable timing line are skipped rather than failing the whole
// file; subtitle files in the wild are frequently sloppy.
func ParseSRT(data []byte) ([]Cue, error) {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimPrefix(content, "\uFEFF")
	blocks := strings.Split(strings.TrimSpace(content), "\n\n")

	cues := make([]Cue, 0, len(blocks))
	for _, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 {
			continue
		}
		idx := 0
		index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err == nil {
			idx = 1
		} else {
			index = len(cues) + 1
		}
		if idx >= len(lines) || !strings.Contains(lines[idx], "-->") {
			continue
		}
		parts := strings.SplitN(lines[idx], "-->", 2)
		start, errStart := ParseSRTTimestamp(parts[0])
		end, errEnd := ParseSRTTimestamp(parts[1])
		if errStart != nil || errEnd != nil {
			continue
		}
		text := strings.TrimSpace(strings.Join(lines[idx+1:], " "))
		if text == "" {
			continue
		}
		cues = append(cues, Cue{Index: index, Start: start, End: end, Text: text})
	}
	if len(cues) == 0 {
		return nil, fmt.Errorf("no cues found in srt content")
	}
	return cues, nil
}

// LoadSRT reads and parses an SRT file.
func LoadSRT(path string) ([]Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}
	cues, err := ParseSRT(data)
	if err != nil {
		return nil, fmt.Errorf("parse srt %s: %w", path, err)
	}
	return cues, nil
}

// FromCues converts cues to a validated transcript, synthesizing per-word
// timing by dividing each cue's interval evenly across its words.
func FromCues(cues []Cue) (*Transcript, error) {
	t := &Transcript{}
	for _, cue := range cues {
		words := spreadWords(cue.Text, cue.Start, cue.End)
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

// ParseSRTTimestamp converts an SRT timing field (HH:MM:SS,mmm) to a
// duration. A period is accepted in place of the comma.
func ParseSRTTimestamp(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	total := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond
	return total, nil
}

// FormatSRTTimestamp renders a duration as an SRT timing field
// (HH:MM:SS,mmm).
func FormatSRTTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second
	millis := d / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
