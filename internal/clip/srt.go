package clip

import (
	"fmt"
	"io"
	"os"

	"clipseek/internal/transcript"
)

// WriteSRT renders frames as SRT cues for downstream burn-in tooling. One
// cue per frame, numbered from 1.
func WriteSRT(w io.Writer, frames []Frame) error {
	for i, frame := range frames {
		_, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n",
			i+1,
			transcript.FormatSRTTimestamp(frame.Start),
			transcript.FormatSRTTimestamp(frame.End),
			frame.Text(),
		)
		if err != nil {
			return fmt.Errorf("write srt cue %d: %w", i+1, err)
		}
	}
	return nil
}

// SaveSRT writes frames to an SRT file, creating or truncating it.
func SaveSRT(path string, frames []Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create srt %s: %w", path, err)
	}
	if err := WriteSRT(file, frames); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close srt %s: %w", path, err)
	}
	return nil
}
