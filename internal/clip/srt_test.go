package clip

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWriteSRT(t *testing.T) {
	frames := []Frame{
		{Words: []string{"get", "to"}, Start: 0, End: 400 * time.Millisecond},
		{Words: []string{"ten", "million"}, Start: 400 * time.Millisecond, End: 900 * time.Millisecond},
	}

	var buf strings.Builder
	if err := WriteSRT(&buf, frames); err != nil {
		t.Fatalf("WriteSRT: %v", err)
	}

	want := "1\n00:00:00,000 --> 00:00:00,400\nget to\n\n" +
		"2\n00:00:00,400 --> 00:00:00,900\nten million\n\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriteSRTEmpty(t *testing.T) {
	var buf strings.Builder
	if err := WriteSRT(&buf, nil); err != nil {
		t.Fatalf("WriteSRT: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestSaveSRT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.srt")
	frames := []Frame{{Words: []string{"hello"}, Start: 0, End: time.Second}}

	if err := SaveSRT(path, frames); err != nil {
		t.Fatalf("SaveSRT: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "00:00:00,000 --> 00:00:01,000") {
		t.Errorf("file content = %q", data)
	}
}
