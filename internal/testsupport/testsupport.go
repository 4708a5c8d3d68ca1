// Package testsupport provides shared fixtures for clipseek tests.
package testsupport

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"clipseek/internal/config"
	"clipseek/internal/transcript"
)

// Words builds a timed word sequence from (text, startSeconds, endSeconds)
// triples supplied as alternating values.
func Words(t testing.TB, entries ...any) []transcript.Word {
	t.Helper()
	if len(entries)%3 != 0 {
		t.Fatalf("Words requires (text, start, end) triples, got %d values", len(entries))
	}
	words := make([]transcript.Word, 0, len(entries)/3)
	for i := 0; i < len(entries); i += 3 {
		text, ok := entries[i].(string)
		if !ok {
			t.Fatalf("Words entry %d: text must be a string", i)
		}
		words = append(words, transcript.Word{
			Text:  text,
			Start: seconds(t, entries[i+1]),
			End:   seconds(t, entries[i+2]),
		})
	}
	return words
}

func seconds(t testing.TB, v any) time.Duration {
	t.Helper()
	switch n := v.(type) {
	case float64:
		return time.Duration(math.Round(n * float64(time.Second)))
	case int:
		return time.Duration(n) * time.Second
	default:
		t.Fatalf("Words timing must be int or float64, got %T", v)
		return 0
	}
}

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CacheDir = filepath.Join(base, "cache")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	return &cfg
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
