package clip

import (
	"errors"
	"testing"
)

func TestQueryValidate(t *testing.T) {
	tests := []struct {
		name    string
		query   Query
		wantErr bool
	}{
		{"phrase ok", PhraseQuery("get to ten million"), false},
		{"phrase at limit", PhraseQuery("one two three four five"), false},
		{"phrase over limit", PhraseQuery("one two three four five six"), true},
		{"phrase empty", PhraseQuery(""), true},
		{"phrase punctuation only", PhraseQuery("?! ..."), true},
		{"text ok", TextQuery("a much longer passage that spans many words of the transcript"), false},
		{"text empty", TextQuery("   "), true},
		{"cues ok", CuesQuery("captions.srt"), false},
		{"cues empty path", CuesQuery("  "), true},
		{"zero value", Query{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidQuery) {
					t.Fatalf("err = %v, want ErrInvalidQuery", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"defaults", DefaultOptions(), false},
		{"threshold floor", Options{Threshold: 0, WindowSize: 1}, false},
		{"threshold ceiling", Options{Threshold: 100, WindowSize: 1}, false},
		{"threshold negative", Options{Threshold: -1, WindowSize: 1}, true},
		{"threshold over 100", Options{Threshold: 101, WindowSize: 1}, true},
		{"window zero", Options{Threshold: 80, WindowSize: 0}, true},
		{"clip duration zero disables", Options{Threshold: 80, WindowSize: 1, ClipDuration: 0}, false},
		{"clip duration negative", Options{Threshold: 80, WindowSize: 1, ClipDuration: -5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate: %v", err)
			}
		})
	}
}
