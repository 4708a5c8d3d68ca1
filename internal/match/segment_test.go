package match

import (
	"errors"
	"reflect"
	"testing"

	"clipseek/internal/testsupport"
)

func TestSplitAnchors(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantStart []string
		wantEnd   []string
		wantErr   bool
	}{
		{
			name:      "two words",
			text:      "alpha omega",
			wantStart: []string{"alpha"},
			wantEnd:   []string{"omega"},
		},
		{
			name:      "odd short input splits at midpoint",
			text:      "one two three four five",
			wantStart: []string{"one", "two"},
			wantEnd:   []string{"three", "four", "five"},
		},
		{
			name:      "ten words splits in half",
			text:      "a b c d e f g h i j",
			wantStart: []string{"a", "b", "c", "d", "e"},
			wantEnd:   []string{"f", "g", "h", "i", "j"},
		},
		{
			name:      "long input takes first and last five",
			text:      "a b c d e f g h i j k l m",
			wantStart: []string{"a", "b", "c", "d", "e"},
			wantEnd:   []string{"i", "j", "k", "l", "m"},
		},
		{
			name:    "single word",
			text:    "alone",
			wantErr: true,
		},
		{
			name:    "empty",
			text:    "",
			wantErr: true,
		},
		{
			name:    "punctuation only",
			text:    "?! ...",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := SplitAnchors(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("SplitAnchors(%q) succeeded, want error", tt.text)
				}
				return
			}
			if err != nil {
				t.Fatalf("SplitAnchors(%q): %v", tt.text, err)
			}
			if !reflect.DeepEqual(start, tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !reflect.DeepEqual(end, tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestSplitAnchorsCapped(t *testing.T) {
	start, end, err := SplitAnchors("a b c d e f g h i j k l m n o p q r s t")
	if err != nil {
		t.Fatalf("SplitAnchors: %v", err)
	}
	if len(start) > MaxAnchorWords || len(end) > MaxAnchorWords {
		t.Errorf("anchor lengths %d/%d exceed cap %d", len(start), len(end), MaxAnchorWords)
	}
}

func TestSearchLong(t *testing.T) {
	searcher := NewSearcher(nil)
	words := testsupport.Words(t,
		"before", 0.0, 0.3,
		"the", 0.3, 0.4,
		"race", 0.4, 0.7,
		"begins", 0.7, 1.0,
		"every", 1.0, 1.3,
		"runner", 1.3, 1.6,
		"checks", 1.6, 1.9,
		"their", 1.9, 2.1,
		"shoes", 2.1, 2.4,
		"twice", 2.4, 2.7,
		"afterwards", 2.7, 3.2,
	)

	span, err := searcher.SearchLong(words, "the race begins every runner checks their shoes", 80)
	if err != nil {
		t.Fatalf("SearchLong: %v", err)
	}
	if span.WindowStart != 1 {
		t.Errorf("WindowStart = %d, want 1", span.WindowStart)
	}
	if span.WindowEnd != 8 {
		t.Errorf("WindowEnd = %d, want 8", span.WindowEnd)
	}
	if span.Score != 100 {
		t.Errorf("score = %d, want 100", span.Score)
	}
}

func TestSearchLongScoreIsWeakestAnchor(t *testing.T) {
	searcher := NewSearcher(nil)
	words := testsupport.Words(t,
		"the", 0.0, 0.2,
		"race", 0.2, 0.5,
		"begins", 0.5, 0.8,
		"every", 0.8, 1.1,
		"runner", 1.1, 1.4,
		"checks", 1.4, 1.7,
		"their", 1.7, 1.9,
		"shoes", 1.9, 2.2,
	)

	// End anchor carries a misspelling so the two anchors score differently.
	span, err := searcher.SearchLong(words, "the race begins every runer checks their shoos", 80)
	if err != nil {
		t.Fatalf("SearchLong: %v", err)
	}
	if span.StartAnchor.Score != 100 {
		t.Errorf("start anchor score = %d, want 100", span.StartAnchor.Score)
	}
	if span.EndAnchor.Score >= 100 {
		t.Errorf("end anchor score = %d, want < 100", span.EndAnchor.Score)
	}
	if span.Score != span.EndAnchor.Score {
		t.Errorf("merged score = %d, want weakest anchor %d", span.Score, span.EndAnchor.Score)
	}
}

func TestSearchLongOrderingViolation(t *testing.T) {
	searcher := NewSearcher(nil)
	words := testsupport.Words(t,
		"omega", 0.0, 0.3,
		"end", 0.3, 0.5,
		"filler", 0.5, 0.8,
		"filler", 0.8, 1.1,
		"alpha", 1.1, 1.4,
		"start", 1.4, 1.7,
	)

	// The trailing anchor appears only before the leading one in the
	// transcript, so merging the two would invert the span.
	_, err := searcher.SearchLong(words, "alpha start omega end", 80)
	if !errors.Is(err, ErrOrderingViolation) {
		t.Fatalf("err = %v, want ErrOrderingViolation", err)
	}
}

func TestSearchLongStartAnchorMiss(t *testing.T) {
	searcher := NewSearcher(nil)
	words := testsupport.Words(t,
		"completely", 0.0, 0.4,
		"different", 0.4, 0.8,
		"material", 0.8, 1.2,
		"entirely", 1.2, 1.6,
	)

	_, err := searcher.SearchLong(words, "xylophone quartz jigsaw vortex", 80)
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("err = %v, want ErrNoMatch", err)
	}
}

func TestSearchLongTooShort(t *testing.T) {
	searcher := NewSearcher(nil)
	words := testsupport.Words(t, "alone", 0.0, 0.3)
	if _, err := searcher.SearchLong(words, "alone", 80); err == nil {
		t.Fatal("expected error for single-word text")
	}
}
