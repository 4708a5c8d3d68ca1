package match

import (
	"errors"
	"testing"

	"clipseek/internal/testsupport"
	"clipseek/internal/transcript"
)

func transcriptFixture(t *testing.T) []transcript.Word {
	t.Helper()
	return testsupport.Words(t,
		"so", 0.0, 0.1,
		"if", 0.1, 0.2,
		"you", 0.2, 0.3,
		"want", 0.3, 0.4,
		"to", 0.4, 0.5,
		"get", 0.5, 0.7,
		"to", 0.7, 0.9,
		"ten", 0.9, 1.1,
		"million", 1.1, 1.4,
		"you", 1.4, 1.5,
		"have", 1.5, 1.6,
		"to", 1.6, 1.7,
		"start", 1.7, 1.9,
		"somewhere", 1.9, 2.3,
	)
}

func TestSearchExactPhrase(t *testing.T) {
	searcher := NewSearcher(nil)
	words := transcriptFixture(t)

	cand, err := searcher.Search(words, Normalize("get to ten million"), 80)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if cand.WindowStart != 5 || cand.WindowEnd != 8 {
		t.Errorf("window = [%d, %d], want [5, 8]", cand.WindowStart, cand.WindowEnd)
	}
	if cand.Score != 100 {
		t.Errorf("score = %d, want 100", cand.Score)
	}
}

func TestSearchFuzzyPhrase(t *testing.T) {
	searcher := NewSearcher(nil)
	words := transcriptFixture(t)

	cand, err := searcher.Search(words, Normalize("get to 10 milion"), 80)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if cand.WindowStart != 5 || cand.WindowEnd != 8 {
		t.Errorf("window = [%d, %d], want [5, 8]", cand.WindowStart, cand.WindowEnd)
	}
	if cand.Score < 80 {
		t.Errorf("score = %d, want >= 80", cand.Score)
	}
}

func TestSearchNoMatch(t *testing.T) {
	searcher := NewSearcher(nil)
	words := transcriptFixture(t)

	_, err := searcher.Search(words, Normalize("completely unrelated phrase"), 80)
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("err = %v, want ErrNoMatch", err)
	}
	var noMatch *NoMatchError
	if !errors.As(err, &noMatch) {
		t.Fatalf("err %T does not unwrap to NoMatchError", err)
	}
	if noMatch.BestScore <= 0 || noMatch.BestScore >= 80 {
		t.Errorf("BestScore = %d, want in (0, 80)", noMatch.BestScore)
	}
}

func TestSearchTieBreaksEarliest(t *testing.T) {
	searcher := NewSearcher(nil)
	words := testsupport.Words(t,
		"again", 0.0, 0.2,
		"and", 0.2, 0.4,
		"again", 0.4, 0.6,
		"and", 0.6, 0.8,
		"again", 0.8, 1.0,
	)

	cand, err := searcher.Search(words, Normalize("again and"), 80)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if cand.WindowStart != 0 {
		t.Errorf("WindowStart = %d, want 0 (earliest of tied windows)", cand.WindowStart)
	}
	if cand.Score != 100 {
		t.Errorf("score = %d, want 100", cand.Score)
	}
}

func TestSearchThresholdMonotonicity(t *testing.T) {
	searcher := NewSearcher(nil)
	words := transcriptFixture(t)
	query := Normalize("get to 10 milion")

	high, err := searcher.Search(words, query, 80)
	if err != nil {
		t.Fatalf("Search at 80: %v", err)
	}
	for _, threshold := range []int{0, 20, 50, high.Score} {
		low, err := searcher.Search(words, query, threshold)
		if err != nil {
			t.Fatalf("Search at %d: %v (accepted at 80 must be accepted lower)", threshold, err)
		}
		if low.WindowStart != high.WindowStart || low.WindowEnd != high.WindowEnd {
			t.Errorf("threshold %d window = [%d, %d], want [%d, %d]",
				threshold, low.WindowStart, low.WindowEnd, high.WindowStart, high.WindowEnd)
		}
	}
}

func TestSearchFromRestrictsWindows(t *testing.T) {
	searcher := NewSearcher(nil)
	words := testsupport.Words(t,
		"alpha", 0.0, 0.2,
		"beta", 0.2, 0.4,
		"gamma", 0.4, 0.6,
		"alpha", 0.6, 0.8,
		"beta", 0.8, 1.0,
	)

	cand, err := searcher.SearchFrom(words, Normalize("alpha beta"), 80, 1)
	if err != nil {
		t.Fatalf("SearchFrom: %v", err)
	}
	if cand.WindowStart != 3 {
		t.Errorf("WindowStart = %d, want 3 (windows before index 1 excluded)", cand.WindowStart)
	}
}

func TestSearchQueryLongerThanTranscript(t *testing.T) {
	searcher := NewSearcher(nil)
	words := testsupport.Words(t, "lone", 0.0, 0.2)

	_, err := searcher.Search(words, Normalize("two words here"), 80)
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("err = %v, want ErrNoMatch when no window fits", err)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	searcher := NewSearcher(nil)
	if _, err := searcher.Search(transcriptFixture(t), nil, 80); err == nil {
		t.Fatal("expected error for empty query")
	}
}
