package match

import "testing"

func TestScoreIdentity(t *testing.T) {
	scorer := NewScorer(nil)
	tests := []string{
		"get to ten million",
		"a",
		"",
		"The QUICK brown fox!",
	}
	for _, text := range tests {
		if got := scorer.Score(text, text); got != 100 {
			t.Errorf("Score(%q, %q) = %d, want 100", text, text, got)
		}
	}
}

func TestScoreSymmetric(t *testing.T) {
	scorer := NewScorer(nil)
	pairs := [][2]string{
		{"get to ten million", "get to 10 milion"},
		{"hello world", "world hello"},
		{"short", "a much longer candidate phrase"},
	}
	for _, pair := range pairs {
		ab := scorer.Score(pair[0], pair[1])
		ba := scorer.Score(pair[1], pair[0])
		if ab != ba {
			t.Errorf("Score(%q, %q) = %d but Score(%q, %q) = %d", pair[0], pair[1], ab, pair[1], pair[0], ba)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	scorer := NewScorer(nil)
	pairs := [][2]string{
		{"completely unrelated phrase", "get to ten million"},
		{"", "something"},
		{"x", "y"},
	}
	for _, pair := range pairs {
		got := scorer.Score(pair[0], pair[1])
		if got < 0 || got > 100 {
			t.Errorf("Score(%q, %q) = %d, outside [0, 100]", pair[0], pair[1], got)
		}
	}
}

func TestScoreCaseAndPunctuationInsensitive(t *testing.T) {
	scorer := NewScorer(nil)
	if got := scorer.Score("Get to ten million!", "get to ten million"); got != 100 {
		t.Errorf("Score with case/punctuation noise = %d, want 100", got)
	}
}

func TestScoreTranscriptionErrorTolerance(t *testing.T) {
	scorer := NewScorer(nil)
	got := scorer.Score("get to ten million", "get to 10 milion")
	if got < 80 {
		t.Errorf("Score(misspelled) = %d, want >= 80", got)
	}
	if got >= 100 {
		t.Errorf("Score(misspelled) = %d, want < 100", got)
	}
}

func TestScoreWordOrderTolerance(t *testing.T) {
	scorer := NewScorer(nil)
	if got := scorer.Score("million ten to get", "get to ten million"); got != 100 {
		t.Errorf("token-sort Score = %d, want 100", got)
	}
}

// TestScoreMonotoneInDistance pins the scorer to a controlled distance
// function and checks that a larger reported distance never raises the
// score.
func TestScoreMonotoneInDistance(t *testing.T) {
	distance := 0
	scorer := NewScorer(func(a, b string) int { return distance })

	// Distinct single-token strings of equal length keep partial and
	// token-sort strategies from overriding the plain ratio.
	a, b := "abcd", "efgh"
	prev := 101
	for _, d := range []int{0, 1, 2, 4, 8} {
		distance = d
		got := scorer.Score(a, b)
		if got > prev {
			t.Errorf("distance %d raised score: %d > %d", d, got, prev)
		}
		prev = got
	}
}
