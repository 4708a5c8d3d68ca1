package match

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// DistanceFunc computes an edit distance between two strings. The default is
// Levenshtein distance; tests substitute simpler functions to pin down the
// scorer's algebraic properties.
type DistanceFunc func(a, b string) int

// Scorer produces similarity scores in [0, 100] between normalized strings.
// The zero value is not usable; construct with NewScorer.
type Scorer struct {
	distance DistanceFunc
}

// NewScorer returns a scorer backed by the provided distance function, or
// Levenshtein distance when nil.
func NewScorer(distance DistanceFunc) *Scorer {
	if distance == nil {
		distance = levenshtein.ComputeDistance
	}
	return &Scorer{distance: distance}
}

// Score compares two phrases and returns the best of three strategies: a
// plain edit-distance ratio, the best aligned-substring ratio, and a
// token-sort ratio. Inputs are normalized before comparison, so scoring is
// case- and punctuation-insensitive. Score(x, x) is always 100 and the
// result is symmetric in its arguments.
func (s *Scorer) Score(a, b string) int {
	na := NormalizeString(a)
	nb := NormalizeString(b)
	best := s.ratio(na, nb)
	if partial := s.partialRatio(na, nb); partial > best {
		best = partial
	}
	if tokenSort := s.tokenSortRatio(na, nb); tokenSort > best {
		best = tokenSort
	}
	return best
}

// ratio is the normalized edit-distance similarity: distance scaled against
// the combined length, so a single edit in a long phrase costs less than one
// in a short phrase.
func (s *Scorer) ratio(a, b string) int {
	if a == b {
		return 100
	}
	la := len([]rune(a))
	lb := len([]rune(b))
	total := la + lb
	if total == 0 {
		return 100
	}
	d := s.distance(a, b)
	if d < 0 {
		d = 0
	}
	if d > total {
		d = total
	}
	return int(float64(100*(total-d))/float64(total) + 0.5)
}

// partialRatio scores the shorter string against every equally long rune
// window of the longer one, returning the best ratio. Catches queries that
// sit inside a longer candidate (or the reverse) with extra words around
// them.
func (s *Scorer) partialRatio(a, b string) int {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		return s.ratio(a, b)
	}
	if len(shorter) == len(longer) {
		return s.ratio(string(shorter), string(longer))
	}
	best := 0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		window := string(longer[i : i+len(shorter)])
		if r := s.ratio(string(shorter), window); r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

// tokenSortRatio compares the two phrases with their tokens sorted, so word
// order differences do not count as edits.
func (s *Scorer) tokenSortRatio(a, b string) int {
	return s.ratio(sortTokens(a), sortTokens(b))
}

func sortTokens(text string) string {
	tokens := strings.Fields(text)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
