// Package fuzzy finds the closest known option id for an unknown one.
// Used by kli/parser.go to append "did you mean" hints to unknown-option warnings.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher ranks candidates by edit distance to an input
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher accepting candidates within maxDistance edits
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // single characters match too much
	}
}

// Match is a candidate within the distance limit
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// Best returns the closest candidate, or "" when none is close enough.
// Exact (case-insensitive) matches are not suggestions and are skipped.
func (m *Matcher) Best(input string, candidates []string) string {
	matches := m.Matches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// Matches returns every candidate within the distance limit, best first.
func (m *Matcher) Matches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	input = strings.ToLower(input)
	var matches []Match
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue
		}
		d := m.distance(input, lower)
		if d > m.maxDistance {
			continue
		}
		matches = append(matches, Match{Value: candidate, Distance: d, Score: m.score(input, lower, d)})
	}

	// candidates usually come from a map; break ties by value for stable output
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Value < matches[j].Value
	})
	return matches
}

// score weighs edit distance, shared prefix and length similarity
func (m *Matcher) score(input, candidate string, distance int) float64 {
	longest := max(len(input), len(candidate))
	if longest == 0 {
		return 1.0
	}

	s := 1.0 - float64(distance)/float64(longest)

	prefix := commonPrefix(input, candidate)
	if shortest := min(len(input), len(candidate)); prefix > 0 && shortest > 0 {
		s += float64(prefix) / float64(shortest) * 0.3
	}

	diff := len(input) - len(candidate)
	if diff < 0 {
		diff = -diff
	}
	s += (1.0 - float64(diff)/float64(longest)) * 0.2

	return min(s, 1.0)
}

// distance is the Levenshtein distance between a and b, cut short at
// maxDistance+1 once it cannot come back under the limit.
func (m *Matcher) distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if d := len(a) - len(b); d > m.maxDistance || -d > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, curr[j])
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// Suggest returns the closest candidate within maxDistance edits of input
func Suggest(input string, candidates []string, maxDistance int) string {
	return NewMatcher(maxDistance).Best(input, candidates)
}
