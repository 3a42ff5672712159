//nolint:testpackage // using package name 'benchmark' to access unexported fields for testing
package benchmark

import (
	"testing"

	"github.com/dzonerzy/go-kli/internal/fuzzy"
)

var longIDs = []string{
	"help", "version", "verbose", "config", "output", "input",
	"force", "debug", "port", "host", "timeout", "retry",
}

func BenchmarkMatcher_Best(b *testing.B) {
	matcher := fuzzy.NewMatcher(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.Best("hep", longIDs)
	}
}

func BenchmarkMatcher_Matches(b *testing.B) {
	matcher := fuzzy.NewMatcher(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.Matches("verbos", longIDs)
	}
}

func BenchmarkMatcher_NoMatch(b *testing.B) {
	matcher := fuzzy.NewMatcher(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.Best("zzzzzzzz", longIDs)
	}
}
