package bigram_test

import (
	"strings"
	"testing"

	"github.com/eswai/or-keymap-optimizer/bigram"
	"github.com/eswai/or-keymap-optimizer/layout"
)

// BenchmarkCount measures the single-pass corpus scan on the full
// 30-symbol board.
func BenchmarkCount(b *testing.B) {
	ab := layout.QwertyAlphabet()
	corpus := strings.Repeat("THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG; ", 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bigram.Count(corpus, ab)
	}
}
