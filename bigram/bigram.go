package bigram

import "github.com/eswai/or-keymap-optimizer/layout"

// Table is a dense n×n matrix of ordered bigram counts: entry (s1, s2)
// is the number of times symbol s1 was immediately followed by s2.
// Pairs never observed hold 0.
type Table struct {
	n      int
	counts []int64 // counts[s1*n+s2]
}

// NewTable returns an all-zero table for an alphabet of n symbols.
func NewTable(n int) *Table {
	return &Table{n: n, counts: make([]int64, n*n)}
}

// Count tallies every adjacent pair of alphabet symbols in text.
// It never fails: an empty corpus simply yields an all-zero table.
//
// Complexity: O(len(text)) time, O(n²) space.
func Count(text string, ab *layout.Alphabet) *Table {
	t := NewTable(ab.Len())

	// prev is the symbol id of the previous rune, or -1 when the previous
	// rune was outside the alphabet (adjacency broken).
	prev := -1
	for _, r := range text {
		cur, ok := ab.ID(r)
		if !ok {
			prev = -1

			continue
		}
		if prev >= 0 {
			t.counts[prev*t.n+cur]++
		}
		prev = cur
	}

	return t
}

// Len returns the alphabet size the table was built for.
func (t *Table) Len() int { return t.n }

// At returns the count for the ordered pair (s1, s2).
func (t *Table) At(s1, s2 int) int64 { return t.counts[s1*t.n+s2] }

// Set overwrites the count for the ordered pair (s1, s2).
func (t *Table) Set(s1, s2 int, c int64) { t.counts[s1*t.n+s2] = c }

// Total returns the sum of all counts.
func (t *Table) Total() int64 {
	var sum int64
	for _, c := range t.counts {
		sum += c
	}

	return sum
}

// Scale returns a new table with every count multiplied by k.
// Scaling all frequencies by a positive constant scales the optimization
// objective without changing which assignment is optimal.
func (t *Table) Scale(k int64) *Table {
	out := NewTable(t.n)
	for i, c := range t.counts {
		out.counts[i] = c * k
	}

	return out
}
