// Package bigram extracts symbol-pair transition frequencies from a corpus.
//
// Count scans the text once and tallies, for every ordered pair of
// alphabet symbols (s1, s2), how often s1 is immediately followed by s2.
// Occurrences may overlap ("AAA" contains "AA" twice). Runes outside the
// alphabet break adjacency: in "A#B" the pair (A, B) is not counted.
//
// The corpus is expected to be case-normalized by the caller; Count does
// no folding of its own.
//
// Counts live in a dense n×n table indexed by symbol id, so the model
// builder reads frequencies with plain array arithmetic.
//
// Complexity: Count is O(len(text)) time and O(n²) space.
package bigram
