// Package layout - core types and sentinel errors.
//
// Design principles:
//   - Strict sentinels: callers compare with errors.Is / ==; no fmt.Errorf
//     where a sentinel suffices.
//   - Arena + index: symbols are resolved to dense integer ids once, at
//     alphabet construction; all later stages work on ids only.
//   - Immutability: an Alphabet never changes after NewAlphabet returns.
package layout

import (
	"errors"
	"strings"
)

// Sentinel errors returned by the layout package.
var (
	// ErrEmptyAlphabet indicates that an alphabet was built from zero symbols.
	ErrEmptyAlphabet = errors.New("layout: alphabet is empty")

	// ErrDuplicateSymbol indicates that the same symbol occurs twice in the alphabet.
	ErrDuplicateSymbol = errors.New("layout: duplicate symbol in alphabet")

	// ErrDimensionMismatch indicates that the penalty matrix size does not
	// match the alphabet size. Mismatched sizes are rejected outright;
	// partial assignments are never produced.
	ErrDimensionMismatch = errors.New("layout: penalty matrix size does not match alphabet size")

	// ErrNonSquare indicates a ragged or non-square penalty matrix.
	ErrNonSquare = errors.New("layout: penalty matrix is not square")

	// ErrNegativePenalty indicates a negative entry in the penalty matrix.
	ErrNegativePenalty = errors.New("layout: negative penalty entry")

	// ErrBadPenalty indicates a NaN or infinite entry in the penalty matrix.
	ErrBadPenalty = errors.New("layout: penalty entry is NaN or infinite")
)

// columns is the number of key positions rendered per row; the 30-key
// target board is three rows of ten.
const columns = 10

// Alphabet is an ordered set of distinct symbols. Position ids and symbol
// ids share the range [0, Len()): there are exactly as many key positions
// as symbols.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet builds an alphabet from an ordered list of symbols.
//
// Contract:
//   - len(symbols) >= 1, otherwise ErrEmptyAlphabet.
//   - all symbols distinct, otherwise ErrDuplicateSymbol.
//
// Complexity: O(n) time and space.
func NewAlphabet(symbols []rune) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	ab := &Alphabet{
		symbols: make([]rune, len(symbols)),
		index:   make(map[rune]int, len(symbols)),
	}
	for i, r := range symbols {
		if _, dup := ab.index[r]; dup {
			return nil, ErrDuplicateSymbol
		}
		ab.symbols[i] = r
		ab.index[r] = i
	}

	return ab, nil
}

// ParseAlphabet builds an alphabet from the runes of s, in order.
func ParseAlphabet(s string) (*Alphabet, error) {
	return NewAlphabet([]rune(s))
}

// Len returns the number of symbols (== number of key positions).
func (a *Alphabet) Len() int { return len(a.symbols) }

// Symbol returns the symbol with id s. The id must be in [0, Len()).
func (a *Alphabet) Symbol(s int) rune { return a.symbols[s] }

// ID resolves a rune to its symbol id. The second return value reports
// whether the rune belongs to the alphabet.
func (a *Alphabet) ID(r rune) (int, bool) {
	id, ok := a.index[r]

	return id, ok
}

// Runes returns a copy of the symbols in id order.
func (a *Alphabet) Runes() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)

	return out
}

// Layout is a solved assignment: Keys[k] is the symbol placed at key
// position k. len(Keys) equals the alphabet size.
type Layout struct {
	Keys []rune
}

// String renders the layout as rows of ten space-separated symbols,
// mirroring the physical three-row board.
func (l Layout) String() string {
	var b strings.Builder
	for i, r := range l.Keys {
		if i > 0 {
			if i%columns == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}

	return b.String()
}
