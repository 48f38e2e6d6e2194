// Package layout defines the shared data model of the keymap optimizer:
// the symbol alphabet, the key-transition penalty matrix, and the solved
// position→symbol layout.
//
// An Alphabet is an ordered set of distinct symbols. Ordering exists for
// enumeration only: symbol i is addressed by its integer id i everywhere
// else in the module, so hot paths index dense arrays instead of hashing
// runes.
//
// A penalty matrix is a plain [][]float64: penalty[i][j] is the ergonomic
// cost of pressing key position i immediately followed by position j.
// It is externally supplied data; ValidatePenalty enforces the shape and
// value contract (square, matching the alphabet size, finite,
// non-negative). The matrix is not assumed symmetric - typing i→j and
// j→i may cost differently.
//
// The package also ships ready-made data: the 30-key QWERTY alphabet and
// the Ooka 2-gram penalty matrix (QwertyAlphabet, OokaPenalty), plus a
// YAML loader for user-supplied alphabets and matrices.
package layout
