// Package layout - YAML board configuration.
//
// A board file replaces the built-in QWERTY/Ooka data:
//
//	alphabet: "QWERTYUIOPASDFGHJKL;ZXCVBNM,./"
//	penalty:
//	  - [0.476, 0.581, ...]
//	  - ...
//
// The alphabet string is read rune by rune; the penalty matrix must be
// square with one row/column per alphabet symbol.
package layout

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk board description.
type Config struct {
	Alphabet string      `yaml:"alphabet"`
	Penalty  [][]float64 `yaml:"penalty"`
}

// ReadConfig decodes a YAML board file and validates it.
//
// Errors: YAML decoding errors as returned by the decoder, then the
// layout sentinels (ErrEmptyAlphabet, ErrDuplicateSymbol,
// ErrDimensionMismatch, ErrNonSquare, ErrNegativePenalty, ErrBadPenalty).
func ReadConfig(r io.Reader) (*Alphabet, [][]float64, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, nil, err
	}

	ab, err := ParseAlphabet(cfg.Alphabet)
	if err != nil {
		return nil, nil, err
	}
	if err = ValidatePenalty(cfg.Penalty, ab.Len()); err != nil {
		return nil, nil, err
	}

	return ab, cfg.Penalty, nil
}
