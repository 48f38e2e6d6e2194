package layout_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eswai/or-keymap-optimizer/layout"
)

const boardYAML = `alphabet: "ABC"
penalty:
  - [0.0, 1.0, 2.0]
  - [1.5, 0.0, 0.5]
  - [2.5, 0.5, 0.0]
`

func TestReadConfig_OK(t *testing.T) {
	ab, p, err := layout.ReadConfig(strings.NewReader(boardYAML))
	require.NoError(t, err)
	require.Equal(t, 3, ab.Len())
	require.Equal(t, 'B', ab.Symbol(1))
	require.Equal(t, 1.5, p[1][0])
}

func TestReadConfig_PenaltySizeMismatch(t *testing.T) {
	cfg := `alphabet: "ABCD"
penalty:
  - [0.0, 1.0]
  - [1.0, 0.0]
`
	_, _, err := layout.ReadConfig(strings.NewReader(cfg))
	require.ErrorIs(t, err, layout.ErrDimensionMismatch)
}

func TestReadConfig_EmptyAlphabet(t *testing.T) {
	_, _, err := layout.ReadConfig(strings.NewReader("alphabet: \"\"\npenalty: []\n"))
	require.ErrorIs(t, err, layout.ErrEmptyAlphabet)
}

func TestReadConfig_BadYAML(t *testing.T) {
	_, _, err := layout.ReadConfig(strings.NewReader("alphabet: [unclosed"))
	require.Error(t, err)
}
