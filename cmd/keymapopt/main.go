// Command keymapopt computes a typing-cost-optimal keyboard layout for a
// corpus file.
//
// By default it optimizes the built-in 30-key board (QWERTY symbol set,
// Ooka 2-gram penalties); --config substitutes a YAML board file. The
// corpus is upper-cased before counting so lower-case text matches the
// upper-case alphabet.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/eswai/or-keymap-optimizer/bigram"
	"github.com/eswai/or-keymap-optimizer/layout"
	"github.com/eswai/or-keymap-optimizer/qap"
)

// options holds the command's flag values.
type options struct {
	corpus    string
	config    string
	timeLimit time.Duration
	costScale int
	dense     bool
	verbose   bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "keymapopt --corpus FILE",
		Short: "Optimize a keyboard layout for a corpus",
		Long: "keymapopt assigns the board's symbols to key positions so that the\n" +
			"total bigram typing cost of the given corpus is minimal.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.corpus, "corpus", "", "corpus text file (required)")
	cmd.Flags().StringVar(&opts.config, "config", "", "YAML board file (alphabet + penalty matrix)")
	cmd.Flags().DurationVar(&opts.timeLimit, "time-limit", qap.DefaultTimeLimit, "wall-clock solve budget (0 = unlimited)")
	cmd.Flags().IntVar(&opts.costScale, "cost-scale", qap.DefaultCostScale, "penalty-to-integer scaling factor")
	cmd.Flags().BoolVar(&opts.dense, "dense", false, "materialize link variables for zero-frequency pairs too")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "show solver search progress")
	_ = cmd.MarkFlagRequired("corpus")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	ab, penalty, err := loadBoard(opts.config)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(opts.corpus)
	if err != nil {
		return err
	}
	freq := bigram.Count(strings.ToUpper(string(raw)), ab)

	qopts := []qap.Option{
		qap.WithTimeLimit(opts.timeLimit),
		qap.WithCostScale(opts.costScale),
	}
	if opts.dense {
		qopts = append(qopts, qap.WithDenseLinks())
	}
	if opts.verbose {
		qopts = append(qopts, qap.WithVerbose())
	}

	res, err := qap.Optimize(ab, penalty, freq, qopts...)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "status = %s\n", res.Status)

		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "status    = %s\n", res.Status)
	fmt.Fprintf(out, "objective = %.3f\n", res.Objective)
	fmt.Fprintln(out, res.Layout)

	return nil
}

// loadBoard returns either the YAML board from path or the built-in one.
func loadBoard(path string) (*layout.Alphabet, [][]float64, error) {
	if path == "" {
		return layout.QwertyAlphabet(), layout.OokaPenalty(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return layout.ReadConfig(f)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
