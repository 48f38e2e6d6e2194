package qap_test

import (
	"fmt"
	"log"
	"time"

	"github.com/eswai/or-keymap-optimizer/bigram"
	"github.com/eswai/or-keymap-optimizer/layout"
	"github.com/eswai/or-keymap-optimizer/qap"
)

// ExampleOptimize places three symbols on a board where the 0→1 stroke
// is cheap. The corpus types A→B three times and B→A twice, so the
// optimizer puts B on key 0 and A on key 1.
func ExampleOptimize() {
	ab, err := layout.ParseAlphabet("ABC")
	if err != nil {
		log.Fatal(err)
	}
	penalty := [][]float64{
		{0, 1, 10},
		{2, 0, 10},
		{10, 10, 0},
	}
	freq := bigram.Count("ABABAB", ab)

	res, err := qap.Optimize(ab, penalty, freq, qap.WithTimeLimit(time.Minute))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Layout)
	fmt.Printf("%.3f\n", res.Objective)
	// Output:
	// B A C
	// 2.000
}
