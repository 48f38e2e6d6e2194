// Package keymapoptimizer computes typing-cost-optimal keyboard layouts.
//
// Given an alphabet of symbols, a key-transition penalty matrix and a
// corpus, the module assigns each symbol to a key position so that the
// total cost of all adjacent-pair transitions in the corpus is minimal -
// a quadratic assignment problem encoded as a linear boolean program and
// solved by a pseudo-boolean engine.
//
// Packages:
//   - layout: alphabet, penalty matrix and solved-layout types, plus the
//     built-in 30-key QWERTY board with Ooka 2-gram penalties;
//   - bigram: corpus bigram frequency extraction;
//   - qap:    the optimization core - model construction, objective
//     composition, engine boundary and result decoding;
//   - cmd/keymapopt: the command-line front end.
//
// Typical use:
//
//	ab := layout.QwertyAlphabet()
//	freq := bigram.Count(strings.ToUpper(corpus), ab)
//	res, err := qap.Optimize(ab, layout.OokaPenalty(), freq,
//	    qap.WithTimeLimit(15*time.Minute))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Layout)
package keymapoptimizer
