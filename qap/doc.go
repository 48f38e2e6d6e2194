// Package qap encodes the keymap layout problem - a quadratic assignment
// problem (QAP) - as a linear boolean program and solves it through a
// pluggable pseudo-boolean engine.
//
// Problem: place n symbols on n key positions so that the total typing
// cost Σ freq(s1,s2)·penalty[pos(s1)][pos(s2)] over adjacent symbol pairs
// of a corpus is minimal. The cost couples pairs of symbols with pairs of
// positions, so it is not decomposable per symbol.
//
// Encoding (the standard linearization of the bilinear terms):
//
//   - assignment variable A(s,k): symbol s occupies position k;
//   - per symbol, exactly one position: Σ_k A(s,k) == 1;
//   - per position, at most one symbol: Σ_s A(s,k) <= 1
//     (with n symbols on n positions the two jointly force a bijection);
//   - link variable L(s1,s2,k1,k2) for ordered symbol pairs s1≠s2 and
//     position pairs k1<k2, constrained to equal A(s1,k1) ∧ A(s2,k2) via
//     the clauses (¬L∨A1), (¬L∨A2), (L∨¬A1∨¬A2);
//   - objective: minimize Σ freq(s1,s2)·penalty[k1][k2]·L(s1,s2,k1,k2).
//     The penalty is directional - penalty[k1][k2] prices typing k1 then
//     k2 - and is never symmetrized.
//
// Link variables are the dominant cost driver: O(n²) symbol pairs ×
// O(n²) position pairs. By default only pairs with non-zero corpus
// frequency are materialized (zero-weight pairs cannot affect the
// optimum); WithDenseLinks restores full materialization.
//
// Solving is single-shot and synchronous: one call builds the model,
// blocks in the engine until the soft time budget runs out, and decodes
// the best-found assignment. No state survives between calls.
// The engine may return a feasible-but-unproven assignment at budget
// exhaustion; the achieved objective is surfaced so callers can judge
// solution quality.
//
// Complexity (n symbols, default sparse construction, m = number of
// distinct bigrams observed):
//   - model size: n² assignment vars + O(m·n²) link vars and clauses;
//   - build time: proportional to model size;
//   - solve time: up to the engine; NP-hard in general.
package qap
