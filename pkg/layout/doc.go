// Package layout computes deterministic 2-D coordinates for
// correlation-diagram links.
//
// # Overview
//
// Two generators cover the diagram shapes this library supports.
// [Parallel] lays two label sets out on parallel axes - one track
// position per distinct label - and links matched start/end labels,
// producing the classic two-column linkage diagram. [Combination]
// positions auxiliary "spec" labels outside the triangular grid of a
// symmetric correlation table and links each to a fixed grid anchor,
// producing the matrix-plus-side-panel combination diagram.
//
// Both return [Row] values carrying the computed geometry (X, Y, XEnd,
// YEnd) alongside the original labels and first-occurrence filter
// flags, ready for a renderer to draw segments and label text.
//
// # Spec-point constants
//
// Combination spec points use fixed offsets scaled by the grid size n,
// with dedicated formulas for one, two, and three-or-more points:
//
//	kind   m    x                              y
//	upper  1    0.5+0.18n                      0.5+0.30n
//	upper  2    0.5-0.02n, 0.5+0.20n           0.5+0.46n, 0.5+0.20n
//	upper  ≥3   0.5-0.25n .. 0.5+0.30n         0.5+0.90n .. 0.5+0.10n
//	lower  1    0.5+0.82n                      0.5+0.70n
//	lower  2    0.5+0.80n, 0.5+1.02n           0.5+0.80n, 0.5+0.54n
//	lower  ≥3   0.5+0.75n .. 0.5+1.30n         0.5+0.90n .. 0.5+0.30n
//
// Ranges denote evenly spaced sequences over the m points. These
// constants are a deliberate visual choice kept bit-identical so that
// regenerated diagrams line up with existing ones.
//
// # Determinism
//
// Both generators are pure functions of their arguments: no state, no
// randomness. Reapplying a generator to its own output's original
// labels yields identical geometry.
package layout
