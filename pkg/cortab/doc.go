// Package cortab provides the row-per-pair correlation table that the
// rest of the library is built on.
//
// # Overview
//
// Correlation analyses arrive in many shapes: square matrices,
// matrix bundles with significance values, or long tables pairing two
// different variable sets. This package normalizes all of them into a
// single [Table] type: an ordered sequence of [Cell] values plus the
// metadata a consumer needs to reason about the table's shape.
//
// A symmetric table represents a square correlation matrix and
// materializes either the whole matrix ([KindFull]) or a single
// triangle ([KindUpper]/[KindLower]), optionally including the
// diagonal. A general table (see [NewGeneral]) pairs two conceptually
// different variable sets, such as the species/environment tables
// produced by Mantel tests, and has no triangle structure.
//
// # Construction
//
// Build tables from matrices with [FromMatrix] and [FromMatrices],
// from test-result bundles with [FromTestResult] and
// [FromNamedMatrices], or cell-by-cell with [New] and [NewGeneral].
// Matrix constructors accept [gonum.org/v1/gonum/mat.Matrix] values:
//
//	r := mat.NewDense(3, 3, []float64{1, .8, .2, .8, 1, .5, .2, .5, 1})
//	t, err := cortab.FromMatrix(r, []string{"a", "b", "c"},
//	    cortab.WithKind(cortab.KindUpper), cortab.WithShowDiag(false))
//
// # Invariants
//
// Triangular tables cover exactly one triangle (plus the diagonal when
// ShowDiag is set); constructors reject cells outside it. Tables are
// immutable after construction - accessors return copies.
package cortab
