package cortab

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/corlink/corlink/pkg/errors"
)

// TestResult bundles the matrices produced by a correlation test, such
// as the output of a pairwise correlation with significance estimates.
// Names are the variable names shared by both matrix dimensions; when
// nil, names V1..Vn are generated.
type TestResult struct {
	R     mat.Matrix // Correlation matrix (required)
	P     mat.Matrix // Significance matrix (optional)
	Names []string
}

// FromMatrix builds a symmetric correlation table from a square
// correlation matrix. When names is nil, variable names V1..Vn are
// generated. The kind and diagonal options control which cells are
// materialized.
func FromMatrix(r mat.Matrix, names []string, opts ...Option) (*Table, error) {
	return FromMatrices(r, nil, names, opts...)
}

// FromMatrices builds a symmetric correlation table from a correlation
// matrix and a matching significance matrix. The p matrix may be nil,
// in which case the table carries no significance column. Dimensions
// of both matrices must agree.
func FromMatrices(r, p mat.Matrix, names []string, opts ...Option) (*Table, error) {
	cfg := applyOptions(opts)

	n, c := r.Dims()
	if n != c {
		return nil, errors.New(errors.ErrCodeInvalidMatrix,
			"correlation matrix must be square, got %dx%d", n, c)
	}
	if p != nil {
		pr, pc := p.Dims()
		if pr != n || pc != n {
			return nil, errors.New(errors.ErrCodeInvalidMatrix,
				"significance matrix is %dx%d, want %dx%d", pr, pc, n, n)
		}
	}

	if names == nil {
		names = defaultNames(n)
	}
	if len(names) != n {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"got %d names for a %dx%d matrix", len(names), n, n)
	}

	var cells []Cell
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !materialize(cfg, i, j) {
				continue
			}
			cell := Cell{RowName: names[i], ColName: names[j], R: r.At(i, j), P: math.NaN()}
			if p != nil {
				cell.P = p.At(i, j)
			}
			cells = append(cells, cell)
		}
	}
	return New(names, names, cells, opts...)
}

// FromTestResult builds a symmetric correlation table from a test
// result bundle. The R matrix is required.
func FromTestResult(tr TestResult, opts ...Option) (*Table, error) {
	if tr.R == nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "test result has no correlation matrix")
	}
	return FromMatrices(tr.R, tr.P, tr.Names, opts...)
}

// FromNamedMatrices builds a symmetric correlation table from a bag of
// named matrices, as produced by statistical packages that return
// results as name→matrix maps. The correlation matrix is looked up
// under the keys "r" and "correlation"; the significance matrix under
// "p", "P", and "p.value". A missing correlation matrix is an
// INVALID_ARGUMENT error.
func FromNamedMatrices(ms map[string]mat.Matrix, names []string, opts ...Option) (*Table, error) {
	r := lookupMatrix(ms, "r", "correlation")
	if r == nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"no correlation matrix found under keys %q or %q", "r", "correlation")
	}
	p := lookupMatrix(ms, "p", "P", "p.value")
	return FromMatrices(r, p, names, opts...)
}

func lookupMatrix(ms map[string]mat.Matrix, keys ...string) mat.Matrix {
	for _, k := range keys {
		if m, ok := ms[k]; ok && m != nil {
			return m
		}
	}
	return nil
}

// materialize reports whether the matrix cell (i, j) belongs to the
// configured triangle.
func materialize(cfg config, i, j int) bool {
	if i == j {
		return cfg.kind == KindFull || cfg.showDiag
	}
	switch cfg.kind {
	case KindUpper:
		return j > i
	case KindLower:
		return j < i
	}
	return true
}

func defaultNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("V%d", i+1)
	}
	return names
}
