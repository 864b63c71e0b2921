package cortab

import (
	"maps"
	"math"
	"slices"

	"github.com/corlink/corlink/pkg/errors"
)

// Kind identifies which part of a symmetric correlation matrix a table
// materializes.
type Kind string

// Table kinds.
const (
	// KindFull materializes every cell of the matrix.
	KindFull Kind = "full"
	// KindUpper materializes the upper triangle only.
	KindUpper Kind = "upper"
	// KindLower materializes the lower triangle only.
	KindLower Kind = "lower"
)

// ParseKind converts a string to a Kind.
// Returns an UNSUPPORTED_TYPE error for unknown values.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindFull, KindUpper, KindLower:
		return Kind(s), nil
	}
	return "", errors.New(errors.ErrCodeUnsupportedType, "unknown table kind: %q", s)
}

// Cell is one row of a correlation table: the correlation between a
// row variable and a column variable, with an optional significance
// value. P is NaN when the table carries no significance column.
//
// Extra holds additional numeric columns (e.g. confidence bounds or
// Mantel statistics) keyed by column name.
type Cell struct {
	RowName string
	ColName string
	R       float64
	P       float64
	Extra   map[string]float64
}

// HasP reports whether the cell carries a significance value.
func (c Cell) HasP() bool { return !math.IsNaN(c.P) }

// Table is a row-per-pair representation of a correlation matrix.
//
// A symmetric table represents a square, symmetric matrix and
// materializes one triangle (KindUpper/KindLower) or the whole matrix
// (KindFull), optionally including the diagonal. A general table
// represents correlations between two conceptually different variable
// sets and has no triangle structure.
//
// Tables are immutable after construction. Use New, NewGeneral, or the
// matrix constructors in this package to build one.
type Table struct {
	cells     []Cell
	rowNames  []string
	colNames  []string
	kind      Kind
	showDiag  bool
	general   bool
	hasP      bool
	extraCols []string
}

// config collects construction options shared by all constructors.
type config struct {
	kind     Kind
	showDiag bool
}

// Option configures table construction.
type Option func(*config)

// WithKind selects which triangle of a symmetric matrix to
// materialize. The default is KindFull.
func WithKind(k Kind) Option {
	return func(c *config) { c.kind = k }
}

// WithShowDiag controls whether diagonal cells are materialized for
// triangular tables. The default is true.
func WithShowDiag(show bool) Option {
	return func(c *config) { c.showDiag = show }
}

func applyOptions(opts []Option) config {
	cfg := config{kind: KindFull, showDiag: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// New creates a symmetric correlation table from pre-built cells.
// The row and column names must cover the same variable set, and every
// cell must reference known names. For triangular kinds, cells must
// cover exactly one triangle of the matrix (plus the diagonal when
// showDiag is set).
func New(rowNames, colNames []string, cells []Cell, opts ...Option) (*Table, error) {
	cfg := applyOptions(opts)

	if err := errors.ValidateNames(rowNames); err != nil {
		return nil, err
	}
	if err := errors.ValidateNames(colNames); err != nil {
		return nil, err
	}
	if !sameNameSet(rowNames, colNames) {
		return nil, errors.New(errors.ErrCodeInvalidState,
			"row and column names must cover the same variables for a symmetric table")
	}

	t := &Table{
		cells:    cloneCells(cells),
		rowNames: slices.Clone(rowNames),
		colNames: slices.Clone(colNames),
		kind:     cfg.kind,
		showDiag: cfg.showDiag,
	}
	t.finish()

	if err := t.checkCells(); err != nil {
		return nil, err
	}
	if t.kind != KindFull {
		if err := t.checkTriangle(); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// NewGeneral creates a general (asymmetric) correlation table over two
// disjoint variable sets, such as a Mantel-test table linking species
// groups to environmental variables. General tables have no triangle
// structure: the kind is always KindFull and showDiag is meaningless.
func NewGeneral(rowNames, colNames []string, cells []Cell) (*Table, error) {
	if err := errors.ValidateNames(rowNames); err != nil {
		return nil, err
	}
	if err := errors.ValidateNames(colNames); err != nil {
		return nil, err
	}

	t := &Table{
		cells:    cloneCells(cells),
		rowNames: slices.Clone(rowNames),
		colNames: slices.Clone(colNames),
		kind:     KindFull,
		showDiag: false,
		general:  true,
	}
	t.finish()

	if err := t.checkCells(); err != nil {
		return nil, err
	}
	return t, nil
}

// finish derives the significance flag and extra-column order.
func (t *Table) finish() {
	var extra []string
	for _, c := range t.cells {
		if c.HasP() {
			t.hasP = true
		}
		for k := range c.Extra {
			if !slices.Contains(extra, k) {
				extra = append(extra, k)
			}
		}
	}
	slices.Sort(extra)
	t.extraCols = extra
}

// checkCells verifies every cell references known row and column names.
func (t *Table) checkCells() error {
	rows := nameIndex(t.rowNames)
	cols := nameIndex(t.colNames)
	for _, c := range t.cells {
		if _, ok := rows[c.RowName]; !ok {
			return errors.New(errors.ErrCodeInvalidLabel, "unknown row name: %q", c.RowName)
		}
		if _, ok := cols[c.ColName]; !ok {
			return errors.New(errors.ErrCodeInvalidLabel, "unknown column name: %q", c.ColName)
		}
	}
	return nil
}

// checkTriangle verifies the triangle invariant for KindUpper/KindLower
// tables: cells cover exactly one triangle, with diagonal cells present
// only when showDiag is set. Triangle membership is judged in the
// canonical variable order given by the column names.
func (t *Table) checkTriangle() error {
	order := nameIndex(t.colNames)
	for _, c := range t.cells {
		i, j := order[c.RowName], order[c.ColName]
		if i == j {
			if !t.showDiag {
				return errors.New(errors.ErrCodeInvalidState,
					"diagonal cell %q present in a table without diagonal", c.RowName)
			}
			continue
		}
		switch t.kind {
		case KindUpper:
			if j < i {
				return errors.New(errors.ErrCodeInvalidState,
					"cell (%q, %q) lies outside the upper triangle", c.RowName, c.ColName)
			}
		case KindLower:
			if j > i {
				return errors.New(errors.ErrCodeInvalidState,
					"cell (%q, %q) lies outside the lower triangle", c.RowName, c.ColName)
			}
		}
	}
	return nil
}

// Kind returns which part of the matrix the table materializes.
func (t *Table) Kind() Kind { return t.kind }

// ShowDiag reports whether diagonal cells are materialized.
func (t *Table) ShowDiag() bool { return t.showDiag }

// IsGeneral reports whether the table is asymmetric (two different
// variable sets rather than one symmetric matrix).
func (t *Table) IsGeneral() bool { return t.general }

// IsSymmetric reports whether the table represents a symmetric
// correlation matrix: not general, with row and column names covering
// the same variable set.
func (t *Table) IsSymmetric() bool {
	return !t.general && sameNameSet(t.rowNames, t.colNames)
}

// HasP reports whether the table carries a significance column.
func (t *Table) HasP() bool { return t.hasP }

// RowNames returns a copy of the row variable names.
func (t *Table) RowNames() []string { return slices.Clone(t.rowNames) }

// ColNames returns a copy of the column variable names.
func (t *Table) ColNames() []string { return slices.Clone(t.colNames) }

// ExtraColumns returns the names of additional numeric columns carried
// by the cells, in sorted order.
func (t *Table) ExtraColumns() []string { return slices.Clone(t.extraCols) }

// Cells returns a copy of the table rows in materialization order.
func (t *Table) Cells() []Cell { return cloneCells(t.cells) }

// cloneCells copies the cell slice along with each Extra map, so the
// table never shares mutable state with callers.
func cloneCells(cells []Cell) []Cell {
	out := slices.Clone(cells)
	for i := range out {
		out[i].Extra = maps.Clone(out[i].Extra)
	}
	return out
}

// Len returns the number of rows in the table.
func (t *Table) Len() int { return len(t.cells) }

// Extract re-slices a full symmetric table to a single triangle.
// Returns an UNSUPPORTED_TYPE error when asked for KindFull, and an
// INVALID_STATE error when the receiver is general or not KindFull.
func (t *Table) Extract(kind Kind, showDiag bool) (*Table, error) {
	if kind == KindFull {
		return nil, errors.New(errors.ErrCodeUnsupportedType, "cannot extract a full table")
	}
	if t.general {
		return nil, errors.New(errors.ErrCodeInvalidState, "cannot extract a triangle from a general table")
	}
	if t.kind != KindFull {
		return nil, errors.New(errors.ErrCodeInvalidState,
			"table already materializes the %s triangle", t.kind)
	}

	order := nameIndex(t.colNames)
	var cells []Cell
	for _, c := range t.cells {
		i, j := order[c.RowName], order[c.ColName]
		if i == j {
			if showDiag {
				cells = append(cells, c)
			}
			continue
		}
		if (kind == KindUpper && j > i) || (kind == KindLower && j < i) {
			cells = append(cells, c)
		}
	}
	return New(t.rowNames, t.colNames, cells, WithKind(kind), WithShowDiag(showDiag))
}

// nameIndex maps each name to its position in the slice.
func nameIndex(names []string) map[string]int {
	m := make(map[string]int, len(names))
	for i, n := range names {
		m[n] = i
	}
	return m
}

// sameNameSet reports whether two name slices contain exactly the same
// names, ignoring order.
func sameNameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, n := range a {
		set[n] = struct{}{}
	}
	for _, n := range b {
		if _, ok := set[n]; !ok {
			return false
		}
	}
	return true
}
