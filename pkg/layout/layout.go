package layout

import (
	"math"
	"slices"

	"github.com/corlink/corlink/pkg/cortab"
	"github.com/corlink/corlink/pkg/errors"
)

// Row is one laid-out link: the original start/end labels plus the
// computed geometry. StartFilter/EndFilter mark the first occurrence
// of each distinct, non-missing label, letting a renderer draw each
// label's text exactly once.
type Row struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	XEnd float64 `json:"xend"`
	YEnd float64 `json:"yend"`

	StartLabel string `json:"start_label"`
	EndLabel   string `json:"end_label"`

	StartFilter bool `json:"start_filter"`
	EndFilter   bool `json:"end_filter"`
}

// config collects layout options shared by Parallel and Combination.
type config struct {
	horizontal bool
	sortStart  []string
	sortEnd    []string

	startX, startY float64
	endX, endY     float64

	gridSet  bool
	kind     cortab.Kind
	showDiag bool
	rowNames []string
	colNames []string
	table    *cortab.Table
}

// Option configures a layout call.
type Option func(*config)

// WithHorizontal lays the parallel tracks out horizontally: start
// labels along X, end labels along XEnd. The default is vertical.
func WithHorizontal(horizontal bool) Option {
	return func(c *config) { c.horizontal = horizontal }
}

// WithSortStart supplies an explicit ordering for the distinct start
// labels. Its length must equal the distinct-label count; the layout
// call fails with an INVALID_ARGUMENT error otherwise.
func WithSortStart(order []string) Option {
	return func(c *config) { c.sortStart = slices.Clone(order) }
}

// WithSortEnd supplies an explicit ordering for the distinct end
// labels, with the same length rule as [WithSortStart].
func WithSortEnd(order []string) Option {
	return func(c *config) { c.sortEnd = slices.Clone(order) }
}

// WithStartX overrides the fixed X coordinate of the start axis in
// vertical orientation. The default is 0.
func WithStartX(x float64) Option {
	return func(c *config) { c.startX = x }
}

// WithStartY overrides the fixed Y coordinate of the start axis in
// horizontal orientation. The default is 0.
func WithStartY(y float64) Option {
	return func(c *config) { c.startY = y }
}

// WithEndX overrides the fixed XEnd coordinate of the end axis in
// vertical orientation. The default is 1.
func WithEndX(x float64) Option {
	return func(c *config) { c.endX = x }
}

// WithEndY overrides the fixed YEnd coordinate of the end axis in
// horizontal orientation. The default is 1.
func WithEndY(y float64) Option {
	return func(c *config) { c.endY = y }
}

// WithGrid anchors a combination layout against an explicit triangular
// grid. When rowNames is nil it is derived as the reverse of colNames.
func WithGrid(kind cortab.Kind, showDiag bool, rowNames, colNames []string) Option {
	return func(c *config) {
		c.gridSet = true
		c.kind = kind
		c.showDiag = showDiag
		c.rowNames = slices.Clone(rowNames)
		c.colNames = slices.Clone(colNames)
	}
}

// WithTable anchors a combination layout against an existing symmetric
// correlation table, taking the triangle kind, diagonal flag, and row
// names from the table's own metadata.
func WithTable(t *cortab.Table) Option {
	return func(c *config) { c.table = t }
}

func applyOptions(opts []Option) config {
	cfg := config{startX: 0, startY: 0, endX: 1, endY: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// distinct returns the distinct non-missing (non-empty) labels in
// first-occurrence order.
func distinct(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	var out []string
	for _, l := range labels {
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// firstOccurrence computes the filter flags: true on the first row
// carrying each distinct non-missing label.
func firstOccurrence(labels []string) []bool {
	seen := make(map[string]struct{}, len(labels))
	flags := make([]bool, len(labels))
	for i, l := range labels {
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		flags[i] = true
	}
	return flags
}

// positions builds the label→position lookup table for one axis.
// Without an explicit ordering, the distinct labels receive evenly
// spaced positions over [n, 1] descending, in first-occurrence order.
// With an ordering of length k (which must equal the distinct count),
// positions are k, k-1, ..., 1 in the given order.
func positions(dist []string, order []string, n int) (map[string]float64, error) {
	pos := make(map[string]float64, len(dist))
	if order == nil {
		vals := spaced(float64(n), 1, len(dist))
		for i, l := range dist {
			pos[l] = vals[i]
		}
		return pos, nil
	}
	if len(order) != len(dist) {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"ordering has %d labels, want %d (one per distinct label)", len(order), len(dist))
	}
	for i, l := range order {
		pos[l] = float64(len(order) - i)
	}
	return pos, nil
}

// lookup resolves a label through a position table. Labels without an
// assigned position (missing labels, or labels absent from an explicit
// ordering) resolve to NaN, mirroring lookup-table semantics.
func lookup(pos map[string]float64, label string) float64 {
	if v, ok := pos[label]; ok {
		return v
	}
	return math.NaN()
}

// spaced returns count evenly spaced values from a to b inclusive.
// A single value collapses to a.
func spaced(a, b float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	out := make([]float64, count)
	if count == 1 {
		out[0] = a
		return out
	}
	step := (b - a) / float64(count-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	return out
}
