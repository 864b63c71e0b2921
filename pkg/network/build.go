package network

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/corlink/corlink/pkg/cortab"
	"github.com/corlink/corlink/pkg/errors"
	"github.com/corlink/corlink/pkg/graph"
)

// Default filtering thresholds applied by [Build].
const (
	// DefaultRThreshold is the minimum correlation strength an edge
	// must exceed to be retained.
	DefaultRThreshold = 0.6

	// DefaultPThreshold is the significance level an edge must stay
	// below to be retained.
	DefaultPThreshold = 0.05
)

// config collects build options. The zero thresholds are finite, so
// filtering is on by default; use NaN (via WithoutThresholds or an
// explicit NaN argument) to disable a filter.
type config struct {
	simplify  bool
	weight    string
	rThres    float64
	rAbsolute bool
	pThres    float64
	names     []string
	tableOpts []cortab.Option
}

// Option configures [Build].
type Option func(*config)

// WithSimplify controls node derivation. When true (the default),
// nodes are restricted to variables referenced by the retained edges;
// when false, every variable of the source table becomes a node.
func WithSimplify(simplify bool) Option {
	return func(c *config) { c.simplify = simplify }
}

// WithWeight designates the named column ("r", "p", or an extra
// column) as the edge weight. The column must exist in the filtered
// edge set; Build fails with an INVALID_ARGUMENT error otherwise.
func WithWeight(column string) Option {
	return func(c *config) { c.weight = column }
}

// WithRThreshold sets the correlation-strength threshold.
// Pass NaN to disable strength filtering.
func WithRThreshold(r float64) Option {
	return func(c *config) { c.rThres = r }
}

// WithAbsoluteR controls whether the strength threshold compares |r|
// (the default) or the signed value.
func WithAbsoluteR(absolute bool) Option {
	return func(c *config) { c.rAbsolute = absolute }
}

// WithPThreshold sets the significance threshold.
// Pass NaN to disable significance filtering.
func WithPThreshold(p float64) Option {
	return func(c *config) { c.pThres = p }
}

// WithoutThresholds disables both filters, retaining every edge.
func WithoutThresholds() Option {
	return func(c *config) {
		c.rThres = math.NaN()
		c.pThres = math.NaN()
	}
}

// WithNames supplies variable names for raw-matrix inputs. Ignored for
// sources that carry their own names.
func WithNames(names []string) Option {
	return func(c *config) { c.names = slices.Clone(names) }
}

// WithTableOptions forwards table-construction options (triangle kind,
// diagonal) to the normalization step for raw-matrix inputs.
func WithTableOptions(opts ...cortab.Option) Option {
	return func(c *config) { c.tableOpts = opts }
}

// Build normalizes any supported correlation representation into a
// Network, filtered by the configured thresholds.
//
// Supported input variants:
//   - *cortab.Table: symmetric or general correlation table
//   - cortab.TestResult: correlation/significance matrix bundle
//   - map[string]mat.Matrix: named matrices (keys "r"/"correlation",
//     "p"/"P"/"p.value")
//   - mat.Matrix or [][]float64: raw correlation matrix
//   - *graph.Graph: pre-built correlation graph, taken as-is
//
// Any other input fails with an UNSUPPORTED_INPUT error naming the
// concrete type.
//
// Node derivation with simplify enabled intentionally mixes filtered
// and unfiltered sources: nodes are the union of the retained edges'
// from column and the original table's full to column. A variable
// referenced only through a filtered-out edge's to side therefore
// survives. This asymmetry is preserved for compatibility with
// existing diagrams and should not be relied on as a feature.
func Build(src any, opts ...Option) (*Network, error) {
	cfg := config{
		simplify:  true,
		rThres:    DefaultRThreshold,
		rAbsolute: true,
		pThres:    DefaultPThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch v := src.(type) {
	case *cortab.Table:
		return fromTable(v, cfg)
	case cortab.TestResult:
		t, err := cortab.FromTestResult(v, cfg.tableOpts...)
		if err != nil {
			return nil, err
		}
		return fromTable(t, cfg)
	case map[string]mat.Matrix:
		t, err := cortab.FromNamedMatrices(v, cfg.names, cfg.tableOpts...)
		if err != nil {
			return nil, err
		}
		return fromTable(t, cfg)
	case [][]float64:
		m, err := denseFromRows(v)
		if err != nil {
			return nil, err
		}
		t, err := cortab.FromMatrix(m, cfg.names, cfg.tableOpts...)
		if err != nil {
			return nil, err
		}
		return fromTable(t, cfg)
	case mat.Matrix:
		t, err := cortab.FromMatrix(v, cfg.names, cfg.tableOpts...)
		if err != nil {
			return nil, err
		}
		return fromTable(t, cfg)
	case *graph.Graph:
		return fromGraph(v, cfg)
	}
	return nil, errors.New(errors.ErrCodeUnsupportedInput,
		"cannot build a correlation network from %T", src)
}

// fromTable is the shared core: filter the table's cells, normalize
// the label columns to from/to, resolve the weight column, and derive
// the node set.
func fromTable(t *cortab.Table, cfg config) (*Network, error) {
	// The weight column is validated against the table schema up front,
	// so an unknown column fails even when filtering retains no edges.
	if cfg.weight != "" {
		if err := checkWeightColumn(t, cfg.weight); err != nil {
			return nil, err
		}
	}

	rActive := !math.IsNaN(cfg.rThres) && !t.IsGeneral()
	pActive := !math.IsNaN(cfg.pThres) && t.HasP()

	cells := t.Cells()
	var edges []Edge
	for _, c := range cells {
		if rActive && !passesR(c.R, cfg) {
			continue
		}
		if pActive && !(c.P < cfg.pThres) {
			continue
		}
		edges = append(edges, Edge{
			From:  c.RowName,
			To:    c.ColName,
			R:     c.R,
			P:     c.P,
			Extra: cloneExtra(c.Extra),
		})
	}

	if cfg.weight != "" {
		if err := applyWeight(edges, cfg.weight); err != nil {
			return nil, err
		}
	}

	var names []string
	if cfg.simplify {
		// Retained from column first, then the pre-filter to column.
		for _, e := range edges {
			names = append(names, e.From)
		}
		for _, c := range cells {
			names = append(names, c.ColName)
		}
	} else {
		for _, c := range cells {
			names = append(names, c.RowName)
		}
		for _, c := range cells {
			names = append(names, c.ColName)
		}
	}

	return &Network{Nodes: uniqueNodes(names), Edges: edges}, nil
}

// fromGraph converts a pre-built graph without filtering: the graph is
// assumed to already be the caller's intended edge set.
func fromGraph(g *graph.Graph, cfg config) (*Network, error) {
	nodes := make([]Node, 0, g.NodeCount())
	for _, id := range g.Nodes() {
		nodes = append(nodes, Node{Name: id})
	}

	var edges []Edge
	for _, ge := range g.Edges() {
		e := Edge{
			From:      ge.From,
			To:        ge.To,
			R:         math.NaN(),
			P:         math.NaN(),
			Weight:    ge.Weight,
			HasWeight: ge.HasWeight,
		}
		for k, v := range ge.Attrs {
			switch k {
			case "r":
				e.R = v
			case "p":
				e.P = v
			default:
				if e.Extra == nil {
					e.Extra = map[string]float64{}
				}
				e.Extra[k] = v
			}
		}
		edges = append(edges, e)
	}

	if cfg.weight != "" {
		if err := applyWeight(edges, cfg.weight); err != nil {
			return nil, err
		}
	}

	return &Network{Nodes: nodes, Edges: edges}, nil
}

// checkWeightColumn resolves a weight column against a table's schema:
// "r" always exists, "p"/"p.value" only when the table carries p
// values, anything else must be one of the table's extra columns.
func checkWeightColumn(t *cortab.Table, column string) error {
	switch column {
	case "r":
		return nil
	case "p", "p.value":
		if !t.HasP() {
			return unknownWeight(column)
		}
		return nil
	}
	if !slices.Contains(t.ExtraColumns(), column) {
		return unknownWeight(column)
	}
	return nil
}

// applyWeight designates the named column as the edge weight. The
// column must be resolvable on every filtered edge: "r" and "p" always
// resolve on table-built edges, anything else must be present in the
// edge's extra columns.
func applyWeight(edges []Edge, column string) error {
	for i := range edges {
		switch column {
		case "r":
			if math.IsNaN(edges[i].R) {
				return unknownWeight(column)
			}
			edges[i].Weight = edges[i].R
		case "p", "p.value":
			if math.IsNaN(edges[i].P) {
				return unknownWeight(column)
			}
			edges[i].Weight = edges[i].P
		default:
			v, ok := edges[i].Extra[column]
			if !ok {
				return unknownWeight(column)
			}
			edges[i].Weight = v
			delete(edges[i].Extra, column)
		}
		edges[i].HasWeight = true
	}
	return nil
}

func unknownWeight(column string) error {
	return errors.New(errors.ErrCodeInvalidArgument,
		"weight column %q does not exist in the edge set", column)
}

func passesR(r float64, cfg config) bool {
	if cfg.rAbsolute {
		return math.Abs(r) > cfg.rThres
	}
	return r > cfg.rThres
}

// uniqueNodes keeps the first occurrence of each name, in input order.
func uniqueNodes(names []string) []Node {
	seen := make(map[string]struct{}, len(names))
	var nodes []Node
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		nodes = append(nodes, Node{Name: name})
	}
	return nodes
}

func cloneExtra(extra map[string]float64) map[string]float64 {
	if extra == nil {
		return nil
	}
	out := make(map[string]float64, len(extra))
	for k, v := range extra {
		out[k] = v
	}
	return out
}

func denseFromRows(rows [][]float64) (*mat.Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, errors.New(errors.ErrCodeInvalidMatrix, "empty matrix")
	}
	data := make([]float64, 0, n*n)
	for _, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, errors.New(errors.ErrCodeInvalidMatrix, "ragged matrix rows")
		}
		data = append(data, row...)
	}
	return mat.NewDense(n, len(rows[0]), data), nil
}
