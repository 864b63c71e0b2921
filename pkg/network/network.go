package network

import (
	"math"
	"slices"

	"github.com/corlink/corlink/pkg/graph"
)

// Node is a vertex of a correlation network, identified by variable name.
type Node struct {
	Name string `json:"name"`
}

// Edge is one correlation retained by the builder. From/To are the two
// variable names, normalized from whatever label columns the source
// representation used. R and P are NaN when the source carried no such
// column. Extra holds any additional numeric columns.
type Edge struct {
	From string
	To   string
	R    float64
	P    float64

	// Weight is the designated edge weight, populated when the builder
	// is given a weight column. Valid only when HasWeight is set.
	Weight    float64
	HasWeight bool

	Extra map[string]float64
}

// Network is the uniform {nodes, edges} model produced by [Build].
// Every From/To value in Edges appears in Nodes, and Nodes contains no
// duplicate names. Networks are plain values: created per call,
// immutable by convention after construction.
type Network struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeNames returns the node names in order.
func (n *Network) NodeNames() []string {
	names := make([]string, len(n.Nodes))
	for i, node := range n.Nodes {
		names[i] = node.Name
	}
	return names
}

// Graph converts the network into a correlation graph. Edge statistics
// are stored as numeric attributes ("r", "p", plus any extra columns),
// so converting the graph back through [Build] reproduces the same
// from/to pairing.
func (n *Network) Graph() (*graph.Graph, error) {
	g := graph.New()
	for _, node := range n.Nodes {
		if err := g.AddNode(node.Name); err != nil {
			return nil, err
		}
	}
	for _, e := range n.Edges {
		attrs := graph.Attrs{}
		if !math.IsNaN(e.R) {
			attrs["r"] = e.R
		}
		if !math.IsNaN(e.P) {
			attrs["p"] = e.P
		}
		for k, v := range e.Extra {
			attrs[k] = v
		}
		ge := graph.Edge{
			From:      e.From,
			To:        e.To,
			Weight:    e.Weight,
			HasWeight: e.HasWeight,
			Attrs:     attrs,
		}
		if err := g.AddEdge(ge); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// sortedNodes returns the nodes sorted by name for deterministic
// serialization. The in-memory order (first occurrence) is preserved.
func (n *Network) sortedNodes() []Node {
	nodes := slices.Clone(n.Nodes)
	slices.SortFunc(nodes, func(a, b Node) int {
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
	return nodes
}
