package graph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with
	// the same ID already exists. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From
	// node does not exist in the graph.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To
	// node does not exist in the graph.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrInvalidEdgeEndpoint is returned by [Graph.Validate] when an edge
	// references a node that doesn't exist. This indicates graph corruption.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")
)

// Attrs stores numeric edge attributes keyed by column name. It is
// used to carry correlation statistics ("r", "p") and any additional
// columns from the source table. Attrs maps are never nil after an
// edge is added to a graph.
type Attrs map[string]float64

// Node represents a vertex in a correlation graph. Nodes are identified
// by variable name.
type Node struct {
	ID string
}

// Edge represents an undirected connection between two variables.
// From/To record the orientation the edge had in its source table, but
// the graph itself treats edges as undirected: an a–b edge makes b a
// neighbor of a and vice versa.
type Edge struct {
	From string
	To   string

	// Weight is the designated edge weight. Valid only when HasWeight
	// is set; correlation graphs built without a weight column leave it
	// zero.
	Weight    float64
	HasWeight bool

	Attrs Attrs
}

// Graph is an undirected graph of correlated variables. Nodes keep
// insertion order, which callers rely on for deterministic layouts.
//
// The zero value is not usable - use New to create a valid instance.
// Graph is not safe for concurrent mutation without external
// synchronization; read-only use from multiple goroutines is safe.
type Graph struct {
	nodes     map[string]Node
	order     []string
	edges     []Edge
	adjacency map[string][]string
}

// New creates an empty correlation graph.
func New() *Graph {
	return &Graph{
		nodes:     make(map[string]Node),
		adjacency: make(map[string][]string),
	}
}

// AddNode adds a node to the graph.
// Returns ErrInvalidNodeID if the ID is empty, or ErrDuplicateNodeID
// if a node with the same ID already exists.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[id]; exists {
		return ErrDuplicateNodeID
	}
	g.nodes[id] = Node{ID: id}
	g.order = append(g.order, id)
	return nil
}

// AddEdge adds an undirected edge between two existing nodes.
// Returns ErrUnknownSourceNode if the From node doesn't exist, or
// ErrUnknownTargetNode if the To node doesn't exist. The edge's Attrs
// field is automatically initialized to an empty map if nil.
//
// Self-loops are allowed: a symmetric table with its diagonal included
// produces them. Multiple edges between the same nodes are allowed.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if e.Attrs == nil {
		e.Attrs = Attrs{}
	}
	g.edges = append(g.edges, e)
	g.adjacency[e.From] = append(g.adjacency[e.From], e.To)
	if e.From != e.To {
		g.adjacency[e.To] = append(g.adjacency[e.To], e.From)
	}
	return nil
}

// Nodes returns the node IDs in insertion order.
// The returned slice is a copy and can be safely modified.
func (g *Graph) Nodes() []string { return slices.Clone(g.order) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Neighbors returns the IDs of nodes sharing an edge with this node.
// Returns nil if the node has no neighbors or doesn't exist. The
// returned slice should not be modified - use it as a read-only view.
func (g *Graph) Neighbors(id string) []string { return g.adjacency[id] }

// Degree returns the number of edges incident to the node.
// A self-loop counts once, matching its single adjacency entry: a
// diagonal cell makes a variable its own neighbor exactly once rather
// than following the graph-theoretic convention of degree two.
// Returns 0 if the node doesn't exist.
func (g *Graph) Degree(id string) int { return len(g.adjacency[id]) }

// Validate checks graph integrity and returns nil if valid.
// Returns ErrInvalidEdgeEndpoint if an edge references a missing node.
// Use this after bulk construction from untrusted edge lists.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		if _, ok := g.nodes[e.From]; !ok {
			return ErrInvalidEdgeEndpoint
		}
		if _, ok := g.nodes[e.To]; !ok {
			return ErrInvalidEdgeEndpoint
		}
	}
	return nil
}
