// Package graph provides an undirected graph of correlated variables.
//
// It is the in-memory counterpart of the serialization-oriented
// network model: nodes are variable names, edges carry numeric
// attributes ("r", "p", and any extra columns) plus an optional
// designated weight. Insertion order of nodes is preserved, which
// downstream layouts rely on for determinism.
//
// Build graphs directly with [New], [Graph.AddNode], and
// [Graph.AddEdge], or convert a built network with
// [github.com/corlink/corlink/pkg/network.Network.Graph]. A graph can
// in turn be fed back to the network builder as an input variant.
package graph
