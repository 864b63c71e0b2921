// Package network builds {nodes, edges} correlation networks from
// heterogeneous correlation-analysis results.
//
// # Overview
//
// [Build] is the single entry point. It dispatches on the runtime
// shape of its input - a correlation table, a raw matrix, a named
// test-result bundle, or a pre-built graph - normalizes it, filters
// edges by correlation strength and significance, and emits a
// [Network] ready for a renderer or for conversion to a
// [github.com/corlink/corlink/pkg/graph.Graph].
//
// # Filtering
//
// Symmetric tables are filtered by both thresholds: an edge survives
// when |r| (or signed r, see [WithAbsoluteR]) exceeds the strength
// threshold and its p-value stays below the significance threshold.
// Either filter can be disabled by passing NaN. General (asymmetric)
// tables have no symmetric r-magnitude semantics, so only the
// significance filter applies to them.
//
// # Serialization
//
// Networks serialize to JSON with [Marshal]/[Write]/[WriteFile] and
// back with [Read]/[ReadFile]; nodes are sorted by name for
// deterministic output. [ToDOT] exports Graphviz DOT text for
// external rendering.
package network
