package network

import (
	"bytes"
	"fmt"
	"math"
)

// DOTOptions configures DOT export.
type DOTOptions struct {
	// Labeled annotates each edge with its correlation coefficient.
	Labeled bool
}

// ToDOT converts a Network to Graphviz DOT format. Correlation
// networks are undirected, so the output uses graph/-- syntax. The
// resulting string can be fed to any Graphviz-compatible renderer.
//
// Negative correlations are drawn dashed to distinguish them from
// positive ones, matching the usual correlation-network convention.
func ToDOT(n *Network, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("graph corlink {\n")
	buf.WriteString("  layout=circo;\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for _, node := range n.sortedNodes() {
		fmt.Fprintf(&buf, "  %q;\n", node.Name)
	}

	buf.WriteString("\n")
	for _, e := range n.Edges {
		attrs := edgeDOTAttrs(e, opts)
		if attrs == "" {
			fmt.Fprintf(&buf, "  %q -- %q;\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", e.From, e.To, attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgeDOTAttrs(e Edge, opts DOTOptions) string {
	var buf bytes.Buffer
	if opts.Labeled && !math.IsNaN(e.R) {
		fmt.Fprintf(&buf, "label=%q", fmt.Sprintf("%.2f", e.R))
	}
	if !math.IsNaN(e.R) && e.R < 0 {
		if buf.Len() > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("style=dashed")
	}
	return buf.String()
}
