package graph

import (
	"errors"
	"testing"
)

func TestAddNode(t *testing.T) {
	g := New()

	if err := g.AddNode("a"); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddNode(""); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("empty ID error = %v, want ErrInvalidNodeID", err)
	}
	if err := g.AddNode("a"); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("duplicate ID error = %v, want ErrDuplicateNodeID", err)
	}
	if g.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", g.NodeCount())
	}
}

func TestAddEdge(t *testing.T) {
	g := New()
	_ = g.AddNode("a")
	_ = g.AddNode("b")

	if err := g.AddEdge(Edge{From: "missing", To: "b"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("error = %v, want ErrUnknownSourceNode", err)
	}
	if err := g.AddEdge(Edge{From: "a", To: "missing"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("error = %v, want ErrUnknownTargetNode", err)
	}

	if err := g.AddEdge(Edge{From: "a", To: "b", Attrs: Attrs{"r": 0.9}}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestUndirectedAdjacency(t *testing.T) {
	g := New()
	for _, id := range []string{"a", "b", "c"} {
		_ = g.AddNode(id)
	}
	_ = g.AddEdge(Edge{From: "a", To: "b"})
	_ = g.AddEdge(Edge{From: "a", To: "c"})

	if got := g.Degree("a"); got != 2 {
		t.Errorf("Degree(a) = %d, want 2", got)
	}
	if got := g.Neighbors("b"); len(got) != 1 || got[0] != "a" {
		t.Errorf("Neighbors(b) = %v, want [a]", got)
	}
	if got := g.Neighbors("c"); len(got) != 1 || got[0] != "a" {
		t.Errorf("Neighbors(c) = %v, want [a]", got)
	}
}

func TestSelfLoop(t *testing.T) {
	g := New()
	_ = g.AddNode("a")
	if err := g.AddEdge(Edge{From: "a", To: "a"}); err != nil {
		t.Fatalf("AddEdge self-loop: %v", err)
	}
	if got := g.Degree("a"); got != 1 {
		t.Errorf("Degree(a) = %d, want 1 (self-loop counted once)", got)
	}
	if got := g.Neighbors("a"); len(got) != 1 || got[0] != "a" {
		t.Errorf("Neighbors(a) = %v, want [a]", got)
	}
}

func TestNodesKeepInsertionOrder(t *testing.T) {
	g := New()
	want := []string{"z", "a", "m"}
	for _, id := range want {
		_ = g.AddNode(id)
	}
	got := g.Nodes()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Nodes() = %v, want %v", got, want)
		}
	}
}

func TestEdgeAttrsInitialized(t *testing.T) {
	g := New()
	_ = g.AddNode("a")
	_ = g.AddNode("b")
	_ = g.AddEdge(Edge{From: "a", To: "b"})

	if g.Edges()[0].Attrs == nil {
		t.Error("edge Attrs not initialized")
	}
}

func TestValidate(t *testing.T) {
	g := New()
	_ = g.AddNode("a")
	_ = g.AddNode("b")
	_ = g.AddEdge(Edge{From: "a", To: "b"})

	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
