package pipeline

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/mat"

	"github.com/corlink/corlink/pkg/cortab"
	"github.com/corlink/corlink/pkg/errors"
	"github.com/corlink/corlink/pkg/layout"
)

func quietRunner() *Runner {
	return NewRunner(log.New(io.Discard))
}

func testTable(t *testing.T) *cortab.Table {
	t.Helper()
	r := mat.NewDense(3, 3, []float64{1, 0.8, 0.2, 0.8, 1, 0.5, 0.2, 0.5, 1})
	tbl, err := cortab.FromMatrix(r, []string{"a", "b", "c"},
		cortab.WithKind(cortab.KindUpper), cortab.WithShowDiag(false))
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	return tbl
}

func TestExecuteBuildOnly(t *testing.T) {
	result, err := quietRunner().Execute(Options{Source: testTable(t)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Network == nil {
		t.Fatal("Execute returned no network")
	}
	if result.Stats.NodeCount != len(result.Network.Nodes) {
		t.Errorf("Stats.NodeCount = %d, want %d", result.Stats.NodeCount, len(result.Network.Nodes))
	}
	if result.Rows != nil {
		t.Error("Rows should be nil without a layout stage")
	}
}

func TestExecuteWithCombination(t *testing.T) {
	tbl := testTable(t)
	result, err := quietRunner().Execute(Options{
		Source: tbl,
		Layout: LayoutCombination,
		Start:  []string{"s1", "s2"},
		End:    []string{"a", "b"},
		LayoutOptions: []layout.Option{
			layout.WithTable(tbl),
		},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Stats.RowCount != 2 {
		t.Errorf("RowCount = %d, want 2", result.Stats.RowCount)
	}
}

func TestExecuteLayoutOnly(t *testing.T) {
	result, err := quietRunner().Execute(Options{
		Layout: LayoutParallel,
		Start:  []string{"a", "b"},
		End:    []string{"x", "y"},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Network != nil {
		t.Error("layout-only run should not build a network")
	}
	if len(result.Rows) != 2 {
		t.Errorf("got %d rows, want 2", len(result.Rows))
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"unknown layout", Options{Source: struct{}{}, Layout: "radial"}, errors.ErrCodeUnsupportedType},
		{"nothing to do", Options{}, errors.ErrCodeInvalidArgument},
		{"layout without labels", Options{Layout: LayoutParallel}, errors.ErrCodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := quietRunner().Execute(tt.opts)
			if !errors.Is(err, tt.code) {
				t.Fatalf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestExecutePropagatesBuildErrors(t *testing.T) {
	_, err := quietRunner().Execute(Options{Source: "not a correlation result"})
	if !errors.Is(err, errors.ErrCodeUnsupportedInput) {
		t.Fatalf("error = %v, want UNSUPPORTED_INPUT", err)
	}
}
