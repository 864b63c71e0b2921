package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/corlink/corlink/pkg/errors"
)

func TestParallelTrackPositions(t *testing.T) {
	start := []string{"a", "b", "a"}
	end := []string{"x", "y", "z"}

	rows, err := Parallel(start, end)
	if err != nil {
		t.Fatalf("Parallel: %v", err)
	}

	// n = max(2, 3) = 3. Two distinct start labels spread over [3, 1];
	// three distinct end labels land on 3, 2, 1.
	wantY := []float64{3, 1, 3}
	wantYEnd := []float64{3, 2, 1}
	for i, row := range rows {
		if row.Y != wantY[i] {
			t.Errorf("row %d: Y = %v, want %v", i, row.Y, wantY[i])
		}
		if row.YEnd != wantYEnd[i] {
			t.Errorf("row %d: YEnd = %v, want %v", i, row.YEnd, wantYEnd[i])
		}
		if row.X != 0 || row.XEnd != 1 {
			t.Errorf("row %d: fixed coords = (%v, %v), want (0, 1)", i, row.X, row.XEnd)
		}
	}

	wantStartFilter := []bool{true, true, false}
	for i, row := range rows {
		if row.StartFilter != wantStartFilter[i] {
			t.Errorf("row %d: StartFilter = %v, want %v", i, row.StartFilter, wantStartFilter[i])
		}
		if !row.EndFilter {
			t.Errorf("row %d: EndFilter = false for distinct end labels", i)
		}
	}
}

func TestParallelHorizontal(t *testing.T) {
	rows, err := Parallel([]string{"a", "b"}, []string{"x", "y"},
		WithHorizontal(true), WithStartY(0.25), WithEndY(2))
	if err != nil {
		t.Fatalf("Parallel: %v", err)
	}
	for i, row := range rows {
		if row.Y != 0.25 {
			t.Errorf("row %d: Y = %v, want 0.25", i, row.Y)
		}
		if row.YEnd != 2 {
			t.Errorf("row %d: YEnd = %v, want 2", i, row.YEnd)
		}
	}
	if rows[0].X != 2 || rows[1].X != 1 {
		t.Errorf("X tracks = %v, %v, want 2, 1", rows[0].X, rows[1].X)
	}
	if rows[0].XEnd != 2 || rows[1].XEnd != 1 {
		t.Errorf("XEnd tracks = %v, %v, want 2, 1", rows[0].XEnd, rows[1].XEnd)
	}
}

func TestParallelExplicitOrdering(t *testing.T) {
	t.Run("reorders track assignment", func(t *testing.T) {
		rows, err := Parallel([]string{"a", "b"}, []string{"x", "y"},
			WithSortStart([]string{"b", "a"}))
		if err != nil {
			t.Fatalf("Parallel: %v", err)
		}
		// b takes the top track (2), a the bottom (1).
		if rows[0].Y != 1 || rows[1].Y != 2 {
			t.Errorf("Y tracks = %v, %v, want 1, 2", rows[0].Y, rows[1].Y)
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := Parallel([]string{"a", "b"}, []string{"x", "y"},
			WithSortStart([]string{"a"}))
		if !errors.Is(err, errors.ErrCodeInvalidArgument) {
			t.Fatalf("error = %v, want INVALID_ARGUMENT", err)
		}
	})

	t.Run("end ordering length mismatch", func(t *testing.T) {
		_, err := Parallel([]string{"a", "b"}, []string{"x", "y"},
			WithSortEnd([]string{"x", "y", "z"}))
		if !errors.Is(err, errors.ErrCodeInvalidArgument) {
			t.Fatalf("error = %v, want INVALID_ARGUMENT", err)
		}
	})
}

func TestParallelLengthMismatch(t *testing.T) {
	_, err := Parallel([]string{"a"}, []string{"x", "y"})
	if !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Fatalf("error = %v, want INVALID_ARGUMENT", err)
	}
}

func TestParallelMissingLabels(t *testing.T) {
	rows, err := Parallel([]string{"a", "", "b"}, []string{"x", "y", "z"})
	if err != nil {
		t.Fatalf("Parallel: %v", err)
	}
	if !math.IsNaN(rows[1].Y) {
		t.Errorf("missing start label Y = %v, want NaN", rows[1].Y)
	}
	if rows[1].StartFilter {
		t.Error("missing label should never set the filter flag")
	}
}

func TestParallelDeterministic(t *testing.T) {
	start := []string{"a", "b", "a", "c"}
	end := []string{"x", "y", "z", "x"}

	first, err := Parallel(start, end, WithHorizontal(true))
	if err != nil {
		t.Fatalf("Parallel: %v", err)
	}
	second, err := Parallel(start, end, WithHorizontal(true))
	if err != nil {
		t.Fatalf("Parallel: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("reapplying the layout produced different geometry")
	}
}
