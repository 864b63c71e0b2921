package layout

import (
	"slices"

	"github.com/corlink/corlink/pkg/cortab"
	"github.com/corlink/corlink/pkg/errors"
)

// Combination positions a set of auxiliary "spec" labels around the
// triangular grid of a symmetric correlation table and links each to a
// fixed grid anchor. The typical use is a Mantel-style combination
// diagram: a correlation heatmap with a side panel of spec points
// connected to matrix rows.
//
// The grid comes either from [WithGrid] (explicit kind, diagonal flag,
// and names) or [WithTable] (an existing symmetric table supplying its
// own metadata). A table that is not a well-formed symmetric
// correlation table fails with an INVALID_STATE error; a full grid is
// not supported and fails with an UNSUPPORTED_TYPE error.
//
// Spec points sit outside the triangle, to the upper-right for upper
// grids and the lower-right for lower grids, using fixed offsets
// scaled by the grid size. The offsets are a visual-layout choice
// carried over from existing diagrams, not derived geometry.
func Combination(start, end []string, opts ...Option) ([]Row, error) {
	if len(start) != len(end) {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"start and end label counts differ: %d vs %d", len(start), len(end))
	}
	cfg := applyOptions(opts)

	kind, showDiag, rowNames, err := resolveGrid(cfg)
	if err != nil {
		return nil, err
	}
	if kind == cortab.KindFull {
		return nil, errors.New(errors.ErrCodeUnsupportedType,
			"combination layouts require an upper or lower grid, not full")
	}
	n := len(rowNames)

	distStart := distinct(start)
	specOrder := distStart
	if cfg.sortStart != nil {
		if len(cfg.sortStart) != len(distStart) {
			return nil, errors.New(errors.ErrCodeInvalidArgument,
				"ordering has %d labels, want %d (one per distinct label)",
				len(cfg.sortStart), len(distStart))
		}
		specOrder = cfg.sortStart
	}

	specX, specY := specPoints(kind, len(specOrder), n)
	startX := make(map[string]float64, len(specOrder))
	startY := make(map[string]float64, len(specOrder))
	for i, l := range specOrder {
		startX[l] = specX[i]
		startY[l] = specY[i]
	}

	anchorX, anchorY := gridAnchors(kind, showDiag, rowNames)

	startFilter := firstOccurrence(start)
	endFilter := firstOccurrence(end)

	rows := make([]Row, len(start))
	for i := range start {
		rows[i] = Row{
			X:           lookup(startX, start[i]),
			Y:           lookup(startY, start[i]),
			XEnd:        lookup(anchorX, end[i]),
			YEnd:        lookup(anchorY, end[i]),
			StartLabel:  start[i],
			EndLabel:    end[i],
			StartFilter: startFilter[i],
			EndFilter:   endFilter[i],
		}
	}
	return rows, nil
}

// resolveGrid extracts the grid parameters from either source mode.
func resolveGrid(cfg config) (cortab.Kind, bool, []string, error) {
	if cfg.table != nil {
		t := cfg.table
		if !t.IsSymmetric() {
			return "", false, nil, errors.New(errors.ErrCodeInvalidState,
				"combination layouts require a symmetric correlation table")
		}
		return t.Kind(), t.ShowDiag(), t.RowNames(), nil
	}
	if !cfg.gridSet {
		return "", false, nil, errors.New(errors.ErrCodeInvalidArgument,
			"no grid: supply WithGrid or WithTable")
	}
	rowNames := cfg.rowNames
	if rowNames == nil {
		rowNames = slices.Clone(cfg.colNames)
		slices.Reverse(rowNames)
	}
	if len(rowNames) == 0 {
		return "", false, nil, errors.New(errors.ErrCodeInvalidArgument,
			"grid has no row names")
	}
	return cfg.kind, cfg.showDiag, rowNames, nil
}

// specPoints returns the fixed spec-point coordinates for m points on
// an n-row grid. The constants must match existing diagrams exactly;
// see the package documentation for the full table.
func specPoints(kind cortab.Kind, m, n int) ([]float64, []float64) {
	fn := float64(n)
	if kind == cortab.KindUpper {
		switch m {
		case 1:
			return []float64{0.5 + 0.18*fn}, []float64{0.5 + 0.3*fn}
		case 2:
			return []float64{0.5 - 0.02*fn, 0.5 + 0.2*fn},
				[]float64{0.5 + 0.46*fn, 0.5 + 0.2*fn}
		default:
			return spaced(0.5-0.25*fn, 0.5+0.3*fn, m),
				spaced(0.5+0.9*fn, 0.5+0.1*fn, m)
		}
	}
	switch m {
	case 1:
		return []float64{0.5 + 0.82*fn}, []float64{0.5 + 0.7*fn}
	case 2:
		return []float64{0.5 + 0.8*fn, 0.5 + 1.02*fn},
			[]float64{0.5 + 0.8*fn, 0.5 + 0.54*fn}
	default:
		return spaced(0.5+0.75*fn, 0.5+1.3*fn, m),
			spaced(0.5+0.9*fn, 0.5+0.3*fn, m)
	}
}

// gridAnchors maps each grid row name to its anchor coordinates. Row
// ranks run reversed on X (n..1) and forward on Y (1..n), shifted one
// cell away from the triangle, or two when the diagonal is drawn:
// toward the origin for upper grids, away from it for lower grids.
func gridAnchors(kind cortab.Kind, showDiag bool, rowNames []string) (map[string]float64, map[string]float64) {
	n := len(rowNames)
	shift := 1.0
	if showDiag {
		shift = 2.0
	}
	if kind == cortab.KindUpper {
		shift = -shift
	}

	xs := make(map[string]float64, n)
	ys := make(map[string]float64, n)
	for i, name := range rowNames {
		xs[name] = float64(n-i) + shift
		ys[name] = float64(i+1) + shift
	}
	return xs, ys
}
