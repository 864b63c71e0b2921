package layout

import (
	"github.com/corlink/corlink/pkg/errors"
)

// Parallel arranges two matched label sequences on parallel axes, one
// track position per distinct label, and links the i-th start label to
// the i-th end label.
//
// The track count is n = max(distinct start labels, distinct end
// labels); positions run from n down to 1. In vertical orientation
// (the default) the start track is the Y coordinate at fixed X and the
// end track is YEnd at fixed XEnd; [WithHorizontal] swaps the roles
// onto X/XEnd.
//
// The two sequences must have equal length. Explicit orderings given
// via [WithSortStart]/[WithSortEnd] must have exactly one entry per
// distinct label; a mismatch fails with an INVALID_ARGUMENT error.
func Parallel(start, end []string, opts ...Option) ([]Row, error) {
	if len(start) != len(end) {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"start and end label counts differ: %d vs %d", len(start), len(end))
	}
	cfg := applyOptions(opts)

	distStart := distinct(start)
	distEnd := distinct(end)
	n := max(len(distStart), len(distEnd))

	startPos, err := positions(distStart, cfg.sortStart, n)
	if err != nil {
		return nil, err
	}
	endPos, err := positions(distEnd, cfg.sortEnd, n)
	if err != nil {
		return nil, err
	}

	startFilter := firstOccurrence(start)
	endFilter := firstOccurrence(end)

	rows := make([]Row, len(start))
	for i := range start {
		row := Row{
			StartLabel:  start[i],
			EndLabel:    end[i],
			StartFilter: startFilter[i],
			EndFilter:   endFilter[i],
		}
		if cfg.horizontal {
			row.X = lookup(startPos, start[i])
			row.Y = cfg.startY
			row.XEnd = lookup(endPos, end[i])
			row.YEnd = cfg.endY
		} else {
			row.X = cfg.startX
			row.Y = lookup(startPos, start[i])
			row.XEnd = cfg.endX
			row.YEnd = lookup(endPos, end[i])
		}
		rows[i] = row
	}
	return rows, nil
}
