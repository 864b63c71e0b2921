// Package pipeline provides the build → arrange pipeline for
// correlation diagrams.
//
// The pipeline consists of two stages:
//
//  1. Build: normalize a correlation result into a {nodes, edges} network
//  2. Arrange: compute layout rows for the diagram being drawn
//
// Each stage can be run independently or as part of the complete
// pipeline. Centralizing this logic keeps behavior consistent across
// callers and gives a single place for stage timing and logging.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil)
//	opts := pipeline.Options{
//	    Source: table,
//	    Layout: pipeline.LayoutParallel,
//	    Start:  specLabels,
//	    End:    envLabels,
//	}
//	result, err := runner.Execute(opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	net := result.Network
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/corlink/corlink/pkg/errors"
	"github.com/corlink/corlink/pkg/layout"
	"github.com/corlink/corlink/pkg/network"
)

// Layout stage selectors.
const (
	// LayoutNone skips the arrange stage.
	LayoutNone = ""
	// LayoutParallel arranges start/end labels on parallel tracks.
	LayoutParallel = "parallel"
	// LayoutCombination arranges spec points around a triangular grid.
	LayoutCombination = "combination"
)

// Options configures a pipeline run.
type Options struct {
	// Source is any input accepted by [network.Build]. Required unless
	// the run is layout-only (Layout set, Source nil).
	Source any

	// BuildOptions are forwarded to [network.Build].
	BuildOptions []network.Option

	// Layout selects the arrange stage: LayoutParallel,
	// LayoutCombination, or LayoutNone.
	Layout string

	// Start and End are the label sequences for the arrange stage.
	Start []string
	End   []string

	// LayoutOptions are forwarded to the layout call.
	LayoutOptions []layout.Option
}

// ValidateAndSetDefaults checks option consistency.
func (o *Options) ValidateAndSetDefaults() error {
	switch o.Layout {
	case LayoutNone, LayoutParallel, LayoutCombination:
	default:
		return errors.New(errors.ErrCodeUnsupportedType, "unknown layout: %q", o.Layout)
	}
	if o.Source == nil && o.Layout == LayoutNone {
		return errors.New(errors.ErrCodeInvalidArgument, "nothing to do: no source and no layout")
	}
	if o.Layout != LayoutNone && len(o.Start) == 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "layout %q needs start/end labels", o.Layout)
	}
	return nil
}

// Stats records stage timings and result sizes.
type Stats struct {
	BuildTime   time.Duration
	ArrangeTime time.Duration
	NodeCount   int
	EdgeCount   int
	RowCount    int
}

// Result holds the pipeline outputs.
type Result struct {
	Network *network.Network
	Rows    []layout.Row
	Stats   Stats
}

// Runner executes the pipeline. It is stateless except for the logger,
// so multiple goroutines can safely share one Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete build → arrange pipeline.
func (r *Runner) Execute(opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	if opts.Source != nil {
		buildStart := time.Now()
		net, err := network.Build(opts.Source, opts.BuildOptions...)
		if err != nil {
			return nil, wrapStage("build", err)
		}
		result.Network = net
		result.Stats.BuildTime = time.Since(buildStart)
		result.Stats.NodeCount = len(net.Nodes)
		result.Stats.EdgeCount = len(net.Edges)

		r.Logger.Info("built correlation network",
			"nodes", result.Stats.NodeCount,
			"edges", result.Stats.EdgeCount,
			"duration", result.Stats.BuildTime)
	}

	if opts.Layout != LayoutNone {
		arrangeStart := time.Now()
		rows, err := r.arrange(opts)
		if err != nil {
			return nil, wrapStage("arrange", err)
		}
		result.Rows = rows
		result.Stats.ArrangeTime = time.Since(arrangeStart)
		result.Stats.RowCount = len(rows)

		r.Logger.Info("arranged layout",
			"layout", opts.Layout,
			"rows", result.Stats.RowCount,
			"duration", result.Stats.ArrangeTime)
	}

	return result, nil
}

// wrapStage annotates a stage failure while preserving the original
// error code for errors.Is checks.
func wrapStage(stage string, err error) error {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	return errors.Wrap(code, err, "%s stage failed", stage)
}

func (r *Runner) arrange(opts Options) ([]layout.Row, error) {
	switch opts.Layout {
	case LayoutParallel:
		return layout.Parallel(opts.Start, opts.End, opts.LayoutOptions...)
	case LayoutCombination:
		return layout.Combination(opts.Start, opts.End, opts.LayoutOptions...)
	}
	return nil, nil
}
