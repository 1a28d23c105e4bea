// Package dispatch hands a resolved command to the analysis engine.
package dispatch

import (
	"context"
	"fmt"

	"github.com/ethanolivertroy/sizeprof/internal/options"
	"go.uber.org/zap"
)

// Analyzer is the analysis engine. Each method receives its own copy of the
// mode configuration.
type Analyzer interface {
	Top(ctx context.Context, opts options.Top) error
	Dominators(ctx context.Context, opts options.Dominators) error
	Paths(ctx context.Context, opts options.Paths) error
}

// Run routes cmd to the matching analyzer method
func Run(ctx context.Context, cmd options.Command, a Analyzer) error {
	log := zap.S().Named("dispatch")

	switch c := cmd.(type) {
	case options.Top:
		log.Debugw("running analysis", "mode", c.Name(), "input", c.Input(), "number", c.Number(),
			"retaining_paths", c.RetainingPaths(), "retained", c.Retained())
		return a.Top(ctx, c)
	case options.Dominators:
		log.Debugw("running analysis", "mode", c.Name(), "input", c.Input(),
			"max_depth", c.MaxDepth(), "max_rows", c.MaxRows())
		return a.Dominators(ctx, c)
	case options.Paths:
		log.Debugw("running analysis", "mode", c.Name(), "input", c.Input(), "functions", c.Functions(),
			"max_depth", c.MaxDepth(), "max_paths", c.MaxPaths())
		return a.Paths(ctx, c)
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
}
