package reporter

import (
	"context"
	"fmt"
	"io"

	"github.com/ethanolivertroy/sizeprof/internal/options"
	"go.uber.org/zap"
)

// Describer renders each resolved command to its own destination in its own
// format. It stands in for the analysis engine so the CLI can show exactly
// what a run would be asked to do.
type Describer struct {
	Stdout io.Writer
	// Inline sends every report to Stdout, including ones whose
	// destination names a file.
	Inline bool
}

// NewDescriber returns a Describer writing stdout output to w
func NewDescriber(w io.Writer) *Describer {
	return &Describer{Stdout: w}
}

// Top describes a top run
func (d *Describer) Top(ctx context.Context, t options.Top) error {
	return d.emit(FromTop(t), t.OutputFormat(), t.OutputDestination())
}

// Dominators describes a dominators run
func (d *Describer) Dominators(ctx context.Context, dom options.Dominators) error {
	return d.emit(FromDominators(dom), dom.OutputFormat(), dom.OutputDestination())
}

// Paths describes a paths run
func (d *Describer) Paths(ctx context.Context, p options.Paths) error {
	return d.emit(FromPaths(p), p.OutputFormat(), p.OutputDestination())
}

func (d *Describer) emit(req Request, format options.OutputFormat, dest options.OutputDestination) error {
	output, err := Get(format).Report(req)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	if d.Inline {
		dest = options.Stdout()
	}
	if err := Write(dest, output, d.Stdout); err != nil {
		return err
	}
	if !dest.IsStdout() {
		zap.S().Named("reporter").Infow("report written", "mode", req.Mode, "path", dest.Path())
	}
	return nil
}
