package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/ethanolivertroy/sizeprof/internal/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls      []string
	top        options.Top
	dominators options.Dominators
	paths      options.Paths
	err        error
}

func (r *recorder) Top(ctx context.Context, opts options.Top) error {
	r.calls = append(r.calls, "top")
	r.top = opts
	return r.err
}

func (r *recorder) Dominators(ctx context.Context, opts options.Dominators) error {
	r.calls = append(r.calls, "dominators")
	r.dominators = opts
	return r.err
}

func (r *recorder) Paths(ctx context.Context, opts options.Paths) error {
	r.calls = append(r.calls, "paths")
	r.paths = opts
	return r.err
}

func TestRunRoutesEachMode(t *testing.T) {
	top := options.NewTop()
	top.SetNumber(4)
	dom := options.NewDominators()
	dom.SetMaxRows(2)
	p := options.NewPaths()
	p.AddFunction("main")

	r := &recorder{}
	ctx := context.Background()
	require.NoError(t, Run(ctx, options.TopCommand(top), r))
	require.NoError(t, Run(ctx, options.DominatorsCommand(dom), r))
	require.NoError(t, Run(ctx, options.PathsCommand(p), r))

	assert.Equal(t, []string{"top", "dominators", "paths"}, r.calls)
	assert.Equal(t, uint32(4), r.top.Number())
	assert.Equal(t, uint32(2), r.dominators.MaxRows())
	assert.Equal(t, []string{"main"}, r.paths.Functions())
}

func TestRunPropagatesAnalyzerError(t *testing.T) {
	boom := errors.New("boom")
	r := &recorder{err: boom}

	err := Run(context.Background(), options.TopCommand(options.NewTop()), r)
	assert.ErrorIs(t, err, boom)
}

func TestRunRejectsNil(t *testing.T) {
	r := &recorder{}
	err := Run(context.Background(), nil, r)
	assert.Error(t, err)
	assert.Empty(t, r.calls)
}
