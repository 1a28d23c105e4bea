package cmd

import (
	"github.com/ethanolivertroy/sizeprof/internal/options"
	"github.com/spf13/cobra"
)

type dominatorsFlags struct {
	outputFlags
	maxDepth uint32
	maxRows  uint32
}

func newDominatorsCommand(g *globalFlags, run RunFunc) *cobra.Command {
	f := &dominatorsFlags{}

	cmd := &cobra.Command{
		Use:   "dominators <input>",
		Short: "Compute and display the dominator tree for a binary's call graph",
		Args:  inputArg(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.build(g, cmd, args)
			if err != nil {
				return err
			}
			return run(cmd.Context(), options.DominatorsCommand(opts))
		},
	}

	fs := cmd.Flags()
	f.outputFlags.bind(fs)
	fs.Uint32VarP(&f.maxDepth, "max-depth", "d", 0, "The maximum depth to print the dominators tree")
	fs.Uint32VarP(&f.maxRows, "max-rows", "r", 0, "The maximum number of rows, regardless of depth in the tree, to display")

	return cmd
}

func (f *dominatorsFlags) build(g *globalFlags, cmd *cobra.Command, args []string) (*options.Dominators, error) {
	opts := options.NewDominators()
	opts.SetInput(args[0])

	p, err := g.loadProfile()
	if err != nil {
		return nil, err
	}
	if p != nil {
		if err := p.ApplyDominators(opts); err != nil {
			return nil, err
		}
	}

	fs := cmd.Flags()
	if err := f.outputFlags.apply(fs, opts); err != nil {
		return nil, err
	}
	if fs.Changed("max-depth") {
		opts.SetMaxDepth(f.maxDepth)
	}
	if fs.Changed("max-rows") {
		opts.SetMaxRows(f.maxRows)
	}
	return opts, nil
}
