package cmd

import (
	"github.com/ethanolivertroy/sizeprof/internal/options"
	"github.com/spf13/cobra"
)

type pathsFlags struct {
	outputFlags
	maxDepth uint32
	maxPaths uint32
}

func newPathsCommand(g *globalFlags, run RunFunc) *cobra.Command {
	f := &pathsFlags{}

	cmd := &cobra.Command{
		Use:   "paths <input> [functions...]",
		Short: "Find and display the call paths to a function in the given binary's call graph",
		Args:  inputArg(-1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.build(g, cmd, args)
			if err != nil {
				return err
			}
			return run(cmd.Context(), options.PathsCommand(opts))
		},
	}

	fs := cmd.Flags()
	f.outputFlags.bind(fs)
	fs.Uint32VarP(&f.maxDepth, "max-depth", "d", options.DefaultPathsMaxDepth, "The maximum depth to print the paths")
	fs.Uint32VarP(&f.maxPaths, "max-paths", "r", options.DefaultPathsMaxPaths, "The maximum number of paths, regardless of depth in the tree, to display")

	return cmd
}

func (f *pathsFlags) build(g *globalFlags, cmd *cobra.Command, args []string) (*options.Paths, error) {
	opts := options.NewPaths()
	opts.SetInput(args[0])
	for _, fn := range args[1:] {
		opts.AddFunction(fn)
	}

	p, err := g.loadProfile()
	if err != nil {
		return nil, err
	}
	if p != nil {
		if err := p.ApplyPaths(opts); err != nil {
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
	if fs.Changed("max-paths") {
		opts.SetMaxPaths(f.maxPaths)
	}
	return opts, nil
}
