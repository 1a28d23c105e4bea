package cmd

import (
	"github.com/ethanolivertroy/sizeprof/internal/options"
	"github.com/spf13/cobra"
)

type topFlags struct {
	outputFlags
	number         uint32
	retainingPaths bool
	retained       bool
}

func newTopCommand(g *globalFlags, run RunFunc) *cobra.Command {
	f := &topFlags{}

	cmd := &cobra.Command{
		Use:   "top <input>",
		Short: "List the top code size offenders in a binary",
		Args:  inputArg(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.build(g, cmd, args)
			if err != nil {
				return err
			}
			return run(cmd.Context(), options.TopCommand(opts))
		},
	}

	fs := cmd.Flags()
	f.outputFlags.bind(fs)
	fs.Uint32VarP(&f.number, "number", "n", 0, "The maximum number of items to display")
	fs.BoolVarP(&f.retainingPaths, "retaining-paths", "r", false, "Display retaining paths")
	fs.BoolVar(&f.retained, "retained", false, "Sort list by retained size, rather than shallow size")

	return cmd
}

func (f *topFlags) build(g *globalFlags, cmd *cobra.Command, args []string) (*options.Top, error) {
	opts := options.NewTop()
	opts.SetInput(args[0])

	p, err := g.loadProfile()
	if err != nil {
		return nil, err
	}
	if p != nil {
		if err := p.ApplyTop(opts); err != nil {
			return nil, err
		}
	}

	fs := cmd.Flags()
	if err := f.outputFlags.apply(fs, opts); err != nil {
		return nil, err
	}
	if fs.Changed("number") {
		opts.SetNumber(f.number)
	}
	if fs.Changed("retaining-paths") {
		opts.SetRetainingPaths(f.retainingPaths)
	}
	if fs.Changed("retained") {
		opts.SetRetained(f.retained)
	}
	return opts, nil
}
