package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethanolivertroy/sizeprof/internal/dispatch"
	"github.com/ethanolivertroy/sizeprof/internal/logging"
	"github.com/ethanolivertroy/sizeprof/internal/options"
	"github.com/ethanolivertroy/sizeprof/internal/profile"
	"github.com/ethanolivertroy/sizeprof/internal/reporter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// Version is set at build time
var Version = "dev"

// ErrNoCommand is returned by Parse when the arguments name no subcommand
var ErrNoCommand = errors.New("no subcommand given")

// RunFunc receives the fully constructed command
type RunFunc func(ctx context.Context, c options.Command) error

type globalFlags struct {
	config  string
	verbose bool
}

// NewRootCommand builds the command tree. run receives the command each
// subcommand constructs. Building and running the tree leaves process state
// alone; the logger is installed only by Execute.
func NewRootCommand(run RunFunc) *cobra.Command {
	return newRootCommand(run, &globalFlags{})
}

// newCLI is the tree Execute runs: NewRootCommand plus logger installation
func newCLI(run RunFunc) *cobra.Command {
	g := &globalFlags{}
	root := newRootCommand(run, g)
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return g.installLogger()
	}
	return root
}

func newRootCommand(run RunFunc, g *globalFlags) *cobra.Command {
	root := &cobra.Command{
		Use:   "sizeprof",
		Short: "A code size profiler",
		Long: `sizeprof is a code size profiler.

It analyzes a binary's call graph to answer questions like:

  * Why was this function included in the binary in the first place?

  * What is the retained size of this function? I.e. how much space
    would be saved if it and all the functions that become dead code
    after its removal were deleted.

Examples:
  # List the ten largest items
  sizeprof top -n 10 app.wasm

  # Sort by retained size and write JSON to a file
  sizeprof top --retained -f json -o sizes.json app.wasm

  # Dominator tree, three levels deep
  sizeprof dominators -d 3 app.wasm

  # Call paths to two functions
  sizeprof paths app.wasm malloc free`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&g.config, "config", "", "TOML profile with per-mode defaults")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Enable debug logging")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &options.MalformedArgumentError{Err: err}
	})

	root.AddCommand(
		newTopCommand(g, run),
		newDominatorsCommand(g, run),
		newPathsCommand(g, run),
	)

	return root
}

// Execute runs the CLI against the process arguments and hands the result to
// the request describer.
func Execute() {
	root := newCLI(func(ctx context.Context, c options.Command) error {
		return dispatch.Run(ctx, c, reporter.NewDescriber(os.Stdout))
	})
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func (g *globalFlags) installLogger() error {
	logger, err := logging.New(g.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// loadProfile returns nil when no profile was requested
func (g *globalFlags) loadProfile() (*profile.Profile, error) {
	if g.config == "" {
		return nil, nil
	}
	p, err := profile.Load(g.config)
	if err != nil {
		return nil, err
	}
	zap.S().Named("cli").Debugw("loaded profile", "path", g.config)
	return p, nil
}

// outputFlags are the destination and format flags every subcommand carries
type outputFlags struct {
	output string
	format string
}

func (o *outputFlags) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.output, "output", "o", options.StdoutToken, "The destination to write the output to")
	fs.StringVarP(&o.format, "format", "f", string(options.DefaultOutputFormat()),
		fmt.Sprintf("The format the output should be written in (%s)", formatNames()))
}

type outputSetter interface {
	SetOutputDestination(options.OutputDestination)
	SetOutputFormat(options.OutputFormat) error
}

// apply sets destination and format on dst for the flags the user gave
func (o *outputFlags) apply(fs *pflag.FlagSet, dst outputSetter) error {
	if fs.Changed("output") {
		dst.SetOutputDestination(options.ParseOutputDestination(o.output))
	}
	if fs.Changed("format") {
		f, err := options.ParseOutputFormat(o.format)
		if err != nil {
			return err
		}
		if err := dst.SetOutputFormat(f); err != nil {
			return err
		}
	}
	return nil
}

func formatNames() string {
	var names []string
	for _, f := range options.OutputFormats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// inputArg accepts the input path followed by at most maxExtra further
// positional arguments; a negative maxExtra means any number.
func inputArg(maxExtra int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || args[0] == "" {
			return options.ErrMissingInput
		}
		if maxExtra >= 0 && len(args)-1 > maxExtra {
			return &options.MalformedArgumentError{
				Arg: args[1+maxExtra],
				Err: fmt.Errorf("unexpected argument for %s", cmd.Name()),
			}
		}
		return nil
	}
}
