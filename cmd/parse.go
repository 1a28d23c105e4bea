package cmd

import (
	"context"
	"io"

	"github.com/ethanolivertroy/sizeprof/internal/options"
)

// Parse builds a command from argument tokens (without the program name)
// using the same command tree as the CLI. Help and usage output is
// discarded.
func Parse(args []string) (options.Command, error) {
	if args == nil {
		args = []string{}
	}

	var parsed options.Command
	root := NewRootCommand(func(ctx context.Context, c options.Command) error {
		parsed = c
		return nil
	})
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.ExecuteContext(context.Background()); err != nil {
		return nil, err
	}
	if parsed == nil {
		return nil, ErrNoCommand
	}
	return parsed, nil
}
