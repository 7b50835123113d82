package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabapcia/dynamap/internal/pkg/logger"
	"github.com/gabapcia/dynamap/pkg/defaultdict"
	"github.com/gabapcia/dynamap/pkg/dynamic"

	"github.com/urfave/cli/v3"
)

// ErrMalformedEntry is returned when an --entry flag is not in key=value form.
var ErrMalformedEntry = errors.New("entry must be in key=value form")

// Run initializes and executes the dynamap CLI application.
//
// It registers all available commands, including:
//
//   - `get`: Reads members by name.
//   - `invoke`: Invokes a callable member.
//   - `keys`: Lists the stored keys.
//   - `render`: Executes a text/template against the dictionary.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - cmp: The key comparison strategy for the dictionary the commands operate on.
//
// Command output is written to stdout.
func Run(ctx context.Context, cmp defaultdict.Comparer[string]) error {
	return newApp(cmp, os.Stdout).Run(ctx, os.Args)
}

// newApp builds the root command writing its output to w.
func newApp(cmp defaultdict.Comparer[string], w io.Writer) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "dynamap",
		Description:           "Inspect a case-insensitive dynamic dictionary built from the command line.",
		Usage:                 "dynamap [--entry key=value ...] [command] [flags]",
		Writer:                w,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "entry",
				Aliases: []string{"e"},
				Usage:   "Entry to store in the dictionary, as key=value (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "no-builtins",
				Usage: "Do not preload the builtin callable members",
			},
		},
		Commands: []*cli.Command{
			getCommand(cmp),
			invokeCommand(cmp),
			keysCommand(cmp),
			renderCommand(cmp),
		},
	}
}

// loadDictionary builds the dictionary described by the global flags.
//
// Builtins are stored first, so an --entry with the same name replaces them.
func loadDictionary(ctx context.Context, c *cli.Command, cmp defaultdict.Comparer[string]) (*dynamic.Dictionary, error) {
	d := dynamic.New(dynamic.WithComparer(cmp))
	if !c.Bool("no-builtins") {
		registerBuiltins(d)
	}

	for _, raw := range c.StringSlice("entry") {
		key, value, ok := strings.Cut(raw, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedEntry, raw)
		}

		d.Set(key, value)
	}

	logger.Debug(ctx, "dictionary loaded", "entries", d.Len())
	return d, nil
}
