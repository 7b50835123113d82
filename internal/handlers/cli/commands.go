package cli

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"text/template"

	"github.com/gabapcia/dynamap/internal/pkg/logger"
	"github.com/gabapcia/dynamap/pkg/defaultdict"

	"github.com/urfave/cli/v3"
)

// formatValue renders a member value for output. Missing members print as an
// empty line and functions as a placeholder.
func formatValue(v any) string {
	if v == nil {
		return ""
	}
	if reflect.TypeOf(v).Kind() == reflect.Func {
		return "<func>"
	}

	return fmt.Sprint(v)
}

// getCommand returns a CLI command that prints the value of one or more members.
//
// Usage example:
//
//	dynamap --entry Name=Superman get --key NAME --key FirstName
//
// Each key is printed on its own line; unset members print an empty line.
func getCommand(cmp defaultdict.Comparer[string]) *cli.Command {
	return &cli.Command{
		Name:        "get",
		Description: "Print the value stored under each key, matching keys with the configured comparison.",
		Usage:       "Reads members by name. Unset members print as empty lines.",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "key",
				Aliases:  []string{"k"},
				Usage:    "Member name to read (repeatable)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logger.Derive(ctx, "command", c.Name)

			d, err := loadDictionary(ctx, c, cmp)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			for _, key := range c.StringSlice("key") {
				if _, err := fmt.Fprintln(w, formatValue(d.Member(key))); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// invokeCommand returns a CLI command that invokes a callable member.
//
// Usage example:
//
//	dynamap invoke --member greet --arg World
func invokeCommand(cmp defaultdict.Comparer[string]) *cli.Command {
	return &cli.Command{
		Name:        "invoke",
		Description: "Invoke the callable stored under a member name with string arguments and print the result.",
		Usage:       "Invokes a member. Fails if the member is missing or not callable.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "member",
				Aliases:  []string{"m"},
				Usage:    "Member name to invoke",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:    "arg",
				Aliases: []string{"a"},
				Usage:   "Argument passed to the member (repeatable)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logger.Derive(ctx, "command", c.Name)

			d, err := loadDictionary(ctx, c, cmp)
			if err != nil {
				return err
			}

			var (
				member = c.String("member")
				raw    = c.StringSlice("arg")
				args   = make([]any, len(raw))
			)
			for i, a := range raw {
				args[i] = a
			}

			result, err := d.InvokeMember(member, args...)
			if err != nil {
				logger.Debug(ctx, "invocation failed", "member", member, "error", err)
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, formatValue(result))
			return err
		},
	}
}

// keysCommand returns a CLI command that lists the stored keys in insertion order.
//
// Usage example:
//
//	dynamap --no-builtins --entry a=1 --entry b=2 keys
func keysCommand(cmp defaultdict.Comparer[string]) *cli.Command {
	return &cli.Command{
		Name:        "keys",
		Description: "List every stored key, with the casing it was first stored with.",
		Usage:       "Lists keys in insertion order.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logger.Derive(ctx, "command", c.Name)

			d, err := loadDictionary(ctx, c, cmp)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			for key := range d.Keys() {
				if _, err := fmt.Fprintln(w, key); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// renderCommand returns a CLI command that executes a text/template with the
// dictionary as its data.
//
// Usage example:
//
//	dynamap --entry Name=Superman render --template '{{call (.Member "greet") (.Member "name")}}'
func renderCommand(cmp defaultdict.Comparer[string]) *cli.Command {
	return &cli.Command{
		Name:        "render",
		Description: "Execute a Go text/template; members are reachable through {{.Member \"name\"}}.",
		Usage:       "Renders a template against the dictionary.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "template",
				Aliases:  []string{"t"},
				Usage:    "Template text",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logger.Derive(ctx, "command", c.Name)

			d, err := loadDictionary(ctx, c, cmp)
			if err != nil {
				return err
			}

			tmpl, err := template.New("render").Parse(c.String("template"))
			if err != nil {
				return fmt.Errorf("parse template: %w", err)
			}

			w := c.Root().Writer
			if err := tmpl.Execute(w, d); err != nil {
				return fmt.Errorf("render template: %w", err)
			}

			_, err = io.WriteString(w, "\n")
			return err
		},
	}
}
