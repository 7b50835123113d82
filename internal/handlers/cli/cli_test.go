package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/gabapcia/dynamap/internal/pkg/logger"
	"github.com/gabapcia/dynamap/pkg/defaultdict"
	"github.com/gabapcia/dynamap/pkg/dynamic"
	"github.com/gabapcia/dynamap/pkg/keycmp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestMain(m *testing.M) {
	if err := logger.Init("error"); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

// runApp executes the app with args and returns what it wrote.
func runApp(t *testing.T, cmp defaultdict.Comparer[string], args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := newApp(cmp, &out).Run(t.Context(), append([]string{"dynamap"}, args...))
	return out.String(), err
}

func TestRun(t *testing.T) {
	// Save original os.Args to restore after tests
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	t.Run("should show help without error", func(t *testing.T) {
		os.Args = []string{"dynamap", "--help"}

		err := Run(t.Context(), keycmp.InvariantIgnoreCase())

		assert.NoError(t, err)
	})

	t.Run("should propagate command errors", func(t *testing.T) {
		os.Args = []string{"dynamap", "invoke", "--member", "NoSuchMethod"}

		err := Run(t.Context(), keycmp.InvariantIgnoreCase())

		assert.ErrorIs(t, err, dynamic.ErrNoSuchMember)
	})
}

func TestNewApp(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		app := newApp(keycmp.Ordinal(), &bytes.Buffer{})

		assert.Equal(t, "dynamap", app.Name)
		require.Len(t, app.Flags, 2)

		entryFlag := app.Flags[0].(*cli.StringSliceFlag)
		assert.Equal(t, "entry", entryFlag.Name)

		var names []string
		for _, c := range app.Commands {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"get", "invoke", "keys", "render"}, names)
	})
}

func TestGetCommand(t *testing.T) {
	t.Run("should read members case-insensitively", func(t *testing.T) {
		out, err := runApp(t, keycmp.InvariantIgnoreCase(),
			"--entry", "SuperHeroName=Superman",
			"get", "--key", "SUPERHERONAME", "--key", "superheroname", "--key", "sUpErHeRoNaMe")

		require.NoError(t, err)
		assert.Equal(t, "Superman\nSuperman\nSuperman\n", out)
	})

	t.Run("should print empty line for unset member", func(t *testing.T) {
		out, err := runApp(t, keycmp.InvariantIgnoreCase(),
			"get", "--key", "FirstName", "--key", "greet")

		require.NoError(t, err)
		assert.Equal(t, "\n<func>\n", out)
	})

	t.Run("should honour case-sensitive comparison", func(t *testing.T) {
		out, err := runApp(t, keycmp.Ordinal(),
			"--entry", "Name=Clark",
			"get", "--key", "name", "--key", "Name")

		require.NoError(t, err)
		assert.Equal(t, "\nClark\n", out)
	})

	t.Run("should keep value text after the first equals sign", func(t *testing.T) {
		out, err := runApp(t, keycmp.InvariantIgnoreCase(),
			"--entry", "Expr=a=b",
			"get", "--key", "expr")

		require.NoError(t, err)
		assert.Equal(t, "a=b\n", out)
	})

	t.Run("should fail on malformed entry", func(t *testing.T) {
		_, err := runApp(t, keycmp.InvariantIgnoreCase(),
			"--entry", "novalue",
			"get", "--key", "x")

		assert.ErrorIs(t, err, ErrMalformedEntry)
		assert.Contains(t, err.Error(), `"novalue"`)
	})

	t.Run("should fail when key flag is missing", func(t *testing.T) {
		_, err := runApp(t, keycmp.InvariantIgnoreCase(), "get")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "key")
	})
}

func TestInvokeCommand(t *testing.T) {
	t.Run("should invoke a builtin Func", func(t *testing.T) {
		out, err := runApp(t, keycmp.InvariantIgnoreCase(),
			"invoke", "--member", "greet", "--arg", "World")

		require.NoError(t, err)
		assert.Equal(t, "Hello, World!\n", out)
	})

	t.Run("should invoke a reflective builtin", func(t *testing.T) {
		out, err := runApp(t, keycmp.InvariantIgnoreCase(),
			"invoke", "-m", "JOIN", "-a", "+", "-a", "a", "-a", "b")

		require.NoError(t, err)
		assert.Equal(t, "a+b\n", out)
	})

	t.Run("should fail for missing member", func(t *testing.T) {
		_, err := runApp(t, keycmp.InvariantIgnoreCase(),
			"invoke", "--member", "NoSuchMethod")

		assert.ErrorIs(t, err, dynamic.ErrNoSuchMember)
	})

	t.Run("should fail for non-callable member", func(t *testing.T) {
		_, err := runApp(t, keycmp.InvariantIgnoreCase(),
			"--entry", "Name=Superman",
			"invoke", "--member", "name")

		assert.ErrorIs(t, err, dynamic.ErrNoSuchMember)
	})

	t.Run("entries replace builtins", func(t *testing.T) {
		_, err := runApp(t, keycmp.InvariantIgnoreCase(),
			"--entry", "greet=hi",
			"invoke", "--member", "Greet", "--arg", "World")

		assert.ErrorIs(t, err, dynamic.ErrNoSuchMember)
	})

	t.Run("should surface argument errors", func(t *testing.T) {
		_, err := runApp(t, keycmp.InvariantIgnoreCase(),
			"invoke", "--member", "Upper")

		assert.ErrorIs(t, err, dynamic.ErrInvalidArguments)
	})
}

func TestKeysCommand(t *testing.T) {
	t.Run("should list keys in insertion order", func(t *testing.T) {
		out, err := runApp(t, keycmp.InvariantIgnoreCase(),
			"--no-builtins",
			"--entry", "Name=a", "--entry", "City=b", "--entry", "NAME=c",
			"keys")

		require.NoError(t, err)
		assert.Equal(t, "Name\nCity\n", out)
	})

	t.Run("should include builtins by default", func(t *testing.T) {
		out, err := runApp(t, keycmp.InvariantIgnoreCase(), "keys")

		require.NoError(t, err)
		assert.Equal(t, []string{"Upper", "Lower", "Greet", "Join", "Len"}, strings.Fields(out))
	})
}

func TestRenderCommand(t *testing.T) {
	t.Run("should render members and calls", func(t *testing.T) {
		out, err := runApp(t, keycmp.InvariantIgnoreCase(),
			"--entry", "Name=Superman",
			"render", "--template", `{{call (.Member "greet") (.Member "NAME")}}`)

		require.NoError(t, err)
		assert.Equal(t, "Hello, Superman!\n", out)
	})

	t.Run("should fail on invalid template", func(t *testing.T) {
		_, err := runApp(t, keycmp.InvariantIgnoreCase(),
			"render", "--template", "{{")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse template")
	})
}
