package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gabapcia/dynamap/pkg/dynamic"
)

// registerBuiltins stores the callable members every dictionary starts with.
//
//	Upper(s)             s in upper case
//	Lower(s)             s in lower case
//	Greet(name)          "Hello, <name>!"
//	Join(sep, parts...)  parts joined by sep
//	Len(s)               number of runes in s
func registerBuiltins(d *dynamic.Dictionary) {
	d.SetMember("Upper", strings.ToUpper)
	d.SetMember("Lower", strings.ToLower)
	d.SetMember("Greet", dynamic.Func(greet))
	d.SetMember("Join", func(sep string, parts ...string) string {
		return strings.Join(parts, sep)
	})
	d.SetMember("Len", utf8.RuneCountInString)
}

func greet(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("greet: expected 1 argument, got %d", len(args))
	}

	return fmt.Sprintf("Hello, %v!", args[0]), nil
}
