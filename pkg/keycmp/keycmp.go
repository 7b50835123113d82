// Package keycmp provides string key-equality strategies for defaultdict
// dictionaries: exact ordinal comparison, ordinal case-insensitive comparison
// and culture-invariant case-insensitive comparison.
//
// All comparers hash with xxhash over a normalized form of the key, so keys
// that compare equal always land in the same bucket.
package keycmp

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gabapcia/dynamap/pkg/defaultdict"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
)

// Names accepted by Parse.
const (
	NameOrdinal             = "ordinal"
	NameOrdinalIgnoreCase   = "ordinal-ignore-case"
	NameInvariantIgnoreCase = "invariant-ignore-case"
)

// ErrUnknownComparison is returned by Parse for an unrecognized name.
var ErrUnknownComparison = errors.New("unknown key comparison")

// ordinal compares keys byte by byte.
type ordinal struct{}

// Ordinal returns a case-sensitive comparer.
func Ordinal() defaultdict.Comparer[string] {
	return ordinal{}
}

func (ordinal) Equal(a, b string) bool {
	return a == b
}

func (ordinal) Hash(k string) uint64 {
	return xxhash.Sum64String(k)
}

// ordinalIgnoreCase compares keys under Unicode simple case folding, the same
// relation strings.EqualFold implements.
type ordinalIgnoreCase struct{}

// OrdinalIgnoreCase returns a comparer that ignores letter case rune by rune
// without applying any language-specific rules.
func OrdinalIgnoreCase() defaultdict.Comparer[string] {
	return ordinalIgnoreCase{}
}

func (ordinalIgnoreCase) Equal(a, b string) bool {
	return strings.EqualFold(a, b)
}

func (ordinalIgnoreCase) Hash(k string) uint64 {
	buf := make([]byte, 0, len(k))
	for _, r := range k {
		buf = utf8.AppendRune(buf, foldRune(r))
	}

	return xxhash.Sum64(buf)
}

// foldRune maps r to the smallest rune of its simple case folding orbit, so
// every rune EqualFold treats as equal maps to the same representative.
func foldRune(r rune) rune {
	if r < utf8.RuneSelf {
		if 'a' <= r && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}

	lowest := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < lowest {
			lowest = f
		}
	}

	return lowest
}

// invariantIgnoreCase compares keys after full Unicode case folding.
type invariantIgnoreCase struct {
	folder cases.Caser
}

// InvariantIgnoreCase returns a comparer that applies culture-invariant full
// case folding, so "Straße" and "STRASSE" address the same entry.
func InvariantIgnoreCase() defaultdict.Comparer[string] {
	return invariantIgnoreCase{folder: cases.Fold()}
}

func (c invariantIgnoreCase) Equal(a, b string) bool {
	return a == b || c.folder.String(a) == c.folder.String(b)
}

func (c invariantIgnoreCase) Hash(k string) uint64 {
	return xxhash.Sum64String(c.folder.String(k))
}

// Parse returns the comparer registered under name.
//
// Names are matched case-insensitively and surrounding whitespace is ignored.
func Parse(name string) (defaultdict.Comparer[string], error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameOrdinal:
		return Ordinal(), nil
	case NameOrdinalIgnoreCase:
		return OrdinalIgnoreCase(), nil
	case NameInvariantIgnoreCase:
		return InvariantIgnoreCase(), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownComparison, name)
}
