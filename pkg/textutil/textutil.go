// Package textutil implements the string exercises: length checks, copy and
// comparison, greeting concatenation and palindromes. Lengths and reversal
// work on user-perceived characters (grapheme clusters), not bytes.
package textutil

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
)

// Length counts grapheme clusters, so "ñandú" has length 5.
func Length(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// LongerThan reports whether s has more than n characters.
func LongerThan(s string, n int) bool {
	return Length(s) > n
}

// Compare orders a and b lexicographically: -1, 0 or +1.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}

// Greet appends name to the fixed greeting.
func Greet(name string) string {
	var b strings.Builder
	b.WriteString("Hola, ")
	b.WriteString(name)
	b.WriteString("!")
	return b.String()
}

func graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Reverse reverses s by grapheme cluster, keeping combining marks attached.
func Reverse(s string) string {
	gs := graphemes(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := len(gs) - 1; i >= 0; i-- {
		b.WriteString(gs[i])
	}
	return b.String()
}

type palindromeOptions struct {
	fold       bool
	skipSpaces bool
}

// PalindromeOption tunes IsPalindrome.
type PalindromeOption func(*palindromeOptions)

// FoldCase compares characters case-insensitively.
func FoldCase() PalindromeOption {
	return func(o *palindromeOptions) { o.fold = true }
}

// IgnoreSpaces drops whitespace before comparing.
func IgnoreSpaces() PalindromeOption {
	return func(o *palindromeOptions) { o.skipSpaces = true }
}

// IsPalindrome reports whether s reads the same in both directions.
// Without options the comparison is exact, character by character.
func IsPalindrome(s string, opts ...PalindromeOption) bool {
	var o palindromeOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.skipSpaces {
		s = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, s)
	}
	if o.fold {
		s = cases.Fold().String(s)
	}
	gs := graphemes(s)
	for i, j := 0, len(gs)-1; i < j; i, j = i+1, j-1 {
		if gs[i] != gs[j] {
			return false
		}
	}
	return true
}
