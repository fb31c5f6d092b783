package prelude

import "regexp"

// Regexp is a compiled regular expression
type Regexp = regexp.Regexp

// IgnoreCase is the flag prefix making a pattern case-insensitive:
//
//	Compile(IgnoreCase + "hello")
const IgnoreCase = "(?i)"

// Compile parses a regular expression
func Compile(expr string) (*Regexp, error) {
	return regexp.Compile(expr)
}

// MustCompile is like Compile but panics on an invalid expression
func MustCompile(expr string) *Regexp {
	return regexp.MustCompile(expr)
}
