package match

import (
	"regexp"
	"strings"
)

// AtomKind discriminates the pattern atom variants.
type AtomKind int

const (
	KindLiteral AtomKind = iota // exact token text
	KindRegex                   // regular expression, anchored at token start
	KindAny                     // any one of a list of alternatives
)

// String returns the atom kind name.
func (k AtomKind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindRegex:
		return "regex"
	case KindAny:
		return "any"
	default:
		return "unknown"
	}
}

// Atom is one token-level rule. Matching is case-insensitive; Emit controls
// whether a matched position is included in the output span, Optional lets
// the matcher skip the atom without advancing when it fails.
type Atom struct {
	Kind         AtomKind
	Value        string         // literal text (KindLiteral)
	Pattern      string         // source pattern (KindRegex)
	Regex        *regexp.Regexp // compiled pattern, nil if compilation failed
	Alternatives []string       // alternative values (KindAny)
	Optional     bool
	Emit         bool
}

// Literal builds an exact-text atom.
func Literal(value string) Atom {
	return Atom{Kind: KindLiteral, Value: value, Emit: true}
}

// Regex builds a regular-expression atom. The pattern is matched
// case-insensitively against the start of the token, mirroring the
// original rule semantics. A pattern that fails to compile leaves Regex
// nil; Validate reports it at startup.
func Regex(pattern string) Atom {
	re, err := regexp.Compile("(?i)^(?:" + pattern + ")")
	a := Atom{Kind: KindRegex, Pattern: pattern, Emit: true}
	if err == nil {
		a.Regex = re
	}
	return a
}

// Any builds an alternatives atom matching any one of the given values.
func Any(values ...string) Atom {
	return Atom{Kind: KindAny, Alternatives: values, Emit: true}
}

// Opt marks the atom optional.
func (a Atom) Opt() Atom {
	a.Optional = true
	return a
}

// Hidden excludes the atom's position from the emitted span while still
// requiring it to match.
func (a Atom) Hidden() Atom {
	a.Emit = false
	return a
}

// Matches tests the atom against a single token.
func (a Atom) Matches(tok string) bool {
	lower := strings.ToLower(tok)
	switch a.Kind {
	case KindLiteral:
		return lower == strings.ToLower(a.Value)
	case KindRegex:
		if a.Regex == nil {
			return false
		}
		return a.Regex.MatchString(tok)
	case KindAny:
		for _, v := range a.Alternatives {
			if strings.ToLower(v) == lower {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Group is an ordered atom sequence that must match at claim-aware
// consecutive positions starting from some index.
type Group []Atom
