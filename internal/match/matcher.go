package match

import "github.com/ppiankov/gleaner/internal/token"

// Span is the outcome of one successful group match.
type Span struct {
	Emit []int // positions included in the output value
	All  []int // every position the group matched
}

// Find scans tokens left to right for the first start position where the
// whole group matches. Already-claimed positions are stepped over
// transparently before each atom is tested; a failed optional atom is
// skipped without advancing; a failed required atom abandons the start
// position. Returning false is the normal "no match", never an error.
func (g Group) Find(tokens []string, claims *token.ClaimSet) (Span, bool) {
	return g.find(tokens, claims, nil)
}

// find is Find with an additional local overlay of positions treated as
// claimed for this extractor only (used to guarantee termination when an
// extractor repeats without claiming).
func (g Group) find(tokens []string, claims *token.ClaimSet, local map[int]bool) (Span, bool) {
	taken := func(pos int) bool {
		return claims.Claimed(pos) || local[pos]
	}

	for start := 0; start < len(tokens); start++ {
		if taken(start) {
			continue
		}
		pos := start
		var emit, all []int
		ok := true
		for _, atom := range g {
			for pos < len(tokens) && taken(pos) {
				pos++
			}
			if pos >= len(tokens) {
				if atom.Optional {
					continue
				}
				// A required atom can never match past the end, at this
				// or any later start position.
				return Span{}, false
			}
			if atom.Matches(tokens[pos]) {
				if atom.Emit {
					emit = append(emit, pos)
				}
				all = append(all, pos)
				pos++
			} else if atom.Optional {
				continue
			} else {
				ok = false
				break
			}
		}
		if ok && len(all) > 0 {
			return Span{Emit: emit, All: all}, true
		}
	}
	return Span{}, false
}
