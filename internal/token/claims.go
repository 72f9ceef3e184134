package token

import "sort"

// ClaimSet records which token positions have been taken by an extractor
// during one title's pass. It is created fresh per title and shared across
// every pipeline that processes that title. Positions are only ever added,
// never removed.
type ClaimSet struct {
	claimed map[int]bool
}

// NewClaimSet creates an empty claim set.
func NewClaimSet() *ClaimSet {
	return &ClaimSet{claimed: make(map[int]bool)}
}

// Claim marks a single position as taken.
func (c *ClaimSet) Claim(pos int) {
	c.claimed[pos] = true
}

// ClaimAll marks every position in the slice as taken.
func (c *ClaimSet) ClaimAll(positions []int) {
	for _, pos := range positions {
		c.claimed[pos] = true
	}
}

// Claimed reports whether a position has been taken.
func (c *ClaimSet) Claimed(pos int) bool {
	return c.claimed[pos]
}

// AnyClaimed reports whether any of the positions has been taken.
func (c *ClaimSet) AnyClaimed(positions []int) bool {
	for _, pos := range positions {
		if c.claimed[pos] {
			return true
		}
	}
	return false
}

// Len returns the number of claimed positions.
func (c *ClaimSet) Len() int {
	return len(c.claimed)
}

// Positions returns the claimed positions in ascending order.
func (c *ClaimSet) Positions() []int {
	out := make([]int, 0, len(c.claimed))
	for pos := range c.claimed {
		out = append(out, pos)
	}
	sort.Ints(out)
	return out
}
