package token

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		title    string
		expected []string
	}{
		{
			"Dell Latitude 7490 i5-8350U 256GB SSD",
			[]string{"Dell", "Latitude", "7490", "i5-8350U", "256GB", "SSD"},
		},
		{
			"Intel Core i7, 16GB RAM; 512GB",
			[]string{"Intel", "Core", "i7", "16GB", "RAM", "512GB"},
		},
		{
			// Spaced slashes are their own tokens; embedded ones stay put.
			"i5-8250U / 7200U 128GB/256GB",
			[]string{"i5-8250U", "/", "7200U", "128GB/256GB"},
		},
		{
			"  multiple   spaces\tand tabs ",
			[]string{"multiple", "spaces", "and", "tabs"},
		},
		{"", nil},
		{" , ; ", nil},
	}

	for _, tt := range tests {
		got := Tokenize(tt.title)
		if len(got) == 0 && len(tt.expected) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.title, got, tt.expected)
		}
	}
}

func TestClaimSet(t *testing.T) {
	c := NewClaimSet()

	if c.Claimed(0) {
		t.Error("Expected fresh set to have no claims")
	}

	c.Claim(2)
	if !c.Claimed(2) {
		t.Error("Expected position 2 to be claimed")
	}
	if c.Claimed(1) {
		t.Error("Expected position 1 to stay unclaimed")
	}

	c.ClaimAll([]int{5, 3})
	if !c.Claimed(5) || !c.Claimed(3) {
		t.Error("Expected ClaimAll to claim every position")
	}

	if !c.AnyClaimed([]int{0, 1, 3}) {
		t.Error("Expected AnyClaimed to see position 3")
	}
	if c.AnyClaimed([]int{0, 1, 4}) {
		t.Error("Expected AnyClaimed to miss unclaimed positions")
	}

	if c.Len() != 3 {
		t.Errorf("Expected 3 claimed positions, got %d", c.Len())
	}
	if got := c.Positions(); !reflect.DeepEqual(got, []int{2, 3, 5}) {
		t.Errorf("Expected sorted positions [2 3 5], got %v", got)
	}
}
