package extract

import (
	"testing"

	"github.com/ppiankov/gleaner/internal/token"
)

func runLot(t *testing.T, title string) map[string]string {
	t.Helper()
	tokens := token.Tokenize(title)
	claims := token.NewClaimSet()
	attrs := NewLot().Extract(tokens, claims)
	return attrs.Flatten().Map()
}

func TestLot_LotOf(t *testing.T) {
	got := runLot(t, "Dell Latitude Laptops Lot of 5")

	if got["lot"] != "5" {
		t.Errorf("Expected lot=%q, got %q", "5", got["lot"])
	}
}

func TestLot_LotOfParenthesized(t *testing.T) {
	got := runLot(t, "Lot of (10) HP Desktops")

	if got["lot"] != "10" {
		t.Errorf("Expected lot=%q, got %q", "10", got["lot"])
	}
}

func TestLot_GluedParenQuantity(t *testing.T) {
	got := runLot(t, "Lot (4)Asus Chromebooks")

	if got["lot"] != "4" {
		t.Errorf("Expected lot=%q, got %q", "4", got["lot"])
	}
}

func TestLot_QuantityShape(t *testing.T) {
	got := runLot(t, "5x Dell OptiPlex 7040 SFF")

	if got["lot"] != "5" {
		t.Errorf("Expected lot=%q, got %q", "5", got["lot"])
	}
}

func TestLot_ParenShapeBeforeProduct(t *testing.T) {
	got := runLot(t, "(6) Dell UltraSharp Monitors")

	if got["lot"] != "6" {
		t.Errorf("Expected lot=%q, got %q", "6", got["lot"])
	}
}

func TestLot_CPUQuantityNotALot(t *testing.T) {
	got := runLot(t, "2x Intel Xeon E5-2670 Matched Pair")

	if got["lot"] != "" {
		t.Errorf("Expected no lot for a CPU quantity, got %q", got["lot"])
	}
}

func TestLot_PhoneContextOverridesBrand(t *testing.T) {
	// Samsung is both a CPU vendor and a phone maker; Galaxy decides.
	got := runLot(t, "3x Samsung Galaxy S10 Unlocked")

	if got["lot"] != "3" {
		t.Errorf("Expected lot=%q, got %q", "3", got["lot"])
	}
}

func TestLot_ClaimedShapeSkipped(t *testing.T) {
	tokens := token.Tokenize("2x Intel Xeon E5-2670")
	claims := token.NewClaimSet()
	claims.Claim(0)

	got := NewLot().Extract(tokens, claims).Flatten().Map()
	if got["lot"] != "" {
		t.Errorf("Expected no lot for a claimed quantity token, got %q", got["lot"])
	}
}

func TestLot_GluedModelList(t *testing.T) {
	got := runLot(t, "Dell Latitude 5420+5540 Laptops Mixed")

	if got["lot"] != "2" {
		t.Errorf("Expected lot=%q, got %q", "2", got["lot"])
	}
}

func TestLot_SpacedModelList(t *testing.T) {
	got := runLot(t, "Dell Latitude 5420 + 5540 + 5550 Mixed Grade")

	if got["lot"] != "3" {
		t.Errorf("Expected lot=%q, got %q", "3", got["lot"])
	}
}

func TestLot_LeadingCount(t *testing.T) {
	got := runLot(t, "4 HP ProDesk 600 G2 Mini Computers")

	if got["lot"] != "4" {
		t.Errorf("Expected lot=%q, got %q", "4", got["lot"])
	}
}

func TestLot_NoQuantityNoOutput(t *testing.T) {
	got := runLot(t, "Dell Latitude 7490 i5 Laptop")

	if got["lot"] != "" {
		t.Errorf("Expected no lot, got %q", got["lot"])
	}
}
