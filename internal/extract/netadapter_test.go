package extract

import (
	"testing"

	"github.com/ppiankov/gleaner/internal/token"
)

func runNetAdapter(t *testing.T, title string) map[string]string {
	t.Helper()
	tokens := token.Tokenize(title)
	claims := token.NewClaimSet()
	attrs := NewNetAdapter().Extract(tokens, claims)
	return attrs.Flatten().Map()
}

func TestNetAdapter_BrandAfterContext(t *testing.T) {
	got := runNetAdapter(t, "Network Adapter Intel X520-DA2 10GbE")

	if got["adapter_brand"] != "Intel" {
		t.Errorf("Expected adapter_brand=%q, got %q", "Intel", got["adapter_brand"])
	}
}

func TestNetAdapter_BrandBeforeContext(t *testing.T) {
	got := runNetAdapter(t, "Mellanox Ethernet Adapter Dual Port")

	if got["adapter_brand"] != "Mellanox" {
		t.Errorf("Expected adapter_brand=%q, got %q", "Mellanox", got["adapter_brand"])
	}
	if got["adapter_ports"] != "Dual Port" {
		t.Errorf("Expected adapter_ports=%q, got %q", "Dual Port", got["adapter_ports"])
	}
}

func TestNetAdapter_MellanoxSeries(t *testing.T) {
	got := runNetAdapter(t, "Mellanox ConnectX-4 NIC 25GbE")

	if got["adapter_series"] != "ConnectX-4" {
		t.Errorf("Expected adapter_series=%q, got %q", "ConnectX-4", got["adapter_series"])
	}
	if got["adapter_speed"] != "25GbE" {
		t.Errorf("Expected adapter_speed=%q, got %q", "25GbE", got["adapter_speed"])
	}
}

func TestNetAdapter_IntelSeries(t *testing.T) {
	got := runNetAdapter(t, "Intel X710-DA4 Ethernet Converged Network Adapter")

	if got["adapter_series"] != "X710-DA4" {
		t.Errorf("Expected adapter_series=%q, got %q", "X710-DA4", got["adapter_series"])
	}
}

func TestNetAdapter_InfiniBandSpeed(t *testing.T) {
	got := runNetAdapter(t, "Mellanox InfiniBand EDR Adapter Card")

	if got["adapter_speed"] != "EDR" {
		t.Errorf("Expected adapter_speed=%q, got %q", "EDR", got["adapter_speed"])
	}
}

func TestNetAdapter_GigabitSpeed(t *testing.T) {
	got := runNetAdapter(t, "Broadcom NIC 10 Gigabit Ethernet Adapter")

	if got["adapter_speed"] != "10 Gigabit" {
		t.Errorf("Expected adapter_speed=%q, got %q", "10 Gigabit", got["adapter_speed"])
	}
}

func TestNetAdapter_FormFactor(t *testing.T) {
	got := runNetAdapter(t, "Intel Ethernet Controller PCIe x8 Adapter Low Profile Bracket")

	if got["adapter_form_factor"] != "PCIe x8" {
		t.Errorf("Expected adapter_form_factor=%q, got %q", "PCIe x8", got["adapter_form_factor"])
	}
	if got["adapter_form_factor2"] != "Low Profile" {
		t.Errorf("Expected adapter_form_factor2=%q, got %q", "Low Profile", got["adapter_form_factor2"])
	}
}

func TestNetAdapter_ExcludedByComputeVocabulary(t *testing.T) {
	got := runNetAdapter(t, "Dell PowerEdge Server Intel CPU Network Adapter Included")

	if len(got) != 0 {
		t.Errorf("Expected no adapter attributes next to CPU vocabulary, got %v", got)
	}
}

func TestNetAdapter_NoAdapterContextNoOutput(t *testing.T) {
	got := runNetAdapter(t, "Intel Core i7 Desktop Tower")

	if len(got) != 0 {
		t.Errorf("Expected no adapter attributes, got %v", got)
	}
}
