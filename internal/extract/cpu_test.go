package extract

import (
	"strings"
	"testing"

	"github.com/ppiankov/gleaner/internal/token"
)

func runCPU(t *testing.T, title string) map[string]string {
	t.Helper()
	tokens := token.Tokenize(title)
	claims := token.NewClaimSet()
	attrs := NewCPU().Extract(tokens, claims)
	return attrs.Flatten().Map()
}

func TestCPU_FullISeriesModel(t *testing.T) {
	got := runCPU(t, "Intel Core i7-10700K @ 3.80GHz")

	want := map[string]string{
		"cpu_brand":      "Intel",
		"cpu_family":     "Core i7",
		"cpu_model":      "10700K",
		"cpu_suffix":     "K",
		"cpu_generation": "10th Gen",
		"cpu_speed":      "3.80GHz",
	}
	for key, value := range want {
		if got[key] != value {
			t.Errorf("Expected %s=%q, got %q", key, value, got[key])
		}
	}
}

func TestCPU_GenerationSlashPair(t *testing.T) {
	got := runCPU(t, "Intel Core 8th / 9th Gen")

	if got["cpu_generation"] != "8th Gen" {
		t.Errorf("Expected cpu_generation=%q, got %q", "8th Gen", got["cpu_generation"])
	}
	if got["cpu_generation2"] != "9th Gen" {
		t.Errorf("Expected cpu_generation2=%q, got %q", "9th Gen", got["cpu_generation2"])
	}
}

func TestCPU_PackedGenerationList(t *testing.T) {
	got := runCPU(t, "Intel Core 2/3/4th Gen")

	want := []string{"2nd Gen", "3rd Gen", "4th Gen"}
	keys := []string{"cpu_generation", "cpu_generation2", "cpu_generation3"}
	for i, key := range keys {
		if got[key] != want[i] {
			t.Errorf("Expected %s=%q, got %q", key, want[i], got[key])
		}
	}
}

func TestCPU_IncompleteSlashPair(t *testing.T) {
	got := runCPU(t, "Intel Core i5-8250U / 7200U")

	if got["cpu_model"] != "8250U" {
		t.Errorf("Expected cpu_model=%q, got %q", "8250U", got["cpu_model"])
	}
	if got["cpu_model2"] != "7200U" {
		t.Errorf("Expected cpu_model2=%q, got %q", "7200U", got["cpu_model2"])
	}
	if got["cpu_generation"] != "8th Gen" {
		t.Errorf("Expected cpu_generation=%q, got %q", "8th Gen", got["cpu_generation"])
	}
	if got["cpu_generation2"] != "7th Gen" {
		t.Errorf("Expected cpu_generation2=%q, got %q", "7th Gen", got["cpu_generation2"])
	}
	// Both halves are the same family; it must not be duplicated.
	if got["cpu_family"] != "Core i5" || got["cpu_family2"] != "" {
		t.Errorf("Expected a single Core i5 family, got %q / %q", got["cpu_family"], got["cpu_family2"])
	}
}

func TestCPU_XeonWithVersion(t *testing.T) {
	got := runCPU(t, "Intel Xeon E5-2687W v4")

	if got["cpu_brand"] != "Intel" {
		t.Errorf("Expected cpu_brand=%q, got %q", "Intel", got["cpu_brand"])
	}
	if got["cpu_family"] != "Xeon E5" {
		t.Errorf("Expected cpu_family=%q, got %q", "Xeon E5", got["cpu_family"])
	}
	if got["cpu_model"] != "E5-2687W v4" {
		t.Errorf("Expected cpu_model=%q, got %q", "E5-2687W v4", got["cpu_model"])
	}
	if got["cpu_generation"] != "4th Gen" {
		t.Errorf("Expected cpu_generation=%q, got %q", "4th Gen", got["cpu_generation"])
	}
}

func TestCPU_XeonNamedSeries(t *testing.T) {
	got := runCPU(t, "Intel Xeon Gold 6142 Processor")

	if got["cpu_family"] != "Xeon Gold" {
		t.Errorf("Expected cpu_family=%q, got %q", "Xeon Gold", got["cpu_family"])
	}
	if got["cpu_model"] != "6142" {
		t.Errorf("Expected cpu_model=%q, got %q", "6142", got["cpu_model"])
	}
}

func TestCPU_CoreUltra(t *testing.T) {
	got := runCPU(t, "Intel Core Ultra 7 155H Laptop")

	if got["cpu_family"] != "Core Ultra 7" {
		t.Errorf("Expected cpu_family=%q, got %q", "Core Ultra 7", got["cpu_family"])
	}
	if got["cpu_model"] != "155H" {
		t.Errorf("Expected cpu_model=%q, got %q", "155H", got["cpu_model"])
	}
	if got["cpu_suffix"] != "H" {
		t.Errorf("Expected cpu_suffix=%q, got %q", "H", got["cpu_suffix"])
	}
	if got["cpu_generation"] != "1st Gen Ultra" {
		t.Errorf("Expected cpu_generation=%q, got %q", "1st Gen Ultra", got["cpu_generation"])
	}
}

func TestCPU_AppleMChip(t *testing.T) {
	got := runCPU(t, "Apple MacBook Pro 16 M1 Max 32GB")

	if got["cpu_brand"] != "Apple" {
		t.Errorf("Expected cpu_brand=%q, got %q", "Apple", got["cpu_brand"])
	}
	if got["cpu_family"] != "Apple M1 Max" {
		t.Errorf("Expected cpu_family=%q, got %q", "Apple M1 Max", got["cpu_family"])
	}
	if got["cpu_model"] != "M1 Max" {
		t.Errorf("Expected cpu_model=%q, got %q", "M1 Max", got["cpu_model"])
	}
	if got["cpu_generation"] != "1st Gen Apple Silicon" {
		t.Errorf("Expected cpu_generation=%q, got %q", "1st Gen Apple Silicon", got["cpu_generation"])
	}
}

func TestCPU_AppleMRejectedInIntelContext(t *testing.T) {
	// "M1" here is a product model fragment, not an Apple chip.
	got := runCPU(t, "Lenovo ThinkPad X1 Carbon M1 Intel Core i5-8250U")

	if got["cpu_brand"] == "Apple" {
		t.Errorf("Expected no Apple brand in an Intel title, got %q", got["cpu_brand"])
	}
	for key, value := range got {
		if strings.HasPrefix(key, "cpu_family") && strings.HasPrefix(value, "Apple") {
			t.Errorf("Expected no Apple family, got %s=%q", key, value)
		}
	}
}

func TestCPU_QuantityBeforeModel(t *testing.T) {
	got := runCPU(t, "2x Intel Xeon E5-2670 Server CPU")

	if got["cpu_quantity"] != "2x" {
		t.Errorf("Expected cpu_quantity=%q, got %q", "2x", got["cpu_quantity"])
	}
}

func TestCPU_QuantityWordNormalized(t *testing.T) {
	got := runCPU(t, "Dual Xeon E5-2670 v2")

	if got["cpu_quantity"] != "2x" {
		t.Errorf("Expected cpu_quantity=%q, got %q", "2x", got["cpu_quantity"])
	}
}

func TestCPU_QuantityIgnoresCoreCount(t *testing.T) {
	got := runCPU(t, "Intel Quad Core i5-8250U")

	if got["cpu_quantity"] != "" {
		t.Errorf("Expected no cpu_quantity for core-count phrasing, got %q", got["cpu_quantity"])
	}
}

func TestCPU_SpeedNormalization(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Intel Core i5-6500 3.2GHz", "3.20GHz"},
		{"Intel Core i7-8550U @ 1.80GHz", "1.80GHz"},
		{"Intel Pentium 4 CPU 2800MHz", "2800.00MHz"},
	}
	for _, tc := range cases {
		got := runCPU(t, tc.title)
		if got["cpu_speed"] != tc.want {
			t.Errorf("Title %q: expected cpu_speed=%q, got %q", tc.title, tc.want, got["cpu_speed"])
		}
	}
}

func TestCPU_MHzRequiresContext(t *testing.T) {
	// MHz next to a RAM marker must not be read as a CPU speed.
	got := runCPU(t, "Intel Core i5 Laptop 8GB DDR4 2666MHz RAM")

	if got["cpu_speed"] != "" {
		t.Errorf("Expected no cpu_speed for RAM frequency, got %q", got["cpu_speed"])
	}
}

func TestCPU_SystemContextSuppressesGeneration(t *testing.T) {
	got := runCPU(t, "Dell PowerEdge Server Intel 8th Gen")

	if got["cpu_generation"] != "" {
		t.Errorf("Expected generation suppressed in system title, got %q", got["cpu_generation"])
	}
}

func TestCPU_CompatibilityPhraseSuppressesGeneration(t *testing.T) {
	got := runCPU(t, "Motherboard supports Intel Core 8th Gen processors")

	if got["cpu_generation"] != "" {
		t.Errorf("Expected generation suppressed in compatibility title, got %q", got["cpu_generation"])
	}
}

func TestCPU_StandaloneFamilyPair(t *testing.T) {
	got := runCPU(t, "Intel Core i9 / i7 Gaming Desktop")

	if got["cpu_family"] != "Core i9" {
		t.Errorf("Expected cpu_family=%q, got %q", "Core i9", got["cpu_family"])
	}
	if got["cpu_family2"] != "Core i7" {
		t.Errorf("Expected cpu_family2=%q, got %q", "Core i7", got["cpu_family2"])
	}
}

func TestCPU_PentiumCeleronPair(t *testing.T) {
	got := runCPU(t, "Intel Pentium Silver / Celeron Laptop")

	if got["cpu_family"] != "Pentium Silver" {
		t.Errorf("Expected cpu_family=%q, got %q", "Pentium Silver", got["cpu_family"])
	}
	if got["cpu_family2"] != "Celeron" {
		t.Errorf("Expected cpu_family2=%q, got %q", "Celeron", got["cpu_family2"])
	}
}

func TestCPU_NoContextNoOutput(t *testing.T) {
	got := runCPU(t, "USB-C Charging Cable 6ft Braided")

	if len(got) != 0 {
		t.Errorf("Expected no CPU attributes, got %v", got)
	}
}

func TestCPU_ClaimsGrowMonotonically(t *testing.T) {
	tokens := token.Tokenize("Intel Core i7-10700K @ 3.80GHz")
	claims := token.NewClaimSet()
	before := claims.Len()

	NewCPU().Extract(tokens, claims)
	after := claims.Len()
	if after < before {
		t.Fatalf("Claim set shrank: %d -> %d", before, after)
	}

	NewCPU().Extract(tokens, claims)
	if claims.Len() < after {
		t.Fatalf("Claim set shrank on second run: %d -> %d", after, claims.Len())
	}
}

// Every (pattern, suffix) pair in the generation table must resolve back
// to its own label when the x-digits are filled in.
func TestCPU_GenerationTableRoundTrip(t *testing.T) {
	for _, gen := range intelGenerations {
		for _, m := range gen.models {
			family := "Core " + m.pattern[:2]
			concrete := strings.ReplaceAll(m.pattern, "x", "0")
			for _, suffix := range m.suffixes {
				mdl := concrete + suffix
				if got := intelGeneration(mdl, family); got != gen.label {
					t.Errorf("Model %q (family %q): expected %q, got %q", mdl, family, gen.label, got)
				}
			}
		}
	}
}
