package pipeline

import (
	"testing"
)

func TestNew_ValidatesExtractors(t *testing.T) {
	if _, err := New(); err != nil {
		t.Fatalf("Expected pipeline to build, got %v", err)
	}
}

func extractAttrs(t *testing.T, title string) map[string]string {
	t.Helper()
	p, err := New()
	if err != nil {
		t.Fatalf("Expected pipeline to build, got %v", err)
	}
	res := p.ExtractTitle(title)
	if res.Title != title {
		t.Errorf("Expected title %q, got %q", title, res.Title)
	}
	if res.ExtractedAt.IsZero() {
		t.Error("Expected ExtractedAt to be set")
	}
	return res.Attributes.Map()
}

func TestExtractTitle_CPULaptop(t *testing.T) {
	attrs := extractAttrs(t, "Dell Latitude 7490 Intel Core i7-10700K 3.80GHz")

	expected := map[string]string{
		"cpu_brand":      "Intel",
		"cpu_family":     "Core i7",
		"cpu_model":      "10700K",
		"cpu_suffix":     "K",
		"cpu_generation": "10th Gen",
		"cpu_speed":      "3.80GHz",
	}
	for key, want := range expected {
		if got := attrs[key]; got != want {
			t.Errorf("Expected %s %q, got %q", key, want, got)
		}
	}
}

func TestExtractTitle_StorageNotConfusedWithRAM(t *testing.T) {
	attrs := extractAttrs(t, "Dell Latitude Laptop 256GB SSD 16GB RAM")

	if got := attrs["storage_capacity1"]; got != "256GB" {
		t.Errorf("Expected storage_capacity1 256GB, got %q", got)
	}
	if got, ok := attrs["storage_capacity"]; ok {
		t.Errorf("Expected the capacity to be numbered from 1, got storage_capacity %q", got)
	}
	if got := attrs["storage_type"]; got != "SSD" {
		t.Errorf("Expected storage_type SSD, got %q", got)
	}
	if got, ok := attrs["storage_capacity2"]; ok {
		t.Errorf("Expected RAM capacity to stay out of storage, got storage_capacity2 %q", got)
	}
}

func TestExtractTitle_AbsentStorageMergedOnce(t *testing.T) {
	attrs := extractAttrs(t, "Dell Latitude 7490 No SSD")

	if got := attrs["storage_status"]; got != "Not Included" {
		t.Errorf("Expected storage_status Not Included, got %q", got)
	}
	if got := attrs["storage_type"]; got != "SSD" {
		t.Errorf("Expected storage_type SSD, got %q", got)
	}
	// The storage and status passes both see the absence; the merge keeps
	// one copy.
	if got, ok := attrs["storage_status2"]; ok {
		t.Errorf("Expected a single storage_status, got duplicate %q", got)
	}
}

func TestExtractTitle_Lot(t *testing.T) {
	attrs := extractAttrs(t, "Lot of 5 Dell Latitude Laptops")

	if got := attrs["lot"]; got != "5" {
		t.Errorf("Expected lot 5, got %q", got)
	}
}

func TestExtractTitle_GenerationSlashPair(t *testing.T) {
	attrs := extractAttrs(t, "Intel Core i5 2nd/3rd Gen Laptop")

	if got := attrs["cpu_generation"]; got != "2nd Gen" {
		t.Errorf("Expected cpu_generation 2nd Gen, got %q", got)
	}
	if got := attrs["cpu_generation2"]; got != "3rd Gen" {
		t.Errorf("Expected cpu_generation2 3rd Gen, got %q", got)
	}
	if got := attrs["cpu_family"]; got != "Core i5" {
		t.Errorf("Expected cpu_family Core i5, got %q", got)
	}
}

func TestExtractTitle_PrimaryBatteryAbsence(t *testing.T) {
	attrs := extractAttrs(t, "Dell Latitude E5470 No Primary Battery")

	if got := attrs["battery_status"]; got != "One Battery Included" {
		t.Errorf("Expected battery_status One Battery Included, got %q", got)
	}
}

func TestExtractTitle_NoAttributes(t *testing.T) {
	attrs := extractAttrs(t, "Vintage Wooden Desk Organizer")

	if len(attrs) != 0 {
		t.Errorf("Expected no attributes, got %v", attrs)
	}
}

func TestExtractTitle_FreshClaimsPerTitle(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("Expected pipeline to build, got %v", err)
	}

	// Same title twice must yield identical attributes: claims from the
	// first run must not leak into the second.
	first := p.ExtractTitle("Dell Latitude 7490 i5-8350U 256GB SSD").Attributes
	second := p.ExtractTitle("Dell Latitude 7490 i5-8350U 256GB SSD").Attributes

	if len(first) != len(second) {
		t.Fatalf("Expected identical runs, got %d then %d attributes", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Expected %v at index %d, got %v", first[i], i, second[i])
		}
	}
}
