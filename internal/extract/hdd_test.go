package extract

import (
	"testing"

	"github.com/ppiankov/gleaner/internal/token"
)

func runHDD(t *testing.T, title string) map[string]string {
	t.Helper()
	tokens := token.Tokenize(title)
	claims := token.NewClaimSet()
	attrs := NewHDD().Extract(tokens, claims)
	return attrs.Flatten().Map()
}

func TestHDD_FullDriveListing(t *testing.T) {
	got := runHDD(t, "HGST 8TB HDD 7200RPM SAS 12Gb/s HUH721008AL5200 19 Hrs")

	want := map[string]string{
		"hdd_interface":     "SAS",
		"hdd_rpm":           "7200RPM",
		"hdd_transfer_rate": "12Gb/s",
		"hdd_model_number":  "HUH721008AL5200",
		"hdd_usage_hours":   "19 Hours",
	}
	for key, value := range want {
		if got[key] != value {
			t.Errorf("Expected %s=%q, got %q", key, value, got[key])
		}
	}
}

func TestHDD_TwoTokenRPM(t *testing.T) {
	got := runHDD(t, "Seagate Hard Drive 5400 RPM")

	if got["hdd_rpm"] != "5400RPM" {
		t.Errorf("Expected hdd_rpm=%q, got %q", "5400RPM", got["hdd_rpm"])
	}
}

func TestHDD_FormFactor(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{`WD 3.5" Hard Drive 7200RPM`, `3.5"`},
		{"Toshiba 2.5in HDD For Laptop", `2.5"`},
	}
	for _, tc := range cases {
		got := runHDD(t, tc.title)
		if got["hdd_form_factor"] != tc.want {
			t.Errorf("Title %q: expected hdd_form_factor=%q, got %q", tc.title, tc.want, got["hdd_form_factor"])
		}
	}
}

func TestHDD_PartNumber(t *testing.T) {
	got := runHDD(t, "HGST Hard Drive 0B36431 Tested")

	if got["hdd_part_number"] != "0B36431" {
		t.Errorf("Expected hdd_part_number=%q, got %q", "0B36431", got["hdd_part_number"])
	}
	if got["hdd_model_number"] != "" {
		t.Errorf("Expected no hdd_model_number for a leading-zero part, got %q", got["hdd_model_number"])
	}
}

func TestHDD_InterfaceInCompoundToken(t *testing.T) {
	got := runHDD(t, "Seagate Hard Drive SATA6Gb/s")

	if got["hdd_interface"] != "SATA" {
		t.Errorf("Expected hdd_interface=%q, got %q", "SATA", got["hdd_interface"])
	}
}

func TestHDD_GPUModelRejected(t *testing.T) {
	got := runHDD(t, "Gaming Tower RTX3080TI No Hard Drive")

	if got["hdd_model_number"] != "" {
		t.Errorf("Expected no hdd_model_number for a GPU token, got %q", got["hdd_model_number"])
	}
}

func TestHDD_NoDriveContextNoOutput(t *testing.T) {
	got := runHDD(t, "Dell Latitude 7490 i5 Laptop 256GB")

	if len(got) != 0 {
		t.Errorf("Expected no drive attributes without drive context, got %v", got)
	}
}
