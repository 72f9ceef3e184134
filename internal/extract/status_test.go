package extract

import (
	"testing"

	"github.com/ppiankov/gleaner/internal/token"
)

func runStatus(t *testing.T, title string) map[string]string {
	t.Helper()
	tokens := token.Tokenize(title)
	claims := token.NewClaimSet()
	attrs := NewStatus().Extract(tokens, claims)
	return attrs.Flatten().Map()
}

func TestStatus_NoPrimaryBattery(t *testing.T) {
	got := runStatus(t, "Lenovo ThinkPad T480 No Primary Battery")

	if got["battery_status"] != "One Battery Included" {
		t.Errorf("Expected battery_status=%q, got %q", "One Battery Included", got["battery_status"])
	}
}

func TestStatus_NoBattery(t *testing.T) {
	got := runStatus(t, "Dell Latitude 5490 No Battery No Charger")

	if got["battery_status"] != "Not Included" {
		t.Errorf("Expected battery_status=%q, got %q", "Not Included", got["battery_status"])
	}
}

func TestStatus_NoOS(t *testing.T) {
	got := runStatus(t, "HP EliteDesk 800 G3 Without OS")

	if got["os_status"] != "Not Included" {
		t.Errorf("Expected os_status=%q, got %q", "Not Included", got["os_status"])
	}
}

func TestStatus_SlashGroup(t *testing.T) {
	got := runStatus(t, "Dell Precision 5520 No OS/SSD/Battery")

	for _, key := range []string{"storage_status", "battery_status", "os_status"} {
		if got[key] != "Not Included" {
			t.Errorf("Expected %s=%q, got %q", key, "Not Included", got[key])
		}
	}
	if got["storage_type"] != "SSD" {
		t.Errorf("Expected storage_type=%q, got %q", "SSD", got["storage_type"])
	}
}

func TestStatus_NoHardDriveSubtype(t *testing.T) {
	got := runStatus(t, "Dell OptiPlex 3050 No Hard Drive")

	if got["storage_status"] != "Not Included" {
		t.Errorf("Expected storage_status=%q, got %q", "Not Included", got["storage_status"])
	}
	if got["storage_type"] != "HDD" {
		t.Errorf("Expected storage_type=%q, got %q", "HDD", got["storage_type"])
	}
}

func TestStatus_CompositeNegative(t *testing.T) {
	got := runStatus(t, "HP ProBook 450 G5 NoSSD NoOS")

	if got["storage_status"] != "Not Included" {
		t.Errorf("Expected storage_status=%q, got %q", "Not Included", got["storage_status"])
	}
	if got["os_status"] != "Not Included" {
		t.Errorf("Expected os_status=%q, got %q", "Not Included", got["os_status"])
	}
}

func TestStatus_BIOSLock(t *testing.T) {
	for _, title := range []string{
		"HP ProBook 640 G2 i5 BIOS Locked",
		"Lot of 3 Dell Latitude BIOSLOCK For Parts",
	} {
		got := runStatus(t, title)
		if got["bios_status"] != "Locked BIOS" {
			t.Errorf("Title %q: expected bios_status=%q, got %q", title, "Locked BIOS", got["bios_status"])
		}
	}
}

func TestStatus_NeverClaims(t *testing.T) {
	tokens := token.Tokenize("Dell Latitude No SSD No Battery")
	claims := token.NewClaimSet()

	NewStatus().Extract(tokens, claims)
	if claims.Len() != 0 {
		t.Errorf("Expected status pass to leave claims empty, got %d positions", claims.Len())
	}
}

func TestStatus_PositiveTitleNoOutput(t *testing.T) {
	got := runStatus(t, "Dell Latitude 7490 256GB SSD Windows 11 Pro")

	if len(got) != 0 {
		t.Errorf("Expected no status attributes, got %v", got)
	}
}
