package extract

import (
	"testing"

	"github.com/ppiankov/gleaner/internal/token"
)

func runOS(t *testing.T, title string) map[string]string {
	t.Helper()
	tokens := token.Tokenize(title)
	claims := token.NewClaimSet()
	attrs := NewOS().Extract(tokens, claims)
	return attrs.Flatten().Map()
}

func TestOS_WindowsWithVersionAndEdition(t *testing.T) {
	got := runOS(t, "Dell Latitude 7490 Windows 11 Pro Tested")

	if got["os_type"] != "Windows" {
		t.Errorf("Expected os_type=%q, got %q", "Windows", got["os_type"])
	}
	if got["os_version"] != "11" {
		t.Errorf("Expected os_version=%q, got %q", "11", got["os_version"])
	}
	if got["os_edition"] != "Pro" {
		t.Errorf("Expected os_edition=%q, got %q", "Pro", got["os_edition"])
	}
}

func TestOS_WindowsCompositeToken(t *testing.T) {
	got := runOS(t, "HP EliteBook 840 G5 Win10 Charger Included")

	if got["os_type"] != "Windows" {
		t.Errorf("Expected os_type=%q, got %q", "Windows", got["os_type"])
	}
	if got["os_version"] != "10" {
		t.Errorf("Expected os_version=%q, got %q", "10", got["os_version"])
	}
}

func TestOS_WindowsNamedVersion(t *testing.T) {
	got := runOS(t, "ThinkPad T61 Windows XP Refurbished")

	if got["os_version"] != "XP" {
		t.Errorf("Expected os_version=%q, got %q", "XP", got["os_version"])
	}
}

func TestOS_WindowsHomePremium(t *testing.T) {
	got := runOS(t, "Toshiba Satellite Windows 7 Home Premium")

	if got["os_edition"] != "Home Premium" {
		t.Errorf("Expected os_edition=%q, got %q", "Home Premium", got["os_edition"])
	}
}

func TestOS_EditionRejectedInHardwareContext(t *testing.T) {
	got := runOS(t, "Gaming Laptop Windows 11 Pro Intel Core i7")

	if got["os_edition"] != "" {
		t.Errorf("Expected no os_edition near hardware vocabulary, got %q", got["os_edition"])
	}
	if got["os_type"] != "Windows" {
		t.Errorf("Expected os_type=%q, got %q", "Windows", got["os_type"])
	}
}

func TestOS_MacOSNamedVersion(t *testing.T) {
	got := runOS(t, "Apple iMac 27 macOS Monterey 16GB")

	if got["os_type"] != "macOS" {
		t.Errorf("Expected os_type=%q, got %q", "macOS", got["os_type"])
	}
	if got["os_version"] != "Monterey" {
		t.Errorf("Expected os_version=%q, got %q", "Monterey", got["os_version"])
	}
}

func TestOS_MacOSTwoWordVersion(t *testing.T) {
	got := runOS(t, "MacBook Air 2017 macOS High Sierra")

	if got["os_version"] != "High Sierra" {
		t.Errorf("Expected os_version=%q, got %q", "High Sierra", got["os_version"])
	}
}

func TestOS_BareOSWithVersionName(t *testing.T) {
	got := runOS(t, "Apple Mac Mini A1347 OS Catalina")

	if got["os_type"] != "macOS" {
		t.Errorf("Expected os_type=%q, got %q", "macOS", got["os_type"])
	}
	if got["os_version"] != "Catalina" {
		t.Errorf("Expected os_version=%q, got %q", "Catalina", got["os_version"])
	}
}

func TestOS_OSXNumericVersion(t *testing.T) {
	got := runOS(t, "MacBook Pro Mid 2012 OS X 10.13")

	if got["os_type"] != "macOS" {
		t.Errorf("Expected os_type=%q, got %q", "macOS", got["os_type"])
	}
	if got["os_version"] != "10.13" {
		t.Errorf("Expected os_version=%q, got %q", "10.13", got["os_version"])
	}
}

func TestOS_AndroidNumericVersion(t *testing.T) {
	got := runOS(t, "Samsung Galaxy Tab A8 Android 13 32GB")

	if got["os_type"] != "Android" {
		t.Errorf("Expected os_type=%q, got %q", "Android", got["os_type"])
	}
	if got["os_version"] != "13" {
		t.Errorf("Expected os_version=%q, got %q", "13", got["os_version"])
	}
}

func TestOS_AndroidNamedVersion(t *testing.T) {
	got := runOS(t, "LG G6 Android Oreo Unlocked")

	if got["os_version"] != "8.0" {
		t.Errorf("Expected os_version=%q, got %q", "8.0", got["os_version"])
	}
}

func TestOS_LinuxDistro(t *testing.T) {
	got := runOS(t, "Lenovo ThinkCentre Ubuntu 22.04 Preinstalled")

	if got["os_type"] != "Ubuntu" {
		t.Errorf("Expected os_type=%q, got %q", "Ubuntu", got["os_type"])
	}
	if got["os_version"] != "22.04" {
		t.Errorf("Expected os_version=%q, got %q", "22.04", got["os_version"])
	}
}

func TestOS_GenericLinux(t *testing.T) {
	got := runOS(t, "Supermicro Server Linux Installed")

	if got["os_type"] != "Linux" {
		t.Errorf("Expected os_type=%q, got %q", "Linux", got["os_type"])
	}
}

func TestOS_ChromeOS(t *testing.T) {
	got := runOS(t, "Acer Chromebook 14 Chrome OS 4GB")

	if got["os_type"] != "Chrome OS" {
		t.Errorf("Expected os_type=%q, got %q", "Chrome OS", got["os_type"])
	}
}

func TestOS_NoOSPhrase(t *testing.T) {
	got := runOS(t, "HP Z440 Workstation No OS Tested")

	if got["os_type"] != "No OS" {
		t.Errorf("Expected os_type=%q, got %q", "No OS", got["os_type"])
	}
	if got["os_version"] != "" {
		t.Errorf("Expected no os_version for a bare chassis, got %q", got["os_version"])
	}
}

func TestOS_NoContextNoOutput(t *testing.T) {
	got := runOS(t, "Dell UltraSharp U2720Q 27 Monitor")

	if len(got) != 0 {
		t.Errorf("Expected no OS attributes, got %v", got)
	}
}
