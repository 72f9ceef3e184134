package extract

import (
	"regexp"
	"strings"

	"github.com/ppiankov/gleaner/internal/model"
	"github.com/ppiankov/gleaner/internal/token"
)

// OS extracts the operating system family, version, and Windows edition.
// The pass never claims: OS words double as product vocabulary ("Mac",
// "Chrome") and later passes may still need them.
type OS struct{}

// NewOS creates the operating-system pipeline.
func NewOS() *OS {
	return &OS{}
}

// Name returns the pipeline's domain name.
func (o *OS) Name() string {
	return "os"
}

var windowsVersions = map[string]string{
	"11": "11", "10": "10", "8.1": "8.1", "8": "8", "7": "7",
	"vista": "Vista", "xp": "XP", "2000": "2000", "me": "ME",
	"98": "98", "95": "95",
}

// Single-token macOS version names. Two-word names are matched as pairs
// in macVersionAt.
var macVersionNames = map[string]string{
	"monterey": "Monterey", "catalina": "Catalina", "mojave": "Mojave",
	"sierra": "Sierra", "yosemite": "Yosemite", "mavericks": "Mavericks",
	"ventura": "Ventura", "sonoma": "Sonoma", "sequoia": "Sequoia",
	"lion": "Lion", "leopard": "Leopard", "tiger": "Tiger",
}

var macVersionPairs = map[string]map[string]string{
	"big":      {"sur": "Big Sur"},
	"high":     {"sierra": "High Sierra"},
	"el":       {"capitan": "El Capitan"},
	"snow":     {"leopard": "Snow Leopard"},
	"mountain": {"lion": "Mountain Lion"},
}

var androidVersionNames = map[string]string{
	"nougat": "7.0", "oreo": "8.0", "pie": "9.0",
	"q": "10", "r": "11", "s": "12", "tiramisu": "13",
}

var linuxDistros = map[string]string{
	"ubuntu": "Ubuntu", "fedora": "Fedora", "debian": "Debian",
	"centos": "CentOS", "mint": "Linux Mint", "redhat": "Red Hat",
	"arch": "Arch Linux", "gentoo": "Gentoo", "opensuse": "openSUSE",
	"manjaro": "Manjaro", "kali": "Kali Linux", "elementary": "Elementary OS",
	"zorin": "Zorin OS", "pop": "Pop!_OS", "mx": "MX Linux", "suse": "SUSE",
}

var unixVariants = map[string]string{
	"aix": "AIX", "solaris": "Solaris", "hp-ux": "HP-UX", "unix": "Unix",
}

var windowsEditions = map[string]string{
	"home": "Home", "pro": "Pro", "professional": "Pro",
	"enterprise": "Enterprise", "education": "Education",
	"ultimate": "Ultimate", "server": "Server", "starter": "Starter",
}

// Hardware vocabulary that disqualifies a nearby edition word: "Pro" in
// "MacBook Pro Intel Core" is a product tier, not a Windows edition.
var editionHardwareContext = []string{
	"cpu", "processor", "processors", "desktop", "laptop", "intel", "amd", "core",
}

var (
	reWinShort   = regexp.MustCompile(`(?i)^win(11|10|8\.1|8|7|vista|xp|2000|me|98|95)?$`)
	reOSNumeric  = regexp.MustCompile(`^\d{1,2}(?:\.\d{1,2})?$`)
	reDistroVer  = regexp.MustCompile(`^\d{2}\.\d{2}(?:\.\d{1,2})?$`)
	reNoOSPhrase = regexp.MustCompile(`(?i)\b(?:no|without)\s+os\b|\bnoos\b`)
)

// Extract reports OS attributes for the title.
func (o *OS) Extract(tokens []string, claims *token.ClaimSet) *model.Attributes {
	attrs := model.NewAttributes()
	joined := joinLower(tokens)

	if reNoOSPhrase.MatchString(joined) {
		attrs.Add("os_type", "No OS")
		return attrs
	}

	o.extractTypeAndVersion(tokens, attrs)
	o.extractEdition(tokens, attrs)
	return attrs
}

func (o *OS) extractTypeAndVersion(tokens []string, attrs *model.Attributes) {
	for i, tok := range tokens {
		low := strings.ToLower(tok)
		next := ""
		if i+1 < len(tokens) {
			next = strings.ToLower(tokens[i+1])
		}

		switch {
		case low == "windows":
			attrs.Add("os_type", "Windows")
			if v, ok := windowsVersions[next]; ok {
				attrs.Add("os_version", v)
			}
			return

		case reWinShort.MatchString(low) && low != "win" || low == "win" && windowsVersions[next] != "":
			attrs.Add("os_type", "Windows")
			if m := reWinShort.FindStringSubmatch(low); m != nil && m[1] != "" {
				attrs.Add("os_version", windowsVersions[m[1]])
			} else if v, ok := windowsVersions[next]; ok {
				attrs.Add("os_version", v)
			}
			return

		case low == "macos" || low == "osx":
			attrs.Add("os_type", "macOS")
			if v, n := macVersionAt(tokens, i+1); n > 0 {
				attrs.Add("os_version", v)
			} else if reOSNumeric.MatchString(next) {
				attrs.Add("os_version", next)
			}
			return

		case (low == "mac" || low == "os") && next == "os" || low == "os" && next == "x":
			// "Mac OS [X] ..." / "OS X ...".
			j := i + 2
			if j < len(tokens) && strings.EqualFold(tokens[j], "x") {
				j++
			}
			attrs.Add("os_type", "macOS")
			if v, n := macVersionAt(tokens, j); n > 0 {
				attrs.Add("os_version", v)
			} else if j < len(tokens) && reOSNumeric.MatchString(tokens[j]) {
				attrs.Add("os_version", tokens[j])
			}
			return

		case low == "os":
			if v, n := macVersionAt(tokens, i+1); n > 0 {
				attrs.Add("os_type", "macOS")
				attrs.Add("os_version", v)
				return
			}

		case low == "ios" || low == "ipados":
			attrs.Add("os_type", "iOS")
			if reOSNumeric.MatchString(next) {
				attrs.Add("os_version", next)
			}
			return

		case (low == "iphone" || low == "ipad") && next == "os":
			attrs.Add("os_type", "iOS")
			if i+2 < len(tokens) && reOSNumeric.MatchString(tokens[i+2]) {
				attrs.Add("os_version", tokens[i+2])
			}
			return

		case low == "android":
			attrs.Add("os_type", "Android")
			if reOSNumeric.MatchString(next) {
				attrs.Add("os_version", next)
			} else if v, ok := androidVersionNames[next]; ok {
				attrs.Add("os_version", v)
			}
			return

		case low == "chromeos" || low == "chrome" && next == "os":
			attrs.Add("os_type", "Chrome OS")
			return

		case linuxDistros[low] != "":
			attrs.Add("os_type", linuxDistros[low])
			if reDistroVer.MatchString(next) {
				attrs.Add("os_version", next)
			}
			return

		case low == "linux":
			// Prefer the specific distribution when one is adjacent.
			if d, ok := linuxDistros[next]; ok {
				attrs.Add("os_type", d)
			} else {
				attrs.Add("os_type", "Linux")
			}
			return

		case low == "freebsd":
			attrs.Add("os_type", "FreeBSD")
			if reOSNumeric.MatchString(next) {
				attrs.Add("os_version", next)
			}
			return

		case unixVariants[low] != "":
			attrs.Add("os_type", unixVariants[low])
			return
		}
	}
}

// macVersionAt recognizes a macOS version name starting at the given
// position and returns the canonical name plus the number of tokens it
// spans.
func macVersionAt(tokens []string, at int) (string, int) {
	if at >= len(tokens) {
		return "", 0
	}
	low := strings.ToLower(tokens[at])
	if seconds, ok := macVersionPairs[low]; ok && at+1 < len(tokens) {
		if name, ok := seconds[strings.ToLower(tokens[at+1])]; ok {
			return name, 2
		}
	}
	if name, ok := macVersionNames[low]; ok {
		return name, 1
	}
	return "", 0
}

func (o *OS) extractEdition(tokens []string, attrs *model.Attributes) {
	for i, tok := range tokens {
		low := strings.ToLower(tok)

		// "Windows [version] <edition>", including "Home Premium".
		if low == "windows" {
			j := i + 1
			if j < len(tokens) && windowsVersions[strings.ToLower(tokens[j])] != "" {
				j++
			}
			if j < len(tokens) {
				if edition, span := editionAt(tokens, j); edition != "" {
					if !hardwareContextNearby(tokens, i, j+span-1) {
						attrs.Add("os_edition", edition)
					}
					return
				}
			}
		}

		// "<edition> Edition".
		if windowsEditions[low] != "" && i+1 < len(tokens) &&
			strings.EqualFold(tokens[i+1], "edition") {
			if !hardwareContextNearby(tokens, i, i+1) {
				attrs.Add("os_edition", windowsEditions[low])
			}
			return
		}
	}
}

// editionAt matches an edition word at the position, preferring the
// two-word "Home Premium" and "Pro Education" forms.
func editionAt(tokens []string, at int) (string, int) {
	low := strings.ToLower(tokens[at])
	if at+1 < len(tokens) {
		next := strings.ToLower(tokens[at+1])
		if low == "home" && next == "premium" {
			return "Home Premium", 2
		}
		if low == "pro" && next == "education" {
			return "Pro Education", 2
		}
	}
	if e, ok := windowsEditions[low]; ok {
		return e, 1
	}
	return "", 0
}

// hardwareContextNearby reports hardware vocabulary within three tokens
// of the edition span.
func hardwareContextNearby(tokens []string, from, to int) bool {
	for j := max(0, from-3); j < min(len(tokens), to+4); j++ {
		low := strings.ToLower(tokens[j])
		for _, term := range editionHardwareContext {
			if low == term {
				return true
			}
		}
	}
	return false
}
