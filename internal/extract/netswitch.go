package extract

import (
	"regexp"
	"strings"

	"github.com/ppiankov/gleaner/internal/match"
	"github.com/ppiankov/gleaner/internal/model"
	"github.com/ppiankov/gleaner/internal/token"
)

// NetSwitch extracts network-switch attributes: brand, series, port
// count, speed, interface modules, and management tier. Like the adapter
// pass it requires switch vocabulary and rejects titles carrying compute
// or storage vocabulary nearby.
type NetSwitch struct {
	brand  *match.Extractor
	series *match.Extractor
	ports  *match.Extractor
	speed  *match.Extractor
	iface  *match.Extractor
}

// NewNetSwitch creates the network-switch pipeline.
func NewNetSwitch() *NetSwitch {
	switchBrands := []string{
		"juniper", "cisco", "arista", "netgear", "hp", "hpe", "dell",
		"mellanox", "brocade",
	}

	return &NetSwitch{
		brand: match.New(match.Config{
			Name: "switch_brand",
			Groups: []match.Group{
				{match.Any(switchBrands...), match.Any("switch", "switching").Hidden()},
				{match.Any("network", "ethernet", "managed", "unmanaged").Hidden(),
					match.Literal("switch").Hidden(), match.Any(switchBrands...)},
			},
		}),
		series: match.New(match.Config{
			Name: "switch_series",
			Groups: []match.Group{
				{match.Literal("juniper").Hidden(), match.Regex(`(?:ex|qfx)\d{4}(?:-[a-z0-9-]+)?$`)},
				{match.Literal("cisco").Hidden(), match.Any("catalyst", "nexus"), match.Regex(`\d+[a-z0-9-]*$`).Opt()},
			},
		}),
		ports: match.New(match.Config{
			Name: "switch_ports",
			Groups: []match.Group{
				{match.Regex(`\d+-ports?$`), match.Literal("switch").Hidden()},
				{match.Any("switch", "ethernet", "network").Hidden(), match.Regex(`\d+-?ports?$`)},
				{match.Regex(`\d+$`), match.Literal("port"), match.Literal("switch").Hidden()},
			},
		}),
		speed: match.New(match.Config{
			Name: "switch_speed",
			Groups: []match.Group{
				{match.Regex(`\d+gbe$`), match.Any("switch", "ethernet", "port", "ports").Hidden()},
				{match.Regex(`\d+$`), match.Literal("gigabit"), match.Literal("ethernet").Hidden()},
				{match.Regex(`\d+gb(?:ps)?$`), match.Any("switch", "ethernet").Hidden()},
				{match.Regex(`10/100/1000$`)},
			},
		}),
		iface: match.New(match.Config{
			Name:   "switch_interface",
			Repeat: true,
			Groups: []match.Group{
				{match.Any("switch", "port", "ports", "uplink").Hidden(),
					match.Any("sfp+", "sfp", "qsfp+", "qsfp", "rj45", "fiber", "copper")},
				{match.Any("sfp+", "sfp", "qsfp+", "qsfp", "rj45"),
					match.Any("switch", "port", "ports", "uplinks", "uplink").Hidden()},
			},
		}),
	}
}

// Name returns the pipeline's domain name.
func (n *NetSwitch) Name() string {
	return "netswitch"
}

// Validate checks the pattern configurations.
func (n *NetSwitch) Validate() error {
	return match.Validate(
		n.brand.Config(), n.series.Config(), n.ports.Config(),
		n.speed.Config(), n.iface.Config(),
	)
}

var switchContextWords = []string{"switch", "switches", "switching", "managed", "unmanaged"}

var switchExcludeWords = []string{
	"cpu", "processor", "memory", "ram", "storage", "ssd", "hdd",
	"display", "graphics", "gpu", "motherboard", "laptop", "desktop",
}

var (
	rePortDigits    = regexp.MustCompile(`\d+`)
	reManagedWord   = regexp.MustCompile(`(?i)^(un)?managed$`)
	reNonEthernetAt = regexp.MustCompile(`(?i)^(?:usb|hdmi|displayport|vga|audio)$`)
)

// Extract reports switch attributes for the title. The pass never claims.
func (n *NetSwitch) Extract(tokens []string, claims *token.ClaimSet) *model.Attributes {
	attrs := model.NewAttributes()
	if !titleHasWord(tokens, switchContextWords) || titleHasWord(tokens, switchExcludeWords) {
		return attrs
	}

	addSpans(attrs, "switch_brand", tokens, n.brand.Extract(tokens, claims), nil)
	addSpans(attrs, "switch_series", tokens, n.series.Extract(tokens, claims), nil)
	n.extractPorts(tokens, claims, attrs)
	addSpans(attrs, "switch_speed", tokens, n.speed.Extract(tokens, claims), nil)
	addSpans(attrs, "switch_interface", tokens, n.iface.Extract(tokens, claims), strings.ToUpper)
	n.extractManaged(tokens, attrs)
	return attrs
}

// extractPorts reduces the matched span to the bare count: "48-Port"
// reports 48. USB or video port phrasing is rejected.
func (n *NetSwitch) extractPorts(tokens []string, claims *token.ClaimSet, attrs *model.Attributes) {
	for i, tok := range tokens {
		if strings.Contains(strings.ToLower(tok), "port") && i > 0 &&
			reNonEthernetAt.MatchString(tokens[i-1]) {
			return
		}
	}
	for _, span := range n.ports.Extract(tokens, claims) {
		if len(span) == 0 {
			continue
		}
		if digits := rePortDigits.FindString(tokens[span[0]]); digits != "" {
			attrs.Add("switch_ports", digits)
			return
		}
	}
}

func (n *NetSwitch) extractManaged(tokens []string, attrs *model.Attributes) {
	for _, tok := range tokens {
		if m := reManagedWord.FindStringSubmatch(tok); m != nil {
			if strings.EqualFold(m[1], "un") {
				attrs.Add("switch_managed", "Unmanaged")
			} else {
				attrs.Add("switch_managed", "Managed")
			}
			return
		}
	}
}
