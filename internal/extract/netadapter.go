package extract

import (
	"regexp"
	"strings"

	"github.com/ppiankov/gleaner/internal/match"
	"github.com/ppiankov/gleaner/internal/model"
	"github.com/ppiankov/gleaner/internal/token"
)

// NetAdapter extracts network-card attributes: brand, series, link speed,
// port configuration, and form factor. The whole pass requires adapter
// vocabulary in the title and rejects outright when compute or storage
// vocabulary is present, so a server listing with an onboard NIC line
// never turns into an adapter listing.
type NetAdapter struct {
	brand      *match.Extractor
	series     *match.Extractor
	speed      *match.Extractor
	ports      *match.Extractor
	formFactor *match.Extractor
}

// NewNetAdapter creates the network-adapter pipeline.
func NewNetAdapter() *NetAdapter {
	adapterWords := []string{"adapter", "controller", "card"}
	netWords := []string{"network", "ethernet", "infiniband", "nic"}
	brandWords := []string{
		"mellanox", "intel", "broadcom", "chelsio", "solarflare",
		"xilinx", "marvell", "realtek", "aquantia", "qualcomm", "nvidia",
	}

	return &NetAdapter{
		brand: match.New(match.Config{
			Name: "adapter_brand",
			Groups: []match.Group{
				{match.Any(netWords...).Hidden(), match.Any(adapterWords...).Hidden(), match.Any(brandWords...)},
				{match.Any("mellanox", "intel", "broadcom", "chelsio", "solarflare"),
					match.Any(netWords...).Hidden(), match.Any(adapterWords...).Hidden()},
			},
		}),
		series: match.New(match.Config{
			Name: "adapter_series",
			Groups: []match.Group{
				{match.Literal("mellanox").Hidden(), match.Regex(`connectx-\d+$`)},
				{match.Literal("intel").Hidden(), match.Regex(`[xie]\d{3}(?:-[a-z0-9]+)?$`)},
				{match.Literal("broadcom").Hidden(), match.Regex(`netxtreme$`)},
			},
		}),
		speed: match.New(match.Config{
			Name:   "adapter_speed",
			Repeat: true,
			Groups: []match.Group{
				{match.Any("infiniband", "ib").Hidden(), match.Regex(`[eqf]dr$`)},
				{match.Any("ethernet", "network", "nic").Hidden(), match.Regex(`\d+gbe$`)},
				{match.Regex(`\d+gbe$`), match.Any("adapter", "nic").Hidden()},
				{match.Regex(`\d+$`), match.Literal("gigabit"), match.Any("ethernet", "network").Hidden()},
			},
		}),
		ports: match.New(match.Config{
			Name: "adapter_ports",
			Groups: []match.Group{
				{match.Any("adapter", "nic", "network").Hidden(),
					match.Any("single", "dual", "quad", "octal"), match.Literal("port")},
				{match.Any("single", "dual", "quad", "octal"), match.Literal("port"),
					match.Any("adapter", "nic", "network").Hidden()},
				{match.Regex(`\d+-?ports?$`), match.Any("adapter", "nic", "network").Hidden()},
			},
		}),
		formFactor: match.New(match.Config{
			Name:   "adapter_form_factor",
			Repeat: true,
			Groups: []match.Group{
				{match.Regex(`pcie(?:x\d+)?$`), match.Regex(`x\d+$`).Opt(), match.Any("adapter", "nic", "card").Hidden()},
				{match.Any("low", "full", "half"), match.Any("profile", "height"),
					match.Any("adapter", "nic", "bracket").Hidden()},
			},
		}),
	}
}

// Name returns the pipeline's domain name.
func (n *NetAdapter) Name() string {
	return "netadapter"
}

// Validate checks the pattern configurations.
func (n *NetAdapter) Validate() error {
	return match.Validate(
		n.brand.Config(), n.series.Config(), n.speed.Config(),
		n.ports.Config(), n.formFactor.Config(),
	)
}

var adapterContextWords = []string{
	"adapter", "nic", "network", "ethernet", "infiniband", "smartnic", "dpu", "hba", "cna",
}

var adapterExcludeWords = []string{
	"cpu", "processor", "core", "memory", "ram", "storage", "ssd", "hdd",
	"display", "graphics", "gpu",
}

// Extract reports adapter attributes for the title. The pass never
// claims; its vocabulary stays visible to the switch pipeline, which
// applies its own gate.
func (n *NetAdapter) Extract(tokens []string, claims *token.ClaimSet) *model.Attributes {
	attrs := model.NewAttributes()
	if !titleHasWord(tokens, adapterContextWords) || titleHasWord(tokens, adapterExcludeWords) {
		return attrs
	}

	addSpans(attrs, "adapter_brand", tokens, n.brand.Extract(tokens, claims), nil)
	addSpans(attrs, "adapter_series", tokens, n.series.Extract(tokens, claims), nil)
	addSpans(attrs, "adapter_speed", tokens, n.speed.Extract(tokens, claims), nil)
	addSpans(attrs, "adapter_ports", tokens, n.ports.Extract(tokens, claims), titleCase)
	addSpans(attrs, "adapter_form_factor", tokens, n.formFactor.Extract(tokens, claims), nil)
	return attrs
}

// titleHasWord reports whether any token, lower-cased and stripped of
// punctuation, equals one of the words.
func titleHasWord(tokens []string, words []string) bool {
	for _, tok := range tokens {
		low := cleanContextToken(tok)
		for _, w := range words {
			if low == w {
				return true
			}
		}
	}
	return false
}

// addSpans joins each emitted span into a value and records it under the
// key, optionally normalized.
func addSpans(attrs *model.Attributes, key string, tokens []string, spans [][]int, norm func(string) string) {
	for _, span := range spans {
		parts := make([]string, 0, len(span))
		for _, pos := range span {
			parts = append(parts, tokens[pos])
		}
		value := strings.Join(parts, " ")
		if norm != nil {
			value = norm(value)
		}
		if value != "" {
			attrs.Add(key, value)
		}
	}
}

var reWordStart = regexp.MustCompile(`(?:^|[ -])[a-z]`)

func titleCase(s string) string {
	return reWordStart.ReplaceAllStringFunc(strings.ToLower(s), strings.ToUpper)
}
