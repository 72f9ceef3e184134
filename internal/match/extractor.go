package match

import (
	"regexp"
	"strings"

	"github.com/ppiankov/gleaner/internal/model"
	"github.com/ppiankov/gleaner/internal/token"
)

// Config binds an attribute name to its pattern groups and matching policy.
type Config struct {
	Name      string  // attribute base name
	Groups    []Group // tried in order
	Repeat    bool    // keep matching a group until it stops matching
	Claim     bool    // add matched positions to the shared claim set
	StripUnit bool    // drop a trailing unit from the emitted value
}

var unitSuffix = regexp.MustCompile(`(?i)(gb|tb|mhz|ghz|in)$`)

// Extractor is the declarative extractor base: it drives the matcher over
// the configured groups and turns matched spans into attribute values.
// Domain extractors embed it and override Extract or Process where the
// DSL cannot express the logic.
type Extractor struct {
	cfg Config
}

// New creates an extractor from its configuration.
func New(cfg Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// Name returns the attribute base name.
func (e *Extractor) Name() string {
	return e.cfg.Name
}

// Config returns the extractor's configuration, for startup validation.
func (e *Extractor) Config() Config {
	return e.cfg
}

// Extract runs every pattern group against the tokens and returns the
// emitted spans. Positions join the shared claim set only when the
// configuration opts in; a local overlay prevents re-matching the same
// span when the extractor repeats without claiming.
func (e *Extractor) Extract(tokens []string, claims *token.ClaimSet) [][]int {
	var results [][]int
	local := make(map[int]bool)
	for _, g := range e.cfg.Groups {
		for {
			span, ok := g.find(tokens, claims, local)
			if !ok {
				break
			}
			results = append(results, span.Emit)
			if e.cfg.Claim {
				claims.ClaimAll(span.All)
			}
			for _, pos := range span.All {
				local[pos] = true
			}
			if !e.cfg.Repeat {
				break
			}
		}
	}
	return results
}

// Process converts one matched span into attribute values. The base
// implementation joins the matched tokens with spaces and applies the
// output options.
func (e *Extractor) Process(tokens []string, span []int) *model.Attributes {
	attrs := model.NewAttributes()
	if len(span) == 0 {
		return attrs
	}
	parts := make([]string, 0, len(span))
	for _, pos := range span {
		if pos >= 0 && pos < len(tokens) {
			parts = append(parts, tokens[pos])
		}
	}
	value := strings.Join(parts, " ")
	if e.cfg.StripUnit {
		value = unitSuffix.ReplaceAllString(value, "")
	}
	if value != "" {
		attrs.Add(e.cfg.Name, value)
	}
	return attrs
}
