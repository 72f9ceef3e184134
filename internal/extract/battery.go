package extract

import (
	"regexp"
	"strings"

	"github.com/ppiankov/gleaner/internal/match"
	"github.com/ppiankov/gleaner/internal/model"
	"github.com/ppiankov/gleaner/internal/token"
)

// Battery extracts battery presence, health percentage, and condition.
// Negative phrasing ("No Battery") belongs to the status pipeline; this
// one only reports positive signals.
type Battery struct {
	presence *match.Extractor
	health   *match.Extractor
}

// NewBattery creates the battery pipeline.
func NewBattery() *Battery {
	return &Battery{
		presence: match.New(match.Config{
			Name: "battery_status",
			Groups: []match.Group{
				{match.Any("w/", "with"), match.Literal("battery")},
				{match.Regex(`w/battery$`)},
				{match.Literal("battery"), match.Any("included", "present")},
			},
		}),
		health: match.New(match.Config{
			Name: "battery_health",
			Groups: []match.Group{
				{match.Literal("battery").Hidden(), match.Regex(`health$`).Hidden(), match.Regex(`\d+%$`)},
				{match.Regex(`\d+%$`), match.Literal("battery").Hidden(), match.Regex(`health$`).Hidden()},
				{match.Literal("battery").Hidden(), match.Literal("at").Hidden(), match.Regex(`\d+%$`)},
			},
		}),
	}
}

// Name returns the pipeline's domain name.
func (b *Battery) Name() string {
	return "battery"
}

// Validate checks the pattern configurations.
func (b *Battery) Validate() error {
	return match.Validate(b.presence.Config(), b.health.Config())
}

var reBatteryNegated = regexp.MustCompile(`(?i)\b(?:no|without|missing)\s+batt`)

// Condition phrases in priority order; the first match wins.
var batteryConditions = []struct {
	re    *regexp.Regexp
	value string
}{
	{regexp.MustCompile(`(?i)\bbattery\s+(?:in\s+)?good(?:\s+condition)?\b|\bgood\s+battery\b`), "Good"},
	{regexp.MustCompile(`(?i)\bbattery\s+excellent\b|\bexcellent\s+battery\b`), "Excellent"},
	{regexp.MustCompile(`(?i)\bbattery\s+fair\b|\bfair\s+battery\b`), "Fair"},
	{regexp.MustCompile(`(?i)\bbattery\s+(?:in\s+)?poor(?:\s+condition)?\b|\bpoor\s+battery\b`), "Poor"},
	{regexp.MustCompile(`(?i)\bbattery\s+bad\b|\bbad\s+battery\b`), "Bad"},
	{regexp.MustCompile(`(?i)\bbattery\s+needs\s+replacement\b|\breplace\s+battery\b`), "Needs Replacement"},
	{regexp.MustCompile(`(?i)\bbattery\s+worn\b|\bworn\s+battery\b`), "Worn"},
	{regexp.MustCompile(`(?i)\bbattery\s+new\b|\bnew\s+battery\b`), "New"},
}

// Extract reports battery attributes for the title.
func (b *Battery) Extract(tokens []string, claims *token.ClaimSet) *model.Attributes {
	attrs := model.NewAttributes()
	joined := joinLower(tokens)

	if !reBatteryNegated.MatchString(joined) {
		if spans := b.presence.Extract(tokens, claims); len(spans) > 0 {
			attrs.Add("battery_status", "With Battery")
		}
	}

	for _, span := range b.health.Extract(tokens, claims) {
		if len(span) > 0 {
			attrs.Add("battery_health", strings.ToLower(tokens[span[0]]))
			break
		}
	}

	for _, c := range batteryConditions {
		if c.re.MatchString(joined) {
			attrs.Add("battery_condition", c.value)
			break
		}
	}
	return attrs
}
