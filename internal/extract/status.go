package extract

import (
	"regexp"
	"strings"

	"github.com/ppiankov/gleaner/internal/model"
	"github.com/ppiankov/gleaner/internal/token"
)

// Status is the generic component-status pipeline. It scans the joined
// title for "no/without/missing <component>" phrasing, parenthetical and
// composite negatives, and slash groups like "No OS/SSD/Battery", and
// emits a "<component>_status" per affected component. It never claims
// tokens so the component pipelines can still inspect the same spans.
type Status struct{}

// NewStatus creates the status pipeline.
func NewStatus() *Status {
	return &Status{}
}

// Name returns the pipeline's domain name.
func (s *Status) Name() string {
	return "status"
}

// statusComponent binds a component name to the vocabulary its negative
// phrases may use.
type statusComponent struct {
	name  string
	terms []string
}

var statusComponents = []statusComponent{
	{"storage", []string{"ssd", "hdd", "hd", "storage", "drive", "hard", "m.2", "nvme", "emmc", "harddrive"}},
	{"battery", []string{"battery", "batt", "bat"}},
	{"os", []string{"os"}},
}

// "No Primary/Main Battery" listings come from dual-battery hardware
// lines that keep the secondary battery, so the phrase does not mean the
// battery is missing.
var rePrimaryBattery = regexp.MustCompile(`(?i)\b(?:no|without|missing)\b[^\w\n]{0,3}[^.,;:()]{0,80}\b(?:primary|main)\s+battery\b`)

var (
	reBIOSLock   = regexp.MustCompile(`(?i)\bbios\s*lock(?:ed)?\b|\bbioslock\b`)
	reSlashGroup = regexp.MustCompile(`(?i)\bno\s+([^\s,;:]+)`)
	reSplitSep   = regexp.MustCompile(`[/|]`)
)

// componentNegatives builds the phrase patterns for one term set. Order
// matters: spaced forms before parenthetical before composite.
func componentNegatives(terms []string) []*regexp.Regexp {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	alt := strings.Join(quoted, "|")
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bno\s+(` + alt + `)\b`),
		regexp.MustCompile(`(?i)\bwithout\s+(` + alt + `)\b`),
		regexp.MustCompile(`(?i)\bmissing\s+(` + alt + `)\b`),
		regexp.MustCompile(`(?i)\bno\s*\([^)]*(` + alt + `)[^)]*\)`),
		regexp.MustCompile(`(?i)\([^)]*no[^)]*(` + alt + `)[^)]*\)`),
		regexp.MustCompile(`(?i)\bno(` + alt + `)\b`),
	}
}

var statusNegatives = func() map[string][]*regexp.Regexp {
	out := make(map[string][]*regexp.Regexp, len(statusComponents))
	for _, c := range statusComponents {
		out[c.name] = componentNegatives(c.terms)
	}
	return out
}()

var reStorageSubtype = regexp.MustCompile(`(?i)(ssd|hdd|storage|drive|m\.2|nvme|emmc)`)

// Extract scans the title for negative component phrases and BIOS locks.
func (s *Status) Extract(tokens []string, claims *token.ClaimSet) *model.Attributes {
	attrs := model.NewAttributes()
	joined := joinLower(tokens)

	for _, c := range statusComponents {
		if c.name == "battery" {
			if loc := rePrimaryBattery.FindStringIndex(joined); loc != nil {
				attrs.Add("battery_status", "One Battery Included")
				continue
			}
		}

		matched := ""
		for _, re := range statusNegatives[c.name] {
			if loc := re.FindStringIndex(joined); loc != nil {
				matched = joined[loc[0]:loc[1]]
				break
			}
		}
		if matched == "" {
			matched = slashGroupNegative(joined, c.terms)
		}
		if matched == "" {
			continue
		}

		if c.name == "storage" {
			if sub := storageSubtype(matched); sub != "" {
				attrs.Add("storage_type", sub)
			}
		}
		attrs.Add(c.name+"_status", "Not Included")
	}

	if reBIOSLock.MatchString(joined) {
		attrs.Add("bios_status", "Locked BIOS")
	}
	return attrs
}

// slashGroupNegative handles "No OS/SSD/Battery": the group after "no"
// is split on slash or pipe and matched against the component terms.
func slashGroupNegative(joined string, terms []string) string {
	for _, m := range reSlashGroup.FindAllStringSubmatch(joined, -1) {
		for _, part := range reSplitSep.Split(m[1], -1) {
			part = strings.ToLower(strings.TrimSpace(part))
			for _, t := range terms {
				if part == t {
					return m[0]
				}
			}
		}
	}
	return ""
}

// storageSubtype pulls the negated storage type out of the phrase so
// "No SSD" still reports which kind of drive is absent.
func storageSubtype(matched string) string {
	if m := reStorageSubtype.FindString(matched); m != "" {
		return strings.ToUpper(m)
	}
	low := strings.ToLower(matched)
	if strings.Contains(low, "harddrive") || strings.Contains(low, "hard") {
		return "HDD"
	}
	return ""
}

// joinLower renders the token sequence as one lower-cased string for
// phrase-level scans.
func joinLower(tokens []string) string {
	return strings.ToLower(strings.Join(tokens, " "))
}
