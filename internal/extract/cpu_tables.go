package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// modelPattern maps an Intel Core model-number shape to the alphabetic
// suffixes sold under it. Trailing "x" runs in the pattern stand for
// exactly that many digits ("i7-107xx" covers 10700-10799). An empty
// suffix means the bare model number.
type modelPattern struct {
	pattern  string
	suffixes []string
	re       *regexp.Regexp
}

type generationEntry struct {
	label  string
	models []modelPattern
}

// intelGenerations covers 1st through 14th generation Intel Core parts.
// Entries are ordered so lookup results stay deterministic.
var intelGenerations = []generationEntry{
	{"1st Gen", []modelPattern{
		{pattern: "i3-3xx", suffixes: []string{"", "M", "UM"}},
		{pattern: "i3-5xx", suffixes: []string{"", "M", "UM"}},
		{pattern: "i5-5xx", suffixes: []string{"", "M", "UM"}},
		{pattern: "i5-6xx", suffixes: []string{"", "K", "S", "T", "M", "LM", "UM"}},
		{pattern: "i5-7xx", suffixes: []string{"", "S", "T", "M", "LM", "UM"}},
		{pattern: "i7-6xx", suffixes: []string{"", "M", "LM", "UM"}},
		{pattern: "i7-7xx", suffixes: []string{"", "K", "S", "T", "M", "LM", "UM"}},
		{pattern: "i7-8xx", suffixes: []string{"", "S", "T", "M", "LM", "UM"}},
		{pattern: "i7-9xx", suffixes: []string{"", "XM"}},
	}},
	{"2nd Gen", []modelPattern{
		{pattern: "i3-21xx", suffixes: []string{"", "T", "M"}},
		{pattern: "i3-23xx", suffixes: []string{"", "T", "M", "UM"}},
		{pattern: "i5-23xx", suffixes: []string{"", "K", "S", "T", "M"}},
		{pattern: "i5-24xx", suffixes: []string{"", "K", "S", "T", "M"}},
		{pattern: "i5-25xx", suffixes: []string{"", "K", "S", "T", "M"}},
		{pattern: "i7-26xx", suffixes: []string{"", "K", "S", "T", "M", "QM"}},
		{pattern: "i7-27xx", suffixes: []string{"", "K", "M", "QM"}},
		{pattern: "i7-28xx", suffixes: []string{"", "QM", "XM"}},
	}},
	{"3rd Gen", []modelPattern{
		{pattern: "i3-31xx", suffixes: []string{"", "T", "U", "M"}},
		{pattern: "i3-32xx", suffixes: []string{"", "T", "M"}},
		{pattern: "i5-32xx", suffixes: []string{"", "T", "M", "U"}},
		{pattern: "i5-33xx", suffixes: []string{"", "K", "S", "T", "P", "M"}},
		{pattern: "i5-34xx", suffixes: []string{"", "K", "S", "T", "M"}},
		{pattern: "i5-35xx", suffixes: []string{"", "K", "S", "T", "M"}},
		{pattern: "i7-35xx", suffixes: []string{"", "K", "U", "M", "QM"}},
		{pattern: "i7-36xx", suffixes: []string{"", "K", "M", "QM"}},
		{pattern: "i7-37xx", suffixes: []string{"", "K", "M", "QM"}},
		{pattern: "i7-38xx", suffixes: []string{"", "QM", "XM"}},
	}},
	{"4th Gen", []modelPattern{
		{pattern: "i3-41xx", suffixes: []string{"", "T", "U", "M"}},
		{pattern: "i3-43xx", suffixes: []string{"", "T", "U", "M"}},
		{pattern: "i5-42xx", suffixes: []string{"", "U", "M"}},
		{pattern: "i5-43xx", suffixes: []string{"", "U", "M"}},
		{pattern: "i5-44xx", suffixes: []string{"", "K", "S", "T"}},
		{pattern: "i5-45xx", suffixes: []string{"", "K", "S", "T"}},
		{pattern: "i7-45xx", suffixes: []string{"", "U", "M"}},
		{pattern: "i7-47xx", suffixes: []string{"", "K", "M", "QM"}},
		{pattern: "i7-48xx", suffixes: []string{"", "K", "M", "QM"}},
		{pattern: "i7-49xx", suffixes: []string{"", "K", "M", "QM"}},
	}},
	{"5th Gen", []modelPattern{
		{pattern: "i3-50xx", suffixes: []string{"", "U"}},
		{pattern: "i5-52xx", suffixes: []string{"", "U"}},
		{pattern: "i5-53xx", suffixes: []string{"", "T", "U"}},
		{pattern: "i7-55xx", suffixes: []string{"", "U"}},
		{pattern: "i7-57xx", suffixes: []string{"", "T", "S", "K"}},
	}},
	{"6th Gen", []modelPattern{
		{pattern: "i3-60xx", suffixes: []string{"", "T", "U"}},
		{pattern: "i3-61xx", suffixes: []string{"", "T", "U"}},
		{pattern: "i5-62xx", suffixes: []string{"", "U"}},
		{pattern: "i5-63xx", suffixes: []string{"", "U"}},
		{pattern: "i5-64xx", suffixes: []string{"", "K", "T"}},
		{pattern: "i5-65xx", suffixes: []string{"", "K", "T"}},
		{pattern: "i5-66xx", suffixes: []string{"", "K"}},
		{pattern: "i7-65xx", suffixes: []string{"", "U"}},
		{pattern: "i7-66xx", suffixes: []string{"U", "HQ", "HK"}},
		{pattern: "i7-67xx", suffixes: []string{"", "K", "HQ", "HK"}},
		{pattern: "i7-68xx", suffixes: []string{"", "K"}},
	}},
	{"7th Gen", []modelPattern{
		{pattern: "i3-71xx", suffixes: []string{"", "T", "U"}},
		{pattern: "i3-73xx", suffixes: []string{"", "T", "U"}},
		{pattern: "i5-72xx", suffixes: []string{"", "U"}},
		{pattern: "i5-73xx", suffixes: []string{"", "U"}},
		{pattern: "i5-74xx", suffixes: []string{"", "K", "T"}},
		{pattern: "i5-75xx", suffixes: []string{"", "K", "T"}},
		{pattern: "i7-75xx", suffixes: []string{"", "U"}},
		{pattern: "i7-77xx", suffixes: []string{"", "K", "HQ", "HK"}},
		{pattern: "i7-78xx", suffixes: []string{"", "K"}},
	}},
	{"8th Gen", []modelPattern{
		{pattern: "i3-81xx", suffixes: []string{"", "U"}},
		{pattern: "i3-83xx", suffixes: []string{"", "T", "U"}},
		{pattern: "i5-82xx", suffixes: []string{"", "U"}},
		{pattern: "i5-83xx", suffixes: []string{"", "T", "U", "H"}},
		{pattern: "i5-84xx", suffixes: []string{"", "K", "T"}},
		{pattern: "i5-85xx", suffixes: []string{"", "K"}},
		{pattern: "i7-85xx", suffixes: []string{"", "U"}},
		{pattern: "i7-86xx", suffixes: []string{"", "U"}},
		{pattern: "i7-87xx", suffixes: []string{"", "K", "H"}},
		{pattern: "i7-88xx", suffixes: []string{"", "X"}},
	}},
	{"9th Gen", []modelPattern{
		{pattern: "i3-91xx", suffixes: []string{"", "F"}},
		{pattern: "i5-93xx", suffixes: []string{"", "T", "U"}},
		{pattern: "i5-94xx", suffixes: []string{"", "K", "F", "T"}},
		{pattern: "i5-95xx", suffixes: []string{"", "K", "F"}},
		{pattern: "i7-97xx", suffixes: []string{"", "K", "F"}},
		{pattern: "i7-98xx", suffixes: []string{"", "K", "H", "HK"}},
		{pattern: "i9-99xx", suffixes: []string{"", "K", "KF", "X"}},
	}},
	{"10th Gen", []modelPattern{
		{pattern: "i3-100xx", suffixes: []string{"", "G1", "G4"}},
		{pattern: "i3-101xx", suffixes: []string{"", "T", "U"}},
		{pattern: "i5-102xx", suffixes: []string{"", "U"}},
		{pattern: "i5-103xx", suffixes: []string{"", "G1", "G4", "G7"}},
		{pattern: "i5-104xx", suffixes: []string{"", "K", "F", "T"}},
		{pattern: "i5-105xx", suffixes: []string{"", "K", "F"}},
		{pattern: "i7-105xx", suffixes: []string{"", "U"}},
		{pattern: "i7-106xx", suffixes: []string{"", "G4", "G7"}},
		{pattern: "i7-107xx", suffixes: []string{"", "K", "F"}},
		{pattern: "i7-108xx", suffixes: []string{"", "H", "HK"}},
	}},
	{"11th Gen", []modelPattern{
		{pattern: "i3-111xx", suffixes: []string{"", "G4"}},
		{pattern: "i3-113xx", suffixes: []string{"", "G4"}},
		{pattern: "i5-112xx", suffixes: []string{"", "G4", "G7"}},
		{pattern: "i5-113xx", suffixes: []string{"", "G7"}},
		{pattern: "i5-114xx", suffixes: []string{"", "K", "F", "T"}},
		{pattern: "i5-115xx", suffixes: []string{"", "K", "G7"}},
		{pattern: "i7-116xx", suffixes: []string{"", "G7"}},
		{pattern: "i7-117xx", suffixes: []string{"", "K", "F"}},
		{pattern: "i7-118xx", suffixes: []string{"", "H"}},
	}},
	{"12th Gen", []modelPattern{
		{pattern: "i3-121xx", suffixes: []string{"", "U", "P"}},
		{pattern: "i3-123xx", suffixes: []string{"", "T"}},
		{pattern: "i5-123xx", suffixes: []string{"", "U", "P"}},
		{pattern: "i5-124xx", suffixes: []string{"", "K", "F", "T", "U", "P"}},
		{pattern: "i5-125xx", suffixes: []string{"", "K", "F", "U", "P"}},
		{pattern: "i5-126xx", suffixes: []string{"", "H", "HX"}},
		{pattern: "i7-125xx", suffixes: []string{"", "U", "P"}},
		{pattern: "i7-126xx", suffixes: []string{"", "K", "F", "KS"}},
		{pattern: "i7-127xx", suffixes: []string{"", "K", "F", "H", "HK", "HX"}},
		{pattern: "i9-129xx", suffixes: []string{"", "K", "KF", "KS", "H", "HX"}},
	}},
	{"13th Gen", []modelPattern{
		{pattern: "i3-131xx", suffixes: []string{"", "U", "P"}},
		{pattern: "i3-133xx", suffixes: []string{"", "T"}},
		{pattern: "i3-134xx", suffixes: []string{"", "F"}},
		{pattern: "i5-133xx", suffixes: []string{"", "U", "P"}},
		{pattern: "i5-134xx", suffixes: []string{"", "K", "F", "T", "U", "P"}},
		{pattern: "i5-135xx", suffixes: []string{"", "K", "F", "H", "HX", "U", "P"}},
		{pattern: "i7-135xx", suffixes: []string{"", "U", "P"}},
		{pattern: "i7-136xx", suffixes: []string{"", "K", "F", "KS"}},
		{pattern: "i7-137xx", suffixes: []string{"", "K", "F", "H", "HK", "HX"}},
		{pattern: "i9-139xx", suffixes: []string{"", "K", "KF", "KS", "H", "HX"}},
	}},
	{"14th Gen", []modelPattern{
		{pattern: "i3-141xx", suffixes: []string{"", "U"}},
		{pattern: "i3-143xx", suffixes: []string{"", "F"}},
		{pattern: "i5-144xx", suffixes: []string{"", "F", "T"}},
		{pattern: "i5-145xx", suffixes: []string{"", "K", "F", "H", "HX", "U"}},
		{pattern: "i7-145xx", suffixes: []string{"", "U"}},
		{pattern: "i7-146xx", suffixes: []string{"", "K", "F", "KS"}},
		{pattern: "i7-147xx", suffixes: []string{"", "K", "F", "H", "HK", "HX"}},
		{pattern: "i9-149xx", suffixes: []string{"", "K", "KF", "KS", "H", "HX"}},
	}},
}

// appleMGenerations maps Apple M-chip names to their generation labels.
var appleMGenerations = map[string]string{
	"M1":       "1st Gen Apple Silicon",
	"M2":       "2nd Gen Apple Silicon",
	"M3":       "3rd Gen Apple Silicon",
	"M1 PRO":   "1st Gen Apple Silicon",
	"M1 MAX":   "1st Gen Apple Silicon",
	"M1 ULTRA": "1st Gen Apple Silicon",
	"M2 PRO":   "2nd Gen Apple Silicon",
	"M2 MAX":   "2nd Gen Apple Silicon",
	"M2 ULTRA": "2nd Gen Apple Silicon",
	"M3 PRO":   "3rd Gen Apple Silicon",
	"M3 MAX":   "3rd Gen Apple Silicon",
	"M3 ULTRA": "3rd Gen Apple Silicon",
}

func init() {
	for gi := range intelGenerations {
		for mi := range intelGenerations[gi].models {
			m := &intelGenerations[gi].models[mi]
			m.re = compileModelPattern(m.pattern, m.suffixes)
		}
	}
}

// compileModelPattern turns a model shape like "i7-107xx" plus its suffix
// list into an anchored, case-insensitive regular expression.
func compileModelPattern(pattern string, suffixes []string) *regexp.Regexp {
	xCount := 0
	for i := len(pattern) - 1; i >= 0 && pattern[i] == 'x'; i-- {
		xCount++
	}
	body := pattern
	if xCount > 0 {
		body = pattern[:len(pattern)-xCount] + `\d{` + strconv.Itoa(xCount) + `}`
	}
	var alts []string
	for _, s := range suffixes {
		if s != "" {
			alts = append(alts, regexp.QuoteMeta(s))
		}
	}
	suffix := ""
	if len(alts) > 0 {
		suffix = "(?:" + strings.Join(alts, "|") + ")?"
	}
	return regexp.MustCompile("(?i)^" + body + suffix + "$")
}

// intelGeneration resolves a full model token ("i7-10700K") against the
// generation table. The family ("Core i7") restricts which patterns are
// tried; a non-Core-i family never resolves.
func intelGeneration(model, family string) string {
	if !strings.HasPrefix(family, "Core i") {
		return ""
	}
	ix := strings.ToLower(strings.TrimPrefix(family, "Core "))
	for _, gen := range intelGenerations {
		for _, m := range gen.models {
			if !strings.HasPrefix(m.pattern, ix) {
				continue
			}
			if m.re.MatchString(model) {
				return gen.label
			}
		}
	}
	return ""
}

// standaloneGeneration infers a generation from a bare model number like
// "3210M": the leading digit for 2nd-9th generation parts, the leading two
// digits for 10th-14th.
func standaloneGeneration(model string) string {
	if !regexp.MustCompile(`^\d{4,5}[a-zA-Z]*$`).MatchString(model) {
		return ""
	}
	first := int(model[0] - '0')
	if first >= 2 && first <= 9 {
		return ordinalGen(first)
	}
	if len(model) >= 2 && model[1] >= '0' && model[1] <= '9' {
		two, _ := strconv.Atoi(model[:2])
		if two >= 10 && two <= 14 {
			return ordinalGen(two)
		}
	}
	return ""
}

// appleMGeneration returns the generation label for an Apple M-chip name
// such as "M1" or "M2 Pro".
func appleMGeneration(chip string) string {
	return appleMGenerations[strings.ToUpper(strings.TrimSpace(chip))]
}

// ordinalGen formats a generation number as its marketing label: 1 -> "1st
// Gen", 2 -> "2nd Gen", 11-13 always take "th".
func ordinalGen(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s Gen", n, suffix)
}
