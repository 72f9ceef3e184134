package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/gleaner/internal/model"
	"github.com/ppiankov/gleaner/internal/token"
)

// CPU is the CPU domain pipeline. It runs four passes in fixed order over
// one shared claim set: generation extraction, the model/family/brand
// scan, speed extraction, and quantity extraction. Later passes see the
// positions earlier passes claimed.
type CPU struct{}

// NewCPU creates the CPU pipeline.
func NewCPU() *CPU {
	return &CPU{}
}

// Name returns the pipeline's domain name.
func (c *CPU) Name() string {
	return "cpu"
}

var (
	reISeriesModel  = regexp.MustCompile(`(?i)^i[3579]-[0-9]{3,4}[a-zA-Z0-9]*$`)
	reISeriesPrefix = regexp.MustCompile(`(?i)^i[3579]-`)
	reISeriesShape  = regexp.MustCompile(`(?i)^i[3579](?:-|$)`)
	reShortGenModel = regexp.MustCompile(`(?i)^i[3579]-\d{1,2}$`)
	reEmbeddedGen   = regexp.MustCompile(`(?i)^i[3579]-(\d+(?:st|nd|rd|th))$`)
	reOrdinal       = regexp.MustCompile(`(?i)^\d+(?:st|nd|rd|th)$`)
	reBareNumber    = regexp.MustCompile(`^\d+$`)
	reGenWord       = regexp.MustCompile(`(?i)^gen\.?$`)
	rePackedGenList = regexp.MustCompile(`(?i)^\d+(?:st|nd|rd|th)?(?:/\d+(?:st|nd|rd|th)?)+$`)

	reXeonSeriesModel = regexp.MustCompile(`(?i)^(?:E[357]|W)-[0-9]{4}[a-zA-Z]*$`)
	reXeonSeriesOnly  = regexp.MustCompile(`(?i)^(?:E[357]|E|W)$`)
	reXeonEModel      = regexp.MustCompile(`(?i)^E-[0-9]{4}[a-zA-Z]*$`)
	reXeonVersion     = regexp.MustCompile(`(?i)^(?:v\d+|0)$`)
	reFourDigitModel  = regexp.MustCompile(`^[0-9]{4}[a-zA-Z]*$`)

	reUnitToken      = regexp.MustCompile(`(?i)(gb|tb|mhz|ghz|mah|rpm)$`)
	reAppleMChip     = regexp.MustCompile(`(?i)^m[123]$`)
	reCoreMPrefix    = regexp.MustCompile(`(?i)^m[357]-`)
	reCoreMModel     = regexp.MustCompile(`(?i)^m[357]-[a-zA-Z0-9]+$`)
	reJNGModel       = regexp.MustCompile(`(?i)^[JNG][0-9]{3,4}$`)
	reStandalone     = regexp.MustCompile(`^\d{4}[a-zA-Z]+$`)
	reUltraModelNum  = regexp.MustCompile(`^\d{3,4}[a-zA-Z]*$`)
	reModelFragment  = regexp.MustCompile(`^\d{2,4}[a-zA-Z]*$`)
	reAlnumFragment  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	reModelSuffix    = regexp.MustCompile(`^(\d+)([a-zA-Z][a-zA-Z0-9]*)$`)
	reTrailingLetter = regexp.MustCompile(`([a-zA-Z][a-zA-Z0-9]*)$`)

	reGHzToken   = regexp.MustCompile(`(?i)^@?\d+(?:\.\d+)?ghz$`)
	reMHzToken   = regexp.MustCompile(`(?i)^\d{2,4}mhz$`)
	reSpeedValue = regexp.MustCompile(`(?i)([\d.]+)([gm]hz)`)

	reNamedXeonSeries = regexp.MustCompile(`(?i)\b(silver|gold|bronze|platinum)\b`)
	reXeonAlnumSeries = regexp.MustCompile(`(?i)^([EWX][0-9]*)`)
	reLegacyXeonModel = regexp.MustCompile(`(?i)^([EWX])([3-9])-\d{4}`)
	reVersionAtEnd    = regexp.MustCompile(`(?i)\bv(\d+)$`)
)

// cpuInfo is one recognized processor: the attribute fragment a single
// match contributes to the title-level mapping.
type cpuInfo struct {
	brand    string
	families []string
	model    string
	suffix   string
	gen      string
}

// Extract runs the CPU pipeline over the tokens and returns the CPU
// attribute mapping. Claimed positions are respected and extended.
func (c *CPU) Extract(tokens []string, claims *token.ClaimSet) *model.Attributes {
	attrs := model.NewAttributes()

	gens := extractGenerations(tokens, claims)
	infos, cpuConsumed := scanCPUModels(tokens, claims)
	speeds := extractCPUSpeeds(tokens, cpuConsumed)
	for i, tok := range tokens {
		if _, ok := cpuBrandNames[strings.ToLower(tok)]; ok {
			cpuConsumed[i] = true
		}
	}
	quantity := extractCPUQuantity(tokens, claims, cpuConsumed)

	for _, g := range gens {
		addUnique(attrs, "cpu_generation", g)
	}
	for _, info := range infos {
		addUnique(attrs, "cpu_brand", info.brand)
		for _, f := range info.families {
			addUnique(attrs, "cpu_family", f)
		}
		addUnique(attrs, "cpu_model", info.model)
		addUnique(attrs, "cpu_suffix", info.suffix)
		addUnique(attrs, "cpu_generation", info.gen)
	}
	if !attrs.Has("cpu_brand") && (attrs.Len() > 0 || hasCPUContext(tokens)) {
		addUnique(attrs, "cpu_brand", fallbackBrand(tokens))
	}
	if !attrs.Has("cpu_family") {
		for _, f := range fallbackFamilies(tokens) {
			addUnique(attrs, "cpu_family", f)
		}
	}
	for _, s := range speeds {
		addUnique(attrs, "cpu_speed", s)
	}
	addUnique(attrs, "cpu_quantity", quantity)
	return attrs
}

// addUnique appends a value under the key unless it is empty or already
// recorded there.
func addUnique(attrs *model.Attributes, key, value string) {
	if value == "" {
		return
	}
	for _, v := range attrs.All(key) {
		if v == value {
			return
		}
	}
	attrs.Add(key, value)
}

var cpuBrandNames = map[string]string{
	"intel": "Intel", "amd": "AMD", "arm": "ARM", "apple": "Apple",
	"qualcomm": "Qualcomm", "mediatek": "Mediatek", "samsung": "Samsung",
	"ibm": "IBM", "via": "VIA", "cyrix": "Cyrix", "transmeta": "Transmeta",
	"fujitsu": "Fujitsu", "motorola": "Motorola", "risc-v": "RISC-V",
	"huawei": "Huawei", "rockchip": "Rockchip", "allwinner": "Allwinner",
}

var cpuFamilyWords = map[string]bool{
	"core": true, "ryzen": true, "xeon": true, "pentium": true,
	"celeron": true, "atom": true, "athlon": true, "phenom": true,
	"epyc": true, "threadripper": true,
}

var xeonMetalWords = map[string]bool{
	"silver": true, "gold": true, "bronze": true, "platinum": true,
}

// hasCPUContext reports whether the title mentions a CPU at all: brand or
// family words, the Core Ultra bigram, i-series or Apple M-chip shapes, or
// speed tokens. It never claims anything.
func hasCPUContext(tokens []string) bool {
	for i, tok := range tokens {
		low := strings.ToLower(tok)
		if _, ok := cpuBrandNames[low]; ok {
			return true
		}
		if cpuFamilyWords[low] {
			return true
		}
		if low == "core" && i+1 < len(tokens) && strings.ToLower(tokens[i+1]) == "ultra" {
			return true
		}
	}
	for _, tok := range tokens {
		if reISeriesShape.MatchString(tok) {
			return true
		}
		if reAppleMChip.MatchString(tok) {
			return true
		}
		low := strings.ToLower(tok)
		if low == "processor" || low == "cpu" || low == "ghz" || low == "mhz" || strings.HasPrefix(low, "@") {
			return true
		}
	}
	return false
}

// isCPURelated reports whether a single token looks like CPU vocabulary:
// brand, family, model shape, or speed shape. Used for adjacency gating.
func isCPURelated(tok string) bool {
	low := strings.ToLower(tok)
	if _, ok := cpuBrandNames[low]; ok {
		return true
	}
	if cpuFamilyWords[low] || xeonMetalWords[low] {
		return true
	}
	if low == "processor" || low == "cpu" {
		return true
	}
	if reISeriesShape.MatchString(low) {
		return true
	}
	modelShapes := []*regexp.Regexp{
		regexp.MustCompile(`(?i)^i[3579]-[0-9]{3,4}[a-zA-Z0-9]*`),
		regexp.MustCompile(`^[0-9]{4}[a-zA-Z]+`),
		regexp.MustCompile(`(?i)^[JNG][0-9]{3,4}`),
		regexp.MustCompile(`(?i)^[a-zA-Z0-9]+-[0-9]{4}[a-zA-Z]*`),
		regexp.MustCompile(`(?i)^v[0-9]+`),
	}
	for _, re := range modelShapes {
		if re.MatchString(tok) {
			return true
		}
	}
	speedShapes := []*regexp.Regexp{
		regexp.MustCompile(`(?i)^@?[0-9]+(?:\.[0-9]+)?ghz`),
		regexp.MustCompile(`(?i)^[0-9]+mhz`),
	}
	for _, re := range speedShapes {
		if re.MatchString(tok) {
			return true
		}
	}
	return false
}

var compatibilityPhrases = []string{
	"supports", "support", "compatible", "compatibility", "designed for",
	"optimized for", "works with", "fits", "motherboard", "socket",
	"chipset", "platform", "family processors", "processor family",
}

var systemIndicators = map[string]bool{
	"motherboard": true, "server": true, "system": true, "board": true,
	"chassis": true, "poweredge": true, "proliant": true, "thinkserver": true,
	"supermicro": true, "dell": true, "hp": true, "lenovo": true,
	"rack": true, "tower": true, "workstation": true,
}

// extractGenerations recognizes ordinal-plus-"Gen" patterns, slash-delimited
// generation lists, generation digits embedded in model tokens, and packed
// lists like "2/3/4th Gen". It refuses to fire inside compatibility or
// system phrasing unless an explicit model or family is also present.
func extractGenerations(tokens []string, claims *token.ClaimSet) []string {
	if !hasCPUContext(tokens) {
		return nil
	}
	joined := strings.ToLower(strings.Join(tokens, " "))
	for _, phrase := range compatibilityPhrases {
		if strings.Contains(joined, phrase) {
			return nil
		}
	}
	if hasSystemContext(tokens) && !hasExplicitCPUSignal(tokens, joined) {
		return nil
	}

	var gens []string
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if claims.Claimed(i) && !generationRelevant(tok) {
			i++
			continue
		}

		// Short embedded generation: "i7-6".
		if reShortGenModel.MatchString(tok) {
			n, _ := strconv.Atoi(tok[strings.Index(tok, "-")+1:])
			gens = append(gens, ordinalGen(n))
			claims.Claim(i)
			i++
			continue
		}

		// Packed slash list in one token: "2/3/4th Gen".
		if rePackedGenList.MatchString(tok) && i+1 < len(tokens) && reGenWord.MatchString(tokens[i+1]) {
			for _, part := range strings.Split(tok, "/") {
				if label := generationLabel(part); label != "" {
					gens = append(gens, label)
				}
			}
			claims.Claim(i)
			claims.Claim(i + 1)
			i += 2
			continue
		}

		if reOrdinal.MatchString(tok) || reEmbeddedGen.MatchString(tok) || reBareNumber.MatchString(tok) {
			chain := []int{i}
			j := i
			for j+2 < len(tokens) && tokens[j+1] == "/" && chainable(tokens[j+2]) {
				chain = append(chain, j+2)
				j += 2
			}
			genIdx := j + 1
			if genIdx < len(tokens) && reGenWord.MatchString(tokens[genIdx]) {
				for _, ci := range chain {
					if label := generationLabel(tokens[ci]); label != "" {
						gens = append(gens, label)
					}
					claims.Claim(ci)
					if ci+1 < genIdx {
						claims.Claim(ci + 1) // the slash
					}
				}
				claims.Claim(genIdx)
				i = genIdx + 1
				continue
			}
			// Standalone ordinal adjacent to CPU content, e.g. "10th/Apple"
			// or a trailing "Core i7 10th".
			if len(chain) == 1 && reOrdinal.MatchString(tok) && cpuAdjacentBefore(tokens, i) &&
				(i == len(tokens)-1 || tokens[i+1] == "/") {
				if label := generationLabel(tok); label != "" {
					gens = append(gens, label)
				}
				claims.Claim(i)
				i++
				continue
			}
		}
		i++
	}
	return gens
}

func chainable(tok string) bool {
	return reOrdinal.MatchString(tok) || reBareNumber.MatchString(tok) || reEmbeddedGen.MatchString(tok)
}

func generationRelevant(tok string) bool {
	return reShortGenModel.MatchString(tok) || reOrdinal.MatchString(tok) || reGenWord.MatchString(tok)
}

// generationLabel converts one generation-bearing token to its label:
// "8th" -> "8th Gen", "6" -> "6th Gen", "i7-11th" -> "11th Gen".
func generationLabel(tok string) string {
	if m := reEmbeddedGen.FindStringSubmatch(tok); m != nil {
		return m[1] + " Gen"
	}
	if reOrdinal.MatchString(tok) {
		return tok + " Gen"
	}
	if reBareNumber.MatchString(tok) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return ""
		}
		return ordinalGen(n)
	}
	return ""
}

func hasSystemContext(tokens []string) bool {
	for _, tok := range tokens {
		if systemIndicators[strings.ToLower(tok)] {
			return true
		}
	}
	return false
}

// hasExplicitCPUSignal allows generation extraction in system/motherboard
// titles only when a concrete CPU family or model is also present.
func hasExplicitCPUSignal(tokens []string, joined string) bool {
	familyShapes := []*regexp.Regexp{
		regexp.MustCompile(`\bcore\s+i[3579]\b`),
		regexp.MustCompile(`\bcore\s+ultra\s+[579]\b`),
		regexp.MustCompile(`\bryzen\s+[3579]\b`),
		regexp.MustCompile(`\bxeon\b`),
	}
	for _, re := range familyShapes {
		if re.MatchString(joined) {
			return true
		}
	}
	modelShapes := []*regexp.Regexp{
		regexp.MustCompile(`(?i)^i[3579]-[0-9]{3,4}[a-zA-Z]*`),
		regexp.MustCompile(`(?i)^i[3579]-[0-9]{1,2}$`),
		regexp.MustCompile(`^(?:E[357]|W)-[0-9]{4}[a-zA-Z]*`),
		regexp.MustCompile(`^[3579][0-9]{3}[a-zA-Z]*`),
		regexp.MustCompile(`^[125]\d{2}[a-zA-Z]*`),
	}
	for _, tok := range tokens {
		low := strings.ToLower(tok)
		if low == "i3" || low == "i5" || low == "i7" || low == "i9" {
			return true
		}
		for _, re := range modelShapes {
			if re.MatchString(tok) {
				return true
			}
		}
	}
	if strings.Contains(joined, "intel") && strings.Contains(joined, "core") {
		if regexp.MustCompile(`\b\d+(?:st|nd|rd|th)\s*(?:/\s*\d+(?:st|nd|rd|th)\s*)?gen\b`).MatchString(joined) {
			return true
		}
	}
	return false
}

// cpuAdjacentBefore reports whether the ordinal token at index is preceded
// by CPU family or model content.
func cpuAdjacentBefore(tokens []string, index int) bool {
	if index == 0 {
		return false
	}
	prev := strings.ToLower(tokens[index-1])
	if strings.HasPrefix(prev, "i3") || strings.HasPrefix(prev, "i5") ||
		strings.HasPrefix(prev, "i7") || strings.HasPrefix(prev, "i9") {
		return true
	}
	switch prev {
	case "core", "ryzen", "xeon", "pentium", "celeron", "athlon", "5", "7", "9":
		return true
	}
	if index > 1 && strings.ToLower(tokens[index-2]) == "core" &&
		(strings.HasPrefix(prev, "i3") || strings.HasPrefix(prev, "i5") ||
			strings.HasPrefix(prev, "i7") || strings.HasPrefix(prev, "i9")) {
		return true
	}
	if index > 2 && strings.ToLower(tokens[index-3]) == "core" &&
		strings.ToLower(tokens[index-2]) == "ultra" &&
		(prev == "5" || prev == "7" || prev == "9") {
		return true
	}
	return false
}

// scanCPUModels is the single left-to-right model/family/brand walk. It
// recognizes, in priority order: slash-reconstructed i-series pairs,
// standalone family tokens, Core Ultra, Pentium/Celeron pairs, Core-iX
// multi-CPU patterns, Xeon, dash-embedded i-series sequences, and the
// remaining single-token shapes (Apple M, Core M, Celeron J/N/G, bare
// models). It returns the recognized processors plus the set of positions
// the walk claimed, which the quantity pass uses for adjacency.
func scanCPUModels(tokens []string, claims *token.ClaimSet) ([]cpuInfo, map[int]bool) {
	var infos []cpuInfo
	consumedHere := make(map[int]bool)
	claim := func(positions ...int) {
		for _, p := range positions {
			claims.Claim(p)
			consumedHere[p] = true
		}
	}
	ctx := hasCPUContext(tokens)

	// "Processor" is filler next to a model; take it out of play.
	for i, tok := range tokens {
		if strings.EqualFold(tok, "processor") {
			claims.Claim(i)
		}
	}

	i := 0
	for i < len(tokens) {
		if claims.Claimed(i) {
			i++
			continue
		}
		tok := tokens[i]
		low := strings.ToLower(tok)

		// Short generation fragments belong to the generation pass.
		if reShortGenModel.MatchString(tok) {
			i++
			continue
		}

		// Incomplete slash pair: "i5-8250U/7200U" or "i7-2640/20M".
		if reISeriesPrefix.MatchString(tok) && !reShortGenModel.MatchString(tok) &&
			i+2 < len(tokens) && tokens[i+1] == "/" && reModelFragment.MatchString(tokens[i+2]) {
			second := reconstructISeries(tok, tokens[i+2])
			infos = append(infos, iSeriesInfo(tok))
			infos = append(infos, iSeriesInfo(second))
			claim(i, i+2)
			i += 3
			continue
		}

		// Core M incomplete slash pair: "m3-7Y30/6Y54".
		if reCoreMPrefix.MatchString(tok) && i+2 < len(tokens) && tokens[i+1] == "/" &&
			reAlnumFragment.MatchString(tokens[i+2]) {
			prefix := strings.ToLower(strings.SplitN(tok, "-", 2)[0])
			infos = append(infos, coreMInfo(tok))
			infos = append(infos, coreMInfo(prefix+"-"+tokens[i+2]))
			claim(i, i+2)
			i += 3
			continue
		}

		// Standalone family slash pair: "i9/i7".
		if isBareISeries(low) && i+2 < len(tokens) && tokens[i+1] == "/" &&
			isBareISeries(strings.ToLower(tokens[i+2])) {
			infos = append(infos,
				cpuInfo{brand: "Intel", families: []string{"Core " + low}},
				cpuInfo{brand: "Intel", families: []string{"Core " + strings.ToLower(tokens[i+2])}})
			claim(i, i+2)
			i += 3
			continue
		}

		// Core Ultra: "Core Ultra 5 135U" plus its slash variants.
		if low == "core" && i+2 < len(tokens) && strings.EqualFold(tokens[i+1], "ultra") &&
			isUltraSeries(tokens[i+2]) {
			i = scanCoreUltra(tokens, claims, i, claim, &infos)
			continue
		}

		// Pentium variant and Pentium/Celeron pairs.
		if advanced, next := scanPentium(tokens, i, claim, &infos); advanced {
			i = next
			continue
		}

		// "Core iX" without a dash model: possible multi-CPU pattern.
		if low == "core" && i+1 < len(tokens) && isBareISeriesPrefix(tokens[i+1]) {
			i = scanCoreFamilyPair(tokens, claims, i, claim, &infos)
			continue
		}

		// Generic "Intel Core"/"Core" directly before an unclaimed
		// generation pattern and no i-series family.
		if advanced, next := scanGenericCore(tokens, claims, i, claim, &infos); advanced {
			i = next
			continue
		}

		// Xeon with series and model.
		if low == "xeon" {
			if advanced, next := scanXeon(tokens, claims, i, claim, &infos); advanced {
				i = next
				continue
			}
		}

		// Dash-embedded i-series, optionally a full slash sequence:
		// "i7-10700K", "i5-8250U / i7-8550U / 7200U".
		if reISeriesPrefix.MatchString(tok) {
			infos = append(infos, iSeriesInfo(tok))
			claim(i)
			j := i + 1
			for j+1 < len(tokens) && tokens[j] == "/" &&
				(reISeriesPrefix.MatchString(tokens[j+1]) || regexp.MustCompile(`^\d{3,5}[a-zA-Z]*$`).MatchString(tokens[j+1])) {
				if reISeriesPrefix.MatchString(tokens[j+1]) {
					infos = append(infos, iSeriesInfo(tokens[j+1]))
				} else {
					infos = append(infos, standaloneModelInfo(tokens[j+1], tokens))
				}
				claim(j + 1)
				j += 2
			}
			i = j
			continue
		}

		// Standalone family with context: "i7" in an Intel/Core title.
		if isBareISeries(low) && (ctx || mentionsAny(tokens, "intel", "core", "apple")) {
			infos = append(infos, cpuInfo{brand: "Intel", families: []string{"Core " + low}})
			claim(i)
			i++
			continue
		}

		// Remaining single-token shapes.
		if info, ok := scanOtherModel(tokens, i, ctx); ok {
			claim(info.span...)
			infos = append(infos, info.cpuInfo)
			i = info.span[len(info.span)-1] + 1
			continue
		}

		i++
	}
	return infos, consumedHere
}

func isBareISeries(low string) bool {
	return low == "i3" || low == "i5" || low == "i7" || low == "i9"
}

func isBareISeriesPrefix(tok string) bool {
	low := strings.ToLower(tok)
	return (strings.HasPrefix(low, "i3") || strings.HasPrefix(low, "i5") ||
		strings.HasPrefix(low, "i7") || strings.HasPrefix(low, "i9")) &&
		!reISeriesPrefix.MatchString(tok)
}

func isUltraSeries(tok string) bool {
	return tok == "5" || tok == "7" || tok == "9"
}

func mentionsAny(tokens []string, words ...string) bool {
	for _, tok := range tokens {
		low := strings.ToLower(tok)
		for _, w := range words {
			if low == w {
				return true
			}
		}
	}
	return false
}

// scanCoreUltra handles "Core Ultra N [model]" and the four slash-completed
// forms where the second element borrows missing tokens from the first:
// full repeat, "Ultra N model", "N model", and bare "model".
func scanCoreUltra(tokens []string, claims *token.ClaimSet, start int, claim func(...int), infos *[]cpuInfo) int {
	series := tokens[start+2]
	modelIdx := start + 3
	for modelIdx < len(tokens) && claims.Claimed(modelIdx) {
		modelIdx++
	}
	if modelIdx >= len(tokens) || !reUltraModelNum.MatchString(tokens[modelIdx]) {
		*infos = append(*infos, coreUltraInfo(series, ""))
		claim(start, start+1, start+2)
		return start + 3
	}

	*infos = append(*infos, coreUltraInfo(series, tokens[modelIdx]))
	claim(start, start+1, start+2, modelIdx)

	sep := modelIdx + 1
	for sep < len(tokens) && claims.Claimed(sep) {
		sep++
	}
	if sep >= len(tokens) || tokens[sep] != "/" {
		return modelIdx + 1
	}
	after := sep + 1
	switch {
	case after+3 < len(tokens) && strings.EqualFold(tokens[after], "core") &&
		strings.EqualFold(tokens[after+1], "ultra") && isUltraSeries(tokens[after+2]) &&
		reUltraModelNum.MatchString(tokens[after+3]):
		*infos = append(*infos, coreUltraInfo(tokens[after+2], tokens[after+3]))
		claim(after, after+1, after+2, after+3)
		return after + 4
	case after+2 < len(tokens) && strings.EqualFold(tokens[after], "ultra") &&
		isUltraSeries(tokens[after+1]) && reUltraModelNum.MatchString(tokens[after+2]):
		*infos = append(*infos, coreUltraInfo(tokens[after+1], tokens[after+2]))
		claim(after, after+1, after+2)
		return after + 3
	case after+1 < len(tokens) && isUltraSeries(tokens[after]) &&
		reUltraModelNum.MatchString(tokens[after+1]):
		*infos = append(*infos, coreUltraInfo(tokens[after], tokens[after+1]))
		claim(after, after+1)
		return after + 2
	case after < len(tokens) && reUltraModelNum.MatchString(tokens[after]):
		*infos = append(*infos, coreUltraInfo(series, tokens[after]))
		claim(after)
		return after + 1
	}
	return modelIdx + 1
}

// coreUltraInfo shapes one Core Ultra processor. The 100 series is the
// first Ultra generation, the 200 series the second.
func coreUltraInfo(series, modelNum string) cpuInfo {
	info := cpuInfo{brand: "Intel", families: []string{"Core Ultra " + series}}
	if modelNum == "" {
		return info
	}
	info.model = modelNum
	if m := reModelSuffix.FindStringSubmatch(modelNum); m != nil {
		info.suffix = strings.ToUpper(m[2])
	}
	switch {
	case strings.HasPrefix(modelNum, "1"):
		info.gen = "1st Gen Ultra"
	case strings.HasPrefix(modelNum, "2"):
		info.gen = "2nd Gen Ultra"
	}
	return info
}

// scanPentium recognizes "Intel Pentium Silver/Celeron", "Pentium Gold",
// and bare "Pentium/Celeron" pairs. Returns false when the position is not
// a variant or pair pattern (a plain "Pentium <model>" is handled later).
func scanPentium(tokens []string, i int, claim func(...int), infos *[]cpuInfo) (bool, int) {
	low := strings.ToLower(tokens[i])
	start := i
	if low == "intel" && i+1 < len(tokens) && strings.EqualFold(tokens[i+1], "pentium") {
		start = i + 1
	} else if low != "pentium" {
		return false, 0
	}

	variant := ""
	variantIdx := -1
	slashIdx := -1
	celeronIdx := -1
	for j := start + 1; j < len(tokens) && j < start+5; j++ {
		tl := strings.ToLower(tokens[j])
		switch {
		case xeonMetalWords[tl] && tl != "platinum" && variant == "":
			variant = titleWord(tl)
			variantIdx = j
		case tokens[j] == "/":
			slashIdx = j
		case tl == "celeron":
			celeronIdx = j
		}
		if celeronIdx >= 0 {
			break
		}
	}

	family := "Pentium"
	if variant != "" {
		family = "Pentium " + variant
	}
	switch {
	case celeronIdx >= 0:
		span := []int{start}
		if start != i {
			span = append([]int{i}, span...)
		}
		if variantIdx >= 0 {
			span = append(span, variantIdx)
		}
		if slashIdx >= 0 {
			span = append(span, slashIdx)
		}
		span = append(span, celeronIdx)
		claim(span...)
		*infos = append(*infos, cpuInfo{brand: "Intel", families: []string{family, "Celeron"}})
		return true, celeronIdx + 1
	case variant != "":
		span := []int{start, variantIdx}
		if start != i {
			span = append([]int{i}, span...)
		}
		claim(span...)
		*infos = append(*infos, cpuInfo{brand: "Intel", families: []string{family}})
		return true, variantIdx + 1
	}
	return false, 0
}

// scanCoreFamilyPair handles "Core iX" without a dash model, including the
// multi-CPU continuations: "Core i7 10th/Apple M1", "Core i7 8th Gen i5
// 11th Gen", and "Core i7/M1". Generation tokens are left to the
// generation pass.
func scanCoreFamilyPair(tokens []string, claims *token.ClaimSet, start int, claim func(...int), infos *[]cpuInfo) int {
	ix := strings.ToLower(tokens[start+1])[:2]
	*infos = append(*infos, cpuInfo{brand: "Intel", families: []string{"Core " + ix}})
	claim(start, start+1)

	next := start + 2
	skip := func() {
		for next < len(tokens) &&
			(claims.Claimed(next) || reOrdinal.MatchString(tokens[next]) || reGenWord.MatchString(tokens[next])) {
			next++
		}
	}
	skip()
	separator := false
	if next < len(tokens) && tokens[next] == "/" {
		separator = true
		next++
		skip()
	}
	if next >= len(tokens) {
		return next
	}

	tok := tokens[next]
	low := strings.ToLower(tok)
	switch {
	case low == "apple" && next+1 < len(tokens) && reAppleMChip.MatchString(tokens[next+1]):
		chip := tokens[next+1]
		span := []int{next, next + 1}
		if next+2 < len(tokens) && isChipVariant(tokens[next+2]) {
			chip += " " + tokens[next+2]
			span = append(span, next+2)
		}
		claim(span...)
		*infos = append(*infos, appleMInfoFor(chip))
		return span[len(span)-1] + 1
	case reAppleMChip.MatchString(tok):
		chip := tok
		span := []int{next}
		if next+1 < len(tokens) && isChipVariant(tokens[next+1]) {
			chip += " " + tokens[next+1]
			span = append(span, next+1)
		}
		claim(span...)
		*infos = append(*infos, appleMInfoFor(chip))
		return span[len(span)-1] + 1
	case isBareISeries(low):
		claim(next)
		*infos = append(*infos, cpuInfo{brand: "Intel", families: []string{"Core " + low}})
		return next + 1
	case separator && (tok == "3" || tok == "5" || tok == "7" || tok == "9"):
		claim(next)
		*infos = append(*infos, cpuInfo{brand: "Intel", families: []string{"Core i" + tok}})
		return next + 1
	}
	return next
}

func isChipVariant(tok string) bool {
	low := strings.ToLower(tok)
	return low == "pro" || low == "max" || low == "ultra"
}

// scanGenericCore emits a bare "Core" family when "Intel Core"/"Core" is
// followed directly by a still-unclaimed generation pattern and no
// i-series family token.
func scanGenericCore(tokens []string, claims *token.ClaimSet, i int, claim func(...int), infos *[]cpuInfo) (bool, int) {
	low := strings.ToLower(tokens[i])
	coreIdx := -1
	intel := false
	if low == "intel" && i+1 < len(tokens) && strings.EqualFold(tokens[i+1], "core") {
		coreIdx = i + 1
		intel = true
	} else if low == "core" {
		coreIdx = i
	} else {
		return false, 0
	}

	next := coreIdx + 1
	for next < len(tokens) && claims.Claimed(next) {
		next++
	}
	if next >= len(tokens) || claims.Claimed(next) || !reOrdinal.MatchString(tokens[next]) {
		return false, 0
	}
	slashGen := next+3 < len(tokens) && tokens[next+1] == "/" &&
		reOrdinal.MatchString(tokens[next+2]) && reGenWord.MatchString(tokens[next+3])
	singleGen := next+1 < len(tokens) && reGenWord.MatchString(tokens[next+1])
	if !slashGen && !singleGen {
		return false, 0
	}

	info := cpuInfo{families: []string{"Core"}}
	if intel {
		info.brand = "Intel"
		claim(i, coreIdx)
	} else {
		claim(coreIdx)
	}
	*infos = append(*infos, info)
	if slashGen {
		return true, next + 4
	}
	return true, next + 2
}

// scanXeon recognizes "Xeon [CPU] <series>-<model> [vN]", split series
// ("Xeon E5 2630 v3"), generic E-models ("Xeon E-2176M"), and named metal
// series ("Xeon Gold 6142").
func scanXeon(tokens []string, claims *token.ClaimSet, i int, claim func(...int), infos *[]cpuInfo) (bool, int) {
	span := []int{i}
	parts := []string{}
	idx := i + 1
	skip := func() {
		for idx < len(tokens) && claims.Claimed(idx) {
			idx++
		}
	}
	skip()
	if idx < len(tokens) && strings.EqualFold(tokens[idx], "cpu") {
		idx++
		skip()
	}
	if idx >= len(tokens) {
		return false, 0
	}

	tok := tokens[idx]
	low := strings.ToLower(tok)
	switch {
	case reXeonSeriesModel.MatchString(tok) || reXeonEModel.MatchString(tok):
		span = append(span, idx)
		parts = append(parts, tok)
		vIdx := idx + 1
		for vIdx < len(tokens) && claims.Claimed(vIdx) {
			vIdx++
		}
		if vIdx < len(tokens) && reXeonVersion.MatchString(tokens[vIdx]) {
			span = append(span, vIdx)
			parts = append(parts, tokens[vIdx])
		}
	case reXeonSeriesOnly.MatchString(tok):
		numIdx := idx + 1
		for numIdx < len(tokens) && claims.Claimed(numIdx) {
			numIdx++
		}
		if numIdx >= len(tokens) || !reFourDigitModel.MatchString(tokens[numIdx]) {
			return false, 0
		}
		span = append(span, idx, numIdx)
		parts = append(parts, tok, tokens[numIdx])
		vIdx := numIdx + 1
		for vIdx < len(tokens) && claims.Claimed(vIdx) {
			vIdx++
		}
		if vIdx < len(tokens) && reXeonVersion.MatchString(tokens[vIdx]) {
			span = append(span, vIdx)
			parts = append(parts, tokens[vIdx])
		}
	case xeonMetalWords[low]:
		numIdx := idx + 1
		for numIdx < len(tokens) && claims.Claimed(numIdx) {
			numIdx++
		}
		if numIdx >= len(tokens) || !reFourDigitModel.MatchString(tokens[numIdx]) {
			return false, 0
		}
		span = append(span, idx, numIdx)
		parts = append(parts, tok, tokens[numIdx])
	default:
		// Numeric E-series in one token: "Xeon E5504".
		if regexp.MustCompile(`(?i)^E\d{3,4}$`).MatchString(tok) {
			span = append(span, idx)
			parts = append(parts, tok)
		} else {
			return false, 0
		}
	}

	claim(span...)
	*infos = append(*infos, xeonInfo(parts))
	return true, span[len(span)-1] + 1
}

// xeonInfo shapes a Xeon match: named metal series keep the number as the
// model, numeric E-series collapse to their marketing family ("E5504" ->
// "Xeon 5500"), a trailing vN maps directly to the generation, and legacy
// E3/E5/E6/E7 models without a version fall back to a fixed map.
func xeonInfo(parts []string) cpuInfo {
	info := cpuInfo{brand: "Intel"}
	mdl := normalizeCPUModel(strings.Join(parts, " "))
	info.model = mdl

	if named := reNamedXeonSeries.FindString(mdl); named != "" {
		series := titleWord(named)
		info.families = []string{"Xeon " + series}
		numRe := regexp.MustCompile(`(?i)` + series + `\s+([0-9]{4}[A-Z]*)`)
		if m := numRe.FindStringSubmatch(mdl); m != nil {
			info.model = m[1]
		}
	} else if m := reXeonAlnumSeries.FindStringSubmatch(mdl); m != nil {
		series := strings.ToUpper(m[1])
		digits := series[1:]
		if series[0] == 'E' && len(digits) >= 2 && reBareNumber.MatchString(digits) {
			info.families = []string{"Xeon " + digits[:2] + "00"}
			info.model = "Xeon-" + series
		} else {
			info.families = []string{"Xeon " + series}
		}
	} else {
		info.families = []string{"Xeon"}
	}

	if vm := reVersionAtEnd.FindStringSubmatch(mdl); vm != nil {
		v, _ := strconv.Atoi(vm[1])
		info.gen = ordinalGen(v)
		base := strings.TrimSpace(mdl[:len(mdl)-len(vm[0])])
		info.model = normalizeCPUModel(base) + " v" + vm[1]
	} else if gm := reLegacyXeonModel.FindStringSubmatch(mdl); gm != nil {
		switch gm[2] {
		case "3":
			info.gen = "1st Gen"
		case "5":
			info.gen = "2nd Gen"
		case "6":
			info.gen = "3rd Gen"
		case "7":
			info.gen = "4th Gen"
		}
	}
	return info
}

// iSeriesInfo shapes a dash-embedded Core i-series token. Ordinal bodies
// ("i7-11th") carry a generation instead of a model; table lookup resolves
// the generation for real models, with the leading-digit fallback
// otherwise.
func iSeriesInfo(tok string) cpuInfo {
	parts := strings.SplitN(cleanValue(tok), "-", 2)
	prefix := strings.ToLower(parts[0])
	info := cpuInfo{brand: "Intel", families: []string{"Core " + prefix}}
	if len(parts) < 2 || parts[1] == "" {
		return info
	}
	body := parts[1]

	// One- or two-digit fragments and ordinal bodies are generation
	// indicators, not models.
	if regexp.MustCompile(`^\d{1,2}$`).MatchString(body) {
		return info
	}
	if reOrdinal.MatchString(body) {
		n, _ := strconv.Atoi(regexp.MustCompile(`^\d+`).FindString(body))
		info.gen = ordinalGen(n)
		return info
	}

	info.model = body
	if m := reModelSuffix.FindStringSubmatch(body); m != nil {
		info.suffix = m[2]
	}
	gen := intelGeneration(prefix+"-"+body, "Core "+prefix)
	if gen == "" && body[0] >= '0' && body[0] <= '9' {
		first := int(body[0] - '0')
		if first == 1 && len(body) >= 4 && body[1] >= '0' && body[1] <= '9' {
			two, _ := strconv.Atoi(body[:2])
			gen = ordinalGen(two)
		} else {
			gen = ordinalGen(first)
		}
	}
	info.gen = gen
	return info
}

// reconstructISeries completes the second half of an incomplete slash pair
// by borrowing missing leading digits from the first model: "i7-2640/20M"
// yields "i7-2620M".
func reconstructISeries(first, fragment string) string {
	fm := regexp.MustCompile(`(?i)^(i[3579])-(\d{3,4})[a-zA-Z]*$`).FindStringSubmatch(first)
	sm := regexp.MustCompile(`^(\d+)([a-zA-Z]*)$`).FindStringSubmatch(fragment)
	prefix := strings.SplitN(first, "-", 2)[0]
	if fm == nil || sm == nil {
		return prefix + "-" + fragment
	}
	lead, digits, suffix := fm[2], sm[1], sm[2]
	if len(digits) < len(lead) {
		digits = lead[:len(lead)-len(digits)] + digits
	}
	return fm[1] + "-" + digits + suffix
}

// coreMInfo shapes a Core M token like "m3-7Y30".
func coreMInfo(tok string) cpuInfo {
	parts := strings.SplitN(cleanValue(tok), "-", 2)
	prefix := strings.ToLower(parts[0])
	info := cpuInfo{brand: "Intel", families: []string{"Core " + prefix}}
	if len(parts) < 2 {
		return info
	}
	body := parts[1]
	info.model = body
	if m := reModelSuffix.FindStringSubmatch(body); m != nil {
		info.suffix = m[2]
	}
	if len(body) > 0 && body[0] >= '5' && body[0] <= '8' {
		info.gen = ordinalGen(int(body[0] - '0'))
	}
	return info
}

// appleMInfoFor shapes an Apple M-chip name such as "M1" or "M2 Pro".
func appleMInfoFor(chip string) cpuInfo {
	return cpuInfo{
		brand:    "Apple",
		families: []string{"Apple " + chip},
		model:    chip,
		gen:      appleMGeneration(chip),
	}
}

// otherModelMatch is a single-token (or token-plus-variant) match from the
// tail of the model walk.
type otherModelMatch struct {
	cpuInfo
	span []int
}

var modelNamePrefixes = map[string]bool{
	"thinkpad": true, "latitude": true, "inspiron": true, "pavilion": true,
	"elitebook": true, "probook": true, "macbook": true, "imac": true,
	"surface": true, "yoga": true, "ideapad": true, "vostro": true,
	"precision": true, "omen": true, "envy": true, "spectre": true,
	"zbook": true, "chromebook": true, "elite": true, "x360": true,
}

var gpuKeywords = map[string]bool{
	"geforce": true, "gtx": true, "rtx": true, "radeon": true, "rx": true,
	"quadro": true, "tesla": true, "arc": true, "iris": true, "uhd": true,
	"hd": true,
}

// scanOtherModel recognizes the remaining single-token shapes: Apple
// M-chips (brand-gated), "Pentium <model>", Core M dash models, Celeron
// J/N/G parts, and bare alphanumeric models that sit next to CPU context
// and after a CPU brand word.
func scanOtherModel(tokens []string, i int, ctx bool) (otherModelMatch, bool) {
	tok := tokens[i]
	low := strings.ToLower(tok)

	if reAppleMChip.MatchString(tok) {
		if info, span, ok := appleMMatch(tokens, i); ok {
			return otherModelMatch{cpuInfo: info, span: span}, true
		}
		return otherModelMatch{}, false
	}

	if low == "pentium" && i+1 < len(tokens) &&
		regexp.MustCompile(`^[0-9]{3,4}[a-zA-Z]*$`).MatchString(tokens[i+1]) {
		mdl := cleanValue(tokens[i+1])
		info := cpuInfo{brand: "Intel", families: []string{"Pentium"}, model: mdl}
		if m := reTrailingLetter.FindStringSubmatch(mdl); m != nil {
			info.suffix = m[1]
		}
		return otherModelMatch{cpuInfo: info, span: []int{i, i + 1}}, true
	}

	if reCoreMModel.MatchString(tok) && ctx && adjacentToCPUToken(tokens, i) {
		return otherModelMatch{cpuInfo: coreMInfo(tok), span: []int{i}}, true
	}

	if reJNGModel.MatchString(tok) && ctx && adjacentToCPUToken(tokens, i) {
		return otherModelMatch{cpuInfo: jngInfo(tok, tokens), span: []int{i}}, true
	}

	if reStandalone.MatchString(tok) && !reUnitToken.MatchString(tok) && ctx &&
		!precededByGPUKeyword(tokens, i) &&
		afterCPUBrand(tokens, i) &&
		adjacentToCPUToken(tokens, i) {
		return otherModelMatch{cpuInfo: standaloneModelInfo(tok, tokens), span: []int{i}}, true
	}

	return otherModelMatch{}, false
}

// appleMMatch gates Apple M-chip detection: an explicit nearby Apple brand
// always wins; otherwise Intel context, competing brands, or a preceding
// product-model word reject the match.
func appleMMatch(tokens []string, i int) (cpuInfo, []int, bool) {
	appleNearby := false
	for j := max(0, i-5); j < min(len(tokens), i+5); j++ {
		if strings.EqualFold(tokens[j], "apple") {
			appleNearby = true
			break
		}
	}
	if !appleNearby {
		for _, tok := range tokens {
			low := strings.ToLower(tok)
			if low == "intel" || low == "core" {
				return cpuInfo{}, nil, false
			}
			if reISeriesModel.MatchString(tok) {
				return cpuInfo{}, nil, false
			}
		}
		if i > 0 {
			prev := strings.ToLower(tokens[i-1])
			if modelNamePrefixes[prev] || regexp.MustCompile(`^x\d+`).MatchString(prev) ||
				regexp.MustCompile(`^\d+[a-z]*$`).MatchString(prev) {
				return cpuInfo{}, nil, false
			}
		}
		for _, tok := range tokens {
			switch strings.ToLower(tok) {
			case "amd", "qualcomm", "mediatek", "samsung":
				return cpuInfo{}, nil, false
			}
		}
	}

	chip := tokens[i]
	span := []int{i}
	if i+1 < len(tokens) && isChipVariant(tokens[i+1]) {
		chip += " " + tokens[i+1]
		span = append(span, i+1)
	}
	return appleMInfoFor(chip), span, true
}

// jngInfo classifies low-power J/N/G parts: 5000-series ship as Pentium
// Silver, the rest as Celeron.
func jngInfo(tok string, tokens []string) cpuInfo {
	info := cpuInfo{brand: "Intel", model: cleanValue(tok)}
	pentium := mentionsAny(tokens, "pentium")
	fiveSeries := len(tok) > 1 && tok[1] == '5'
	if pentium || fiveSeries {
		family := "Pentium"
		for _, t := range tokens {
			tl := strings.ToLower(t)
			if tl == "silver" || tl == "gold" || tl == "bronze" {
				family = "Pentium " + titleWord(tl)
				break
			}
		}
		info.families = []string{family}
	} else {
		info.families = []string{"Celeron"}
	}
	return info
}

// standaloneModelInfo shapes a bare model number like "3210M": generation
// comes from the leading digits, the family is inferred from any i-series
// token elsewhere in the title, and no family is assumed otherwise.
func standaloneModelInfo(tok string, tokens []string) cpuInfo {
	mdl := cleanValue(tok)
	info := cpuInfo{model: mdl}
	if m := reTrailingLetter.FindStringSubmatch(mdl); m != nil {
		info.suffix = m[1]
	}
	if gen := standaloneGeneration(mdl); gen != "" {
		info.gen = gen
		info.brand = "Intel"
		for _, t := range tokens {
			if fm := regexp.MustCompile(`(?i)^(i[3579])-\d+`).FindStringSubmatch(t); fm != nil {
				info.families = []string{"Core " + strings.ToLower(fm[1])}
				break
			}
		}
	}
	return info
}

func precededByGPUKeyword(tokens []string, index int) bool {
	for j := max(0, index-3); j < index; j++ {
		if gpuKeywords[strings.ToLower(tokens[j])] {
			return true
		}
	}
	return false
}

// afterCPUBrand requires the token to appear after an explicit Intel, AMD,
// or Apple token; bare models with no brand anywhere are rejected.
func afterCPUBrand(tokens []string, index int) bool {
	for j, tok := range tokens {
		switch strings.ToLower(tok) {
		case "intel", "amd", "apple":
			if index > j {
				return true
			}
		}
	}
	return false
}

// adjacentToCPUToken checks the immediate neighbors for CPU vocabulary,
// looking one extra step across a bare slash.
func adjacentToCPUToken(tokens []string, index int) bool {
	check := func(j int) bool {
		return j >= 0 && j < len(tokens) && isCPURelated(tokens[j])
	}
	if check(index-1) || check(index+1) {
		return true
	}
	if index-1 >= 0 && tokens[index-1] == "/" && check(index-2) {
		return true
	}
	if index+1 < len(tokens) && tokens[index+1] == "/" && check(index+2) {
		return true
	}
	return false
}

// fallbackBrand returns the first canonical brand word in the title.
func fallbackBrand(tokens []string) string {
	for _, tok := range tokens {
		if name, ok := cpuBrandNames[strings.ToLower(tok)]; ok {
			return name
		}
	}
	return ""
}

// fallbackFamilies recognizes family-only patterns when the model walk
// produced none: "Core iX", "Core Ultra N", slash pairs like "i5/7" and
// "Xeon/i7", plus the plain family words.
func fallbackFamilies(tokens []string) []string {
	rePair := regexp.MustCompile(`(?i)^(i[3579])/([3579])$`)
	for i, tok := range tokens {
		low := strings.ToLower(tok)
		switch {
		case low == "core" && i+2 < len(tokens) && strings.EqualFold(tokens[i+1], "ultra") && isUltraSeries(tokens[i+2]):
			return []string{"Core Ultra " + tokens[i+2]}
		case low == "core" && i+1 < len(tokens):
			next := tokens[i+1]
			if m := rePair.FindStringSubmatch(next); m != nil {
				return []string{"Core " + strings.ToLower(m[1]), "Core i" + m[2]}
			}
			if isBareISeries(strings.ToLower(next)) {
				return []string{"Core " + strings.ToLower(next)}
			}
		case rePair.MatchString(tok):
			m := rePair.FindStringSubmatch(tok)
			return []string{"Core " + strings.ToLower(m[1]), "Core i" + m[2]}
		case isBareISeries(low) && i+2 < len(tokens) && tokens[i+1] == "/" &&
			regexp.MustCompile(`^[3579]$`).MatchString(tokens[i+2]):
			return []string{"Core " + low, "Core i" + tokens[i+2]}
		case low == "xeon" && i+2 < len(tokens) && tokens[i+1] == "/" &&
			isBareISeries(strings.ToLower(tokens[i+2])):
			return []string{"Xeon", "Core " + strings.ToLower(tokens[i+2])}
		case low == "xeon":
			if i+1 < len(tokens) {
				next := tokens[i+1]
				if regexp.MustCompile(`(?i)^[EWX][0-9]*$`).MatchString(next) {
					return []string{"Xeon " + strings.ToUpper(next)}
				}
				if xeonMetalWords[strings.ToLower(next)] {
					return []string{"Xeon " + titleWord(next)}
				}
			}
			return []string{"Xeon"}
		case low == "ryzen" && i+1 < len(tokens) && regexp.MustCompile(`^[3579]$`).MatchString(tokens[i+1]):
			return []string{"Ryzen " + tokens[i+1]}
		case low == "pentium" || low == "celeron" || low == "atom" ||
			low == "athlon" || low == "phenom":
			return []string{titleWord(low)}
		case low == "epyc":
			return []string{"EPYC"}
		case low == "threadripper":
			return []string{"Threadripper"}
		}
	}
	return nil
}

var ramMarkerWords = map[string]bool{
	"ram": true, "memory": true, "sodimm": true, "dimm": true, "so-dimm": true,
}

// extractCPUSpeeds accepts GHz tokens unconditionally and MHz tokens only
// with CPU context in an eight-token look-back window and no immediately
// preceding RAM/DDR marker. Speed positions feed quantity adjacency but
// are not claimed.
func extractCPUSpeeds(tokens []string, cpuConsumed map[int]bool) []string {
	var speeds []string
	for i, tok := range tokens {
		low := strings.ToLower(cleanValue(tok))
		if reGHzToken.MatchString(low) {
			speeds = append(speeds, normalizeSpeed(tok))
			cpuConsumed[i] = true
			continue
		}
		if reMHzToken.MatchString(low) && cpuContextBefore(tokens, i) && !ramMarkerBefore(tokens, i) {
			speeds = append(speeds, normalizeSpeed(tok))
			cpuConsumed[i] = true
		}
	}
	return speeds
}

func cpuContextBefore(tokens []string, index int) bool {
	shapes := []*regexp.Regexp{
		regexp.MustCompile(`^(intel|amd|apple)$`),
		regexp.MustCompile(`^(cpu|processor)$`),
		regexp.MustCompile(`^core$`),
		regexp.MustCompile(`^ultra$`),
		regexp.MustCompile(`^i[3579]$`),
		regexp.MustCompile(`^m[357]$`),
		regexp.MustCompile(`^(ryzen|xeon|pentium|celeron|athlon)$`),
		regexp.MustCompile(`^i[3579]-[0-9]{3,5}[a-z0-9]*$`),
		regexp.MustCompile(`^[0-9]{1,2}[a-z][0-9]{2,3}$`),
		regexp.MustCompile(`^[ewx]-?[0-9]{3,5}[a-z0-9]*$`),
	}
	for j := max(0, index-8); j < index; j++ {
		low := strings.ToLower(tokens[j])
		for _, re := range shapes {
			if re.MatchString(low) {
				return true
			}
		}
	}
	return false
}

func ramMarkerBefore(tokens []string, index int) bool {
	if index == 0 {
		return false
	}
	prev := strings.ToLower(tokens[index-1])
	return strings.Contains(prev, "ddr") || ramMarkerWords[prev]
}

// normalizeSpeed strips a leading "@" and formats the numeric part with
// two decimal places, keeping the unit as written.
func normalizeSpeed(tok string) string {
	value := cleanValue(strings.TrimPrefix(tok, "@"))
	if m := reSpeedValue.FindStringSubmatch(value); m != nil {
		n, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return fmt.Sprintf("%.2f%s", n, m[2])
		}
	}
	return value
}

var quantityWords = map[string]string{
	"single": "1x", "dual": "2x", "triple": "3x", "quad": "4x",
}

var quantityShapes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\d+x$`),
	regexp.MustCompile(`(?i)^x\d+$`),
	regexp.MustCompile(`(?i)^\(\d+x\)$`),
	regexp.MustCompile(`(?i)^\(x\d+\)$`),
	regexp.MustCompile(`^\(\d+\)$`),
}

// extractCPUQuantity accepts the first quantity-shaped token that sits
// immediately next to a position the model or speed passes took
// (optionally across a single slash), is not part of a product model
// name, and is not "dual core"-style phrasing.
func extractCPUQuantity(tokens []string, claims *token.ClaimSet, cpuConsumed map[int]bool) string {
	if len(cpuConsumed) == 0 {
		return ""
	}
	for i, tok := range tokens {
		if claims.Claimed(i) {
			continue
		}
		norm, ok := quantityValue(tok)
		if !ok {
			continue
		}
		if w := strings.ToLower(tok); quantityWords[w] != "" &&
			i+1 < len(tokens) && strings.EqualFold(tokens[i+1], "core") {
			continue
		}
		if partOfModelName(tokens, i) {
			continue
		}
		if !adjacentToConsumed(tokens, i, cpuConsumed) {
			continue
		}
		claims.Claim(i)
		return norm
	}
	return ""
}

// quantityValue normalizes every accepted quantity spelling to "Nx".
func quantityValue(tok string) (string, bool) {
	low := strings.ToLower(tok)
	if v, ok := quantityWords[low]; ok {
		return v, true
	}
	for _, re := range quantityShapes {
		if re.MatchString(tok) {
			num := regexp.MustCompile(`\d+`).FindString(tok)
			if num == "" {
				return "", false
			}
			return num + "x", true
		}
	}
	return "", false
}

// partOfModelName rejects quantity shapes that are really product model
// numbers, like the "450s" in "ThinkPad T450s".
func partOfModelName(tokens []string, index int) bool {
	tok := tokens[index]
	if regexp.MustCompile(`^[A-Za-z]\d+`).MatchString(tok) {
		return true
	}
	if index > 0 {
		prev := tokens[index-1]
		if modelNamePrefixes[strings.ToLower(prev)] && regexp.MustCompile(`^\d+`).MatchString(tok) {
			return true
		}
		if regexp.MustCompile(`[A-Za-z]$`).MatchString(prev) && regexp.MustCompile(`^\d+`).MatchString(tok) {
			return true
		}
	}
	for j := max(0, index-2); j < min(len(tokens), index+3); j++ {
		if modelNamePrefixes[strings.ToLower(tokens[j])] {
			return true
		}
	}
	return false
}

func adjacentToConsumed(tokens []string, index int, consumed map[int]bool) bool {
	if consumed[index-1] || consumed[index+1] {
		return true
	}
	if index-1 >= 0 && tokens[index-1] == "/" && consumed[index-2] {
		return true
	}
	if index+1 < len(tokens) && tokens[index+1] == "/" && consumed[index+2] {
		return true
	}
	return false
}

var reTrailingPunct = regexp.MustCompile(`[,;:.]+$`)

// cleanValue strips trailing list punctuation from an output value.
func cleanValue(value string) string {
	return reTrailingPunct.ReplaceAllString(strings.TrimSpace(value), "")
}

// normalizeCPUModel canonicalizes dash placement and strips decoration
// symbols: "i5 8250U" -> "i5-8250U", "E5 2687W v4" -> "E5-2687W v4",
// "E-2176M" -> "2176M".
func normalizeCPUModel(mdl string) string {
	if mdl == "" {
		return mdl
	}
	mdl = regexp.MustCompile(`[@™®\s]+`).ReplaceAllString(mdl, " ")
	mdl = regexp.MustCompile(`\b([EWX])([357]) (\d{4}[A-Z]*)`).ReplaceAllString(mdl, "$1$2-$3")
	mdl = regexp.MustCompile(`\b(i[3579]) (\d{3,4}[A-Z]*)`).ReplaceAllString(mdl, "$1-$2")
	mdl = regexp.MustCompile(`\b(m[357]) (\d[A-Z0-9]*)`).ReplaceAllString(mdl, "$1-$2")
	mdl = regexp.MustCompile(`(?i)\bE[\s-]+(\d{4}[A-Z]*)`).ReplaceAllString(mdl, "$1")
	return strings.TrimSpace(mdl)
}

// titleWord capitalizes the first letter of a lower-cased word.
func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}
