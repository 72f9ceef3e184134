package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/gleaner/internal/match"
	"github.com/ppiankov/gleaner/internal/model"
	"github.com/ppiankov/gleaner/internal/token"
)

// Storage is the storage domain pipeline. Passes run in fixed order:
// absence detection short-circuits everything, then slash sequences and
// dual configurations, ranges, clear capacity+type pairs with
// largest-wins, and finally standalone capacities under RAM/GPU/RAID
// guards. Auxiliary fields (drive size, drive count, per-drive capacity)
// come from declarative pattern groups.
type Storage struct{}

// NewStorage creates the storage pipeline.
func NewStorage() *Storage {
	return &Storage{}
}

// Name returns the pipeline's domain name.
func (s *Storage) Name() string {
	return "storage"
}

var storageTypeWords = map[string]bool{
	"ssd": true, "ssds": true, "hdd": true, "hdds": true, "nvme": true,
	"m.2": true, "emmc": true, "storage": true, "local": true,
	"locstorage": true, "hd": true,
}

var storageAbsenceKeywords = map[string]bool{
	"ssd": true, "ssds": true, "hdd": true, "hdds": true, "storage": true,
	"drive": true, "drives": true, "harddrive": true, "hard": true,
	"local": true, "locstorage": true, "hd": true, "os/ssd": true,
}

var negationWords = map[string]bool{
	"no": true, "none": true, "n/a": true, "without": true,
}

var (
	reCapacity      = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)(gb|tb|mb)$`)
	reCapacityRange = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)(gb|tb|mb)-(\d+(?:\.\d+)?)(gb|tb|mb)$`)
	rePartialRange  = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)-(\d+(?:\.\d+)?)(gb|tb|mb)$`)
	reBareUnit      = regexp.MustCompile(`(?i)^(gb|tb|mb)$`)
	reCompactDual   = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)(gb|tb|mb)(ssd|hdd|nvme|emmc|storage)$`)
	reCompactPair   = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)(gb|tb|mb)(ssd|hdd|nvme|emmc|storage)/(\d+(?:\.\d+)?)(gb|tb|mb)(ssd|hdd|nvme|emmc|storage)$`)
	reTokenSlash    = regexp.MustCompile(`(?i)^\d+(?:\.\d+)?(?:gb|tb|mb)?(?:/\d+(?:\.\d+)?(?:gb|tb|mb)?)+$`)
	reCapacityPart  = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)(gb|tb|mb)?$`)
	reTransferRate  = regexp.MustCompile(`(?i)^\d+(?:\.\d+)?[gmk]?b/s$`)
	reNoPowerGroup  = regexp.MustCompile(`(?i)\bno\s*(?:power\s*(?:cord|adapter)|powercord|poweradapter)\b[^,;:()]{0,120}(?:/|\|)\s*(?:hard\s*drive|hdd|ssd)(?:[^a-z]|$)`)
	reRAMList       = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?(?:gb|tb)(?:\s*/\s*\d+(?:\.\d+)?(?:gb|tb))+\s+(?:ram|memory)\b`)
	reModuleConfig  = regexp.MustCompile(`(?i)\(\d+\s*x\s*\d+gb\)`)
	reIndividualCap = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?(?:mb|gb|tb))$`)
)

// Declarative groups for the auxiliary storage fields.
var (
	driveSizeGroup  = match.Group{match.Any("2.5in", "3.5in")}
	driveCountGroup = match.Group{
		match.Regex(`(?:\[\d+\]|\d+x)$`),
		match.Regex(`\d+(?:\.\d+)?(?:mb|gb|tb)$`).Hidden(),
	}
	individualCapGroup = match.Group{
		match.Regex(`(?:\[\d+\]|\d+x)\d+(?:\.\d+)?(?:mb|gb|tb)$`),
	}
)

// Extract runs the storage pipeline over the tokens and returns the
// storage attribute mapping.
func (s *Storage) Extract(tokens []string, claims *token.ClaimSet) *model.Attributes {
	attrs := model.NewAttributes()
	// Storage capacities number from 1: a lone one is storage_capacity1.
	attrs.NumberFromOne("storage_capacity")
	joined := strings.ToLower(strings.Join(tokens, " "))

	// Absence wins over everything: once storage is declared missing, no
	// capacity in the title may be read as storage.
	if reNoPowerGroup.MatchString(joined) {
		attrs.Add("storage_status", "Not Included")
		return attrs
	}
	if findStorageAbsence(tokens, claims) {
		attrs.Add("storage_status", "Not Included")
		return attrs
	}

	// A slash-separated capacity list owned by RAM is never storage, and
	// server memory kits with module configurations have no storage at all.
	if reRAMList.MatchString(joined) {
		return attrs
	}
	if hasServerRAMContext(joined) && reModuleConfig.MatchString(joined) {
		return attrs
	}

	phone := hasPhoneContext(tokens)
	gotCapacity := false

	if dual, ok := matchDualStorage(tokens, claims); ok {
		attrs.Add("storage_capacity", dual.cap1)
		attrs.Add("storage_type", dual.type1)
		attrs.Add("storage_capacity", dual.cap2)
		attrs.Add("storage_type", dual.type2)
		gotCapacity = true
	}

	if !gotCapacity {
		if caps, stype, ok := matchSlashSequence(tokens, claims); ok {
			for _, c := range caps {
				addUnique(attrs, "storage_capacity", c)
			}
			if stype != "" {
				attrs.Add("storage_type", stype)
			}
			gotCapacity = true
		}
	}

	if rng, stype, ok := matchCapacityRange(tokens, claims); ok {
		attrs.Add("storage_range", rng)
		if stype != "" && !attrs.Has("storage_type") {
			attrs.Add("storage_type", stype)
		}
	}

	if !gotCapacity {
		if c, ok := matchRAMThenStorage(tokens, claims); ok {
			addUnique(attrs, "storage_capacity", c)
		}
		markers := storageMarkers(tokens, claims)
		if c, stype, ok := largestClearPair(tokens, claims); ok {
			addUnique(attrs, "storage_capacity", c)
			if stype != "" && !attrs.Has("storage_type") {
				attrs.Add("storage_type", stype)
			}
			gotCapacity = true
		}
		if !gotCapacity && !attrs.Has("storage_capacity") {
			for _, c := range standaloneCapacities(tokens, claims, markers, phone) {
				addUnique(attrs, "storage_capacity", c)
				gotCapacity = true
			}
		}
		if !gotCapacity && !attrs.Has("storage_capacity") && phone {
			if c, ok := separatedCapacityPair(tokens, claims); ok {
				attrs.Add("storage_capacity", c)
			}
		}
	}

	// Bare type token when no pair carried it.
	if attrs.Has("storage_capacity") && !attrs.Has("storage_type") {
		if stype, ok := bareStorageType(tokens, claims); ok {
			attrs.Add("storage_type", stype)
		}
	}

	s.extractAuxiliary(tokens, claims, attrs)
	return attrs
}

// extractAuxiliary emits drive form factor, drive count, and per-drive
// capacity fields from the declarative groups.
func (s *Storage) extractAuxiliary(tokens []string, claims *token.ClaimSet, attrs *model.Attributes) {
	if span, ok := driveSizeGroup.Find(tokens, claims); ok {
		attrs.Add("storage_drive_size", strings.ToLower(tokens[span.Emit[0]]))
		claims.ClaimAll(span.All)
	}
	if span, ok := driveCountGroup.Find(tokens, claims); ok {
		count := strings.Trim(tokens[span.Emit[0]], "[]")
		count = strings.TrimSuffix(strings.ToLower(count), "x") + "x"
		attrs.Add("storage_drive_count", count)
	}
	if span, ok := individualCapGroup.Find(tokens, claims); ok {
		tok := tokens[span.Emit[0]]
		if m := reIndividualCap.FindStringSubmatch(tok); m != nil {
			attrs.Add("storage_individual_capacity", capitalizeUnit(m[1]))
		}
		claims.ClaimAll(span.All)
	}
}

// findStorageAbsence recognizes negated storage in all three orders:
// "No SSD", "SSD None", "8GB No SSD" (capacity left for RAM), plus
// composite single tokens like "NoSSD". Matched negations are claimed so
// the type word cannot later act as a storage marker.
func findStorageAbsence(tokens []string, claims *token.ClaimSet) bool {
	found := false
	for i, tok := range tokens {
		if claims.Claimed(i) {
			continue
		}
		low := strings.ToLower(tok)

		// Composite token: "NoSSD", "No_HDD".
		if strings.HasPrefix(low, "no") && len(low) > 2 {
			composite := false
			for kw := range storageAbsenceKeywords {
				if kw != "hard" && strings.Contains(low[2:], kw) {
					composite = true
					break
				}
			}
			if composite {
				claims.Claim(i)
				found = true
				continue
			}
		}

		if negationWords[low] {
			for j := i + 1; j < min(i+6, len(tokens)); j++ {
				if claims.Claimed(j) {
					continue
				}
				if storageAbsenceKeywords[strings.ToLower(tokens[j])] {
					claims.Claim(i)
					claims.Claim(j)
					found = true
					break
				}
			}
		}

		// Reversed field-label order: "SSD: No".
		if storageAbsenceKeywords[low] {
			for j := i + 1; j < min(i+4, len(tokens)); j++ {
				if !claims.Claimed(j) && negationWords[strings.ToLower(tokens[j])] {
					claims.Claim(i)
					claims.Claim(j)
					found = true
					break
				}
			}
		}
	}
	return found
}

var serverRAMIndicators = []string{
	"server ram", "server memory", "ecc", "reg", "registered", "rdimm",
	"lrdimm", "pc3", "pc4", "ddr3", "ddr4", "ddr5",
}

func hasServerRAMContext(joined string) bool {
	for _, ind := range serverRAMIndicators {
		if strings.Contains(joined, ind) {
			return true
		}
	}
	return false
}

var phoneWords = map[string]bool{
	"iphone": true, "ipad": true, "galaxy": true, "pixel": true,
	"smartphone": true, "smartphones": true, "phone": true, "phones": true,
	"tablet": true, "tablets": true, "cellphone": true, "android": true,
}

// hasPhoneContext reports whether the title describes a phone or tablet,
// where bare capacities are storage by convention.
func hasPhoneContext(tokens []string) bool {
	for _, tok := range tokens {
		if phoneWords[strings.ToLower(tok)] {
			return true
		}
	}
	return false
}

type dualStorage struct {
	cap1, type1 string
	cap2, type2 string
}

// matchDualStorage recognizes two-drive configurations in all three
// spellings: "128GB SSD / 1TB HDD", "128GBSSD / 1TBHDD", and the fully
// compact single token "128GBSSD/1TBHDD".
func matchDualStorage(tokens []string, claims *token.ClaimSet) (dualStorage, bool) {
	for i, tok := range tokens {
		if claims.Claimed(i) {
			continue
		}
		if m := reCompactPair.FindStringSubmatch(tok); m != nil {
			claims.Claim(i)
			return dualStorage{
				cap1:  m[1] + strings.ToUpper(m[2]),
				type1: strings.ToUpper(m[3]),
				cap2:  m[4] + strings.ToUpper(m[5]),
				type2: strings.ToUpper(m[6]),
			}, true
		}
	}
	for i := 0; i+4 < len(tokens); i++ {
		if claims.AnyClaimed([]int{i, i + 1, i + 2, i + 3, i + 4}) {
			continue
		}
		if reCapacity.MatchString(tokens[i]) &&
			storageTypeWords[strings.ToLower(tokens[i+1])] &&
			tokens[i+2] == "/" &&
			reCapacity.MatchString(tokens[i+3]) &&
			storageTypeWords[strings.ToLower(tokens[i+4])] {
			claims.ClaimAll([]int{i, i + 1, i + 2, i + 3, i + 4})
			return dualStorage{
				cap1:  capitalizeUnit(tokens[i]),
				type1: storageTypeName(tokens[i+1]),
				cap2:  capitalizeUnit(tokens[i+3]),
				type2: storageTypeName(tokens[i+4]),
			}, true
		}
	}
	for i := 0; i+2 < len(tokens); i++ {
		if claims.AnyClaimed([]int{i, i + 1, i + 2}) {
			continue
		}
		m1 := reCompactDual.FindStringSubmatch(tokens[i])
		m2 := reCompactDual.FindStringSubmatch(tokens[i+2])
		if m1 != nil && tokens[i+1] == "/" && m2 != nil {
			claims.ClaimAll([]int{i, i + 1, i + 2})
			return dualStorage{
				cap1:  m1[1] + strings.ToUpper(m1[2]),
				type1: strings.ToUpper(m1[3]),
				cap2:  m2[1] + strings.ToUpper(m2[2]),
				type2: strings.ToUpper(m2[3]),
			}, true
		}
	}
	return dualStorage{}, false
}

// matchSlashSequence finds the longest run of numbers separated by
// slashes and emits one capacity per number. The run can live inside a
// single token ("16/32/64/128GB") or span spaced tokens
// ("128GB / 256GB SSD"). The sequence must carry a unit or an explicit
// type; a RAM word or a CPU generation word shortly after the run
// disqualifies it.
func matchSlashSequence(tokens []string, claims *token.ClaimSet) ([]string, string, bool) {
	for i, tok := range tokens {
		if claims.Claimed(i) || !strings.Contains(tok, "/") || !reTokenSlash.MatchString(tok) {
			continue
		}
		if caps, stype, ok := parseTokenSlashList(tokens, claims, i); ok {
			return caps, stype, true
		}
	}
	var best []int
	for i := 0; i < len(tokens); i++ {
		if claims.Claimed(i) {
			continue
		}
		if !isDigits(tokens[i]) && !reCapacity.MatchString(tokens[i]) {
			continue
		}
		seq := []int{i}
		j := i + 1
		for j+1 < len(tokens) && tokens[j] == "/" &&
			(isDigits(tokens[j+1]) || reCapacity.MatchString(tokens[j+1])) {
			seq = append(seq, j, j+1)
			j += 2
		}
		if len(seq) < 3 {
			continue
		}
		if j < len(tokens) && reBareUnit.MatchString(tokens[j]) {
			seq = append(seq, j)
			j++
		}
		if j < len(tokens) && storageTypeWords[strings.ToLower(tokens[j])] && !claims.Claimed(j) {
			seq = append(seq, j)
		}
		if len(seq) > len(best) {
			best = seq
		}
	}
	if len(best) < 3 {
		return nil, "", false
	}

	end := best[len(best)-1]
	for j := end + 1; j < min(end+4, len(tokens)); j++ {
		if isRAMContextToken(tokens[j]) {
			return nil, "", false
		}
	}

	var caps []string
	unit := ""
	stype := ""
	var numbers []string
	for _, idx := range best {
		tok := tokens[idx]
		switch {
		case tok == "/":
		case isDigits(tok):
			numbers = append(numbers, tok)
		case reCapacity.MatchString(tok):
			m := reCapacity.FindStringSubmatch(tok)
			numbers = append(numbers, m[1])
			if unit == "" {
				unit = strings.ToUpper(m[2])
			}
		case reBareUnit.MatchString(tok):
			unit = strings.ToUpper(tok)
		case storageTypeWords[strings.ToLower(tok)]:
			stype = storageTypeName(tok)
		}
	}
	if unit == "" && stype == "" {
		return nil, "", false
	}
	for _, n := range numbers {
		caps = append(caps, n+unit)
	}
	claims.ClaimAll(best)
	return caps, stype, true
}

// parseTokenSlashList expands a single slash-packed token such as
// "16/32/64/128GB". Bare numbers inherit the unit of the nearest later
// part; the unit may also arrive as the following bare token. A RAM or
// generation word right after the list disqualifies it.
func parseTokenSlashList(tokens []string, claims *token.ClaimSet, index int) ([]string, string, bool) {
	for j := index + 1; j < min(index+4, len(tokens)); j++ {
		low := strings.ToLower(tokens[j])
		if isRAMContextToken(tokens[j]) || low == "gen" || low == "gen." || low == "generation" {
			return nil, "", false
		}
	}

	parts := strings.Split(tokens[index], "/")
	numbers := make([]string, 0, len(parts))
	units := make([]string, len(parts))
	shared := ""
	for k, part := range parts {
		m := reCapacityPart.FindStringSubmatch(part)
		if m == nil {
			return nil, "", false
		}
		numbers = append(numbers, m[1])
		units[k] = strings.ToUpper(m[2])
		if units[k] != "" {
			shared = units[k]
		}
	}

	span := []int{index}
	stype := ""
	next := index + 1
	if shared == "" && next < len(tokens) && !claims.Claimed(next) && reBareUnit.MatchString(tokens[next]) {
		shared = strings.ToUpper(tokens[next])
		span = append(span, next)
		next++
	}
	if next < len(tokens) && !claims.Claimed(next) && storageTypeWords[strings.ToLower(tokens[next])] {
		stype = storageTypeName(tokens[next])
		span = append(span, next)
	}
	if shared == "" && stype == "" {
		return nil, "", false
	}

	caps := make([]string, 0, len(numbers))
	for k, n := range numbers {
		unit := units[k]
		if unit == "" {
			unit = shared
		}
		caps = append(caps, n+unit)
	}
	claims.ClaimAll(span)
	return caps, stype, true
}

// matchCapacityRange recognizes "250GB-1TB" and "250-500GB" tokens, with
// an optional trailing type.
func matchCapacityRange(tokens []string, claims *token.ClaimSet) (string, string, bool) {
	for i, tok := range tokens {
		if claims.Claimed(i) {
			continue
		}
		var rng string
		if m := reCapacityRange.FindStringSubmatch(tok); m != nil {
			rng = m[1] + strings.ToUpper(m[2]) + "-" + m[3] + strings.ToUpper(m[4])
		} else if m := rePartialRange.FindStringSubmatch(tok); m != nil {
			unit := strings.ToUpper(m[3])
			rng = m[1] + unit + "-" + m[2] + unit
		} else {
			continue
		}
		claims.Claim(i)
		stype := ""
		if i+1 < len(tokens) && !claims.Claimed(i+1) && storageTypeWords[strings.ToLower(tokens[i+1])] {
			stype = storageTypeName(tokens[i+1])
			claims.Claim(i + 1)
		}
		return rng, stype, true
	}
	return "", "", false
}

// matchRAMThenStorage handles "32GB RAM 512GB": a capacity, a RAM word,
// then a clearly-storage-sized capacity (256GB and up, or any TB).
func matchRAMThenStorage(tokens []string, claims *token.ClaimSet) (string, bool) {
	for i := 0; i < len(tokens); i++ {
		if !reCapacity.MatchString(tokens[i]) {
			continue
		}
		ramIdx := -1
		for k := i + 1; k < min(len(tokens), i+6); k++ {
			low := strings.ToLower(tokens[k])
			if low == "ram" || low == "memory" {
				ramIdx = k
				break
			}
		}
		if ramIdx < 0 {
			continue
		}
		for j := ramIdx + 1; j < min(len(tokens), ramIdx+8); j++ {
			m := reCapacity.FindStringSubmatch(tokens[j])
			if m == nil || claims.Claimed(j) {
				continue
			}
			value, _ := strconv.ParseFloat(m[1], 64)
			unit := strings.ToUpper(m[2])
			if (unit == "GB" && value >= 256) || unit == "TB" {
				claims.Claim(j)
				return capitalizeUnit(tokens[j]), true
			}
		}
	}
	return "", false
}

type clearPair struct {
	span     []int
	capacity float64
	value    string
	stype    string
}

// largestClearPair finds unambiguous capacity+type combinations
// ("512GB SSD", "SSD 512GB", "512 GB SSD") and keeps only the largest;
// the smaller capacity is left for the RAM extractor. On equal
// capacities the leftmost pair wins. A pair immediately followed by a
// RAM word is discarded.
func largestClearPair(tokens []string, claims *token.ClaimSet) (string, string, bool) {
	var pairs []clearPair
	for i := 0; i < len(tokens); i++ {
		if claims.Claimed(i) || reTransferRate.MatchString(tokens[i]) {
			continue
		}
		var p clearPair
		switch {
		case reCapacity.MatchString(tokens[i]) && i+1 < len(tokens) && !claims.Claimed(i+1) &&
			storageTypeWords[strings.ToLower(tokens[i+1])]:
			m := reCapacity.FindStringSubmatch(tokens[i])
			p = clearPair{span: []int{i, i + 1}, value: capitalizeUnit(tokens[i]), stype: storageTypeName(tokens[i+1])}
			p.capacity, _ = strconv.ParseFloat(m[1], 64)
			if strings.EqualFold(m[2], "tb") {
				p.capacity *= 1024
			}
		case storageTypeWords[strings.ToLower(tokens[i])] && i+1 < len(tokens) && !claims.Claimed(i+1) &&
			reCapacity.MatchString(tokens[i+1]):
			m := reCapacity.FindStringSubmatch(tokens[i+1])
			p = clearPair{span: []int{i, i + 1}, value: capitalizeUnit(tokens[i+1]), stype: storageTypeName(tokens[i])}
			p.capacity, _ = strconv.ParseFloat(m[1], 64)
			if strings.EqualFold(m[2], "tb") {
				p.capacity *= 1024
			}
		case isDigits(tokens[i]) && i+2 < len(tokens) && !claims.AnyClaimed([]int{i + 1, i + 2}) &&
			reBareUnit.MatchString(tokens[i+1]) && storageTypeWords[strings.ToLower(tokens[i+2])]:
			p = clearPair{span: []int{i, i + 1, i + 2},
				value: tokens[i] + strings.ToUpper(tokens[i+1]), stype: storageTypeName(tokens[i+2])}
			p.capacity, _ = strconv.ParseFloat(tokens[i], 64)
			if strings.EqualFold(tokens[i+1], "tb") {
				p.capacity *= 1024
			}
		default:
			continue
		}
		next := p.span[len(p.span)-1] + 1
		if next < len(tokens) && isRAMContextToken(tokens[next]) {
			continue
		}
		pairs = append(pairs, p)
	}
	if len(pairs) == 0 {
		return "", "", false
	}
	best := pairs[0]
	for _, p := range pairs[1:] {
		if p.capacity > best.capacity {
			best = p
		}
	}
	claims.ClaimAll(best.span)
	return best.value, best.stype, true
}

type contextMarkers struct {
	ram     map[int]bool
	storage map[int]bool
	gpu     map[int]bool
}

// storageMarkers locates RAM, storage, and GPU context tokens. RAM
// markers are recorded even when claimed so ambiguity checks still see
// them; storage markers only while unclaimed.
func storageMarkers(tokens []string, claims *token.ClaimSet) contextMarkers {
	m := contextMarkers{ram: map[int]bool{}, storage: map[int]bool{}, gpu: map[int]bool{}}
	for i, tok := range tokens {
		if isRAMContextToken(tok) {
			m.ram[i] = true
		}
		if !claims.Claimed(i) {
			low := strings.ToLower(tok)
			if storageTypeWords[low] || low == "drive" || low == "drives" ||
				low == "harddrive" || low == "hard" || low == "disk" || low == "disks" {
				m.storage[i] = true
			}
			if isGPUContextToken(tok) {
				m.gpu[i] = true
			}
		}
	}
	return m
}

// standaloneCapacities extracts bare capacity tokens under the guard
// battery: immediate RAID/network or RAM neighbors, GPU model shapes
// behind the token, slash lists owned by RAM, and RAM context in
// non-phone titles all disqualify a candidate.
func standaloneCapacities(tokens []string, claims *token.ClaimSet, markers contextMarkers, phone bool) []string {
	var caps []string
	for i, tok := range tokens {
		if claims.Claimed(i) || !reCapacity.MatchString(tok) {
			continue
		}
		if i+1 < len(tokens) {
			if isRAMContextToken(tokens[i+1]) || isRAIDNetworkToken(tokens[i+1]) {
				continue
			}
		}
		if gpuModelBefore(tokens, i) {
			continue
		}
		if slashListOwnedByRAM(tokens, i) {
			continue
		}
		hasStorageNearby := windowHas(markers.storage, i-2, i+2)
		hasRAMNearby := windowHas(markers.ram, i-2, i+2)
		hasGPUNearby := windowHas(markers.gpu, i-1, i+1)
		if phone || hasStorageNearby || (!hasRAMNearby && !hasGPUNearby) {
			claims.Claim(i)
			caps = append(caps, capitalizeUnit(tok))
		}
	}
	return caps
}

// separatedCapacityPair handles "64 GB" in phone titles only.
func separatedCapacityPair(tokens []string, claims *token.ClaimSet) (string, bool) {
	for i := 0; i+1 < len(tokens); i++ {
		if claims.AnyClaimed([]int{i, i + 1}) {
			continue
		}
		if !isDigits(tokens[i]) || !reBareUnit.MatchString(tokens[i+1]) {
			continue
		}
		if i+2 < len(tokens) && (isRAMContextToken(tokens[i+2]) || isRAIDNetworkToken(tokens[i+2])) {
			continue
		}
		claims.Claim(i)
		claims.Claim(i + 1)
		return tokens[i] + strings.ToUpper(tokens[i+1]), true
	}
	return "", false
}

// bareStorageType picks up a lone type word when no pair carried one.
// Interface names map to their drive technology.
func bareStorageType(tokens []string, claims *token.ClaimSet) (string, bool) {
	for i, tok := range tokens {
		if claims.Claimed(i) {
			continue
		}
		low := strings.ToLower(tok)
		if storageTypeWords[low] && low != "hd" {
			claims.Claim(i)
			return storageTypeName(tok), true
		}
		switch low {
		case "ide", "sata", "scsi", "ata":
			claims.Claim(i)
			return "HDD", true
		}
	}
	return "", false
}

func isDigits(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isRAMContextToken reports RAM vocabulary after stripping punctuation.
func isRAMContextToken(tok string) bool {
	switch cleanContextToken(tok) {
	case "ram", "memory", "ddr", "ddr2", "ddr3", "ddr4", "ddr5":
		return true
	}
	return false
}

var gpuContextTerms = []string{
	"gtx", "rtx", "radeon", "vega", "quadro", "tesla", "geforce", "nvidia",
	"graphics", "gpu", "video",
}

func isGPUContextToken(tok string) bool {
	cleaned := cleanContextToken(tok)
	if cleaned == "rx" || cleaned == "amd" || cleaned == "ati" {
		return true
	}
	for _, term := range gpuContextTerms {
		if strings.Contains(cleaned, term) {
			return true
		}
	}
	return false
}

var raidNetworkTerms = []string{
	"raid", "sas", "fc", "fiber", "fibre", "ethernet", "network",
	"controller", "adapter", "hba", "nic", "switch", "port", "ports",
	"speed", "transfer", "rate", "bandwidth", "connection", "interface",
}

func isRAIDNetworkToken(tok string) bool {
	cleaned := cleanContextToken(tok)
	for _, term := range raidNetworkTerms {
		if strings.Contains(cleaned, term) {
			return true
		}
	}
	return false
}

var reNonWord = regexp.MustCompile(`[^a-z0-9]`)

func cleanContextToken(tok string) string {
	return reNonWord.ReplaceAllString(strings.ToLower(tok), "")
}

var (
	reGPUModelNum  = regexp.MustCompile(`(?i)^\d{3,4}[a-z]*$`)
	reGPUNameModel = regexp.MustCompile(`(?i)(gtx|rtx)\s*\d+`)
)

// gpuModelBefore recognizes "GTX 1060 6GB"-style shapes where the
// capacity belongs to the graphics card.
func gpuModelBefore(tokens []string, index int) bool {
	if index >= 2 && isGPUContextToken(tokens[index-2]) && reGPUModelNum.MatchString(tokens[index-1]) {
		return true
	}
	if index > 0 && isGPUContextToken(tokens[index-1]) {
		return true
	}
	if index > 0 && reGPUNameModel.MatchString(tokens[index-1]) {
		return true
	}
	return false
}

// slashListOwnedByRAM checks whether the capacity sits in a slash list
// with a RAM word shortly after it.
func slashListOwnedByRAM(tokens []string, index int) bool {
	inSlash := (index+1 < len(tokens) && tokens[index+1] == "/") ||
		(index > 0 && tokens[index-1] == "/")
	if !inSlash {
		return false
	}
	for j := index + 1; j < min(len(tokens), index+10); j++ {
		if isRAMContextToken(tokens[j]) {
			return true
		}
	}
	return false
}

func windowHas(set map[int]bool, from, to int) bool {
	for j := from; j <= to; j++ {
		if set[j] {
			return true
		}
	}
	return false
}

// storageTypeName normalizes a type token: plurals lose the s, local
// storage keeps its long name, everything else goes upper-case.
func storageTypeName(tok string) string {
	low := strings.ToLower(tok)
	switch low {
	case "local", "locstorage":
		return "LOCAL STORAGE"
	case "ssds", "hdds":
		return strings.ToUpper(low[:len(low)-1])
	}
	return strings.ToUpper(low)
}

// capitalizeUnit upper-cases the unit part of a capacity token:
// "256gb" -> "256GB".
func capitalizeUnit(tok string) string {
	if m := reCapacity.FindStringSubmatch(tok); m != nil {
		return m[1] + strings.ToUpper(m[2])
	}
	return tok
}
