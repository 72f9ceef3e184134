package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/gleaner/internal/model"
	"github.com/ppiankov/gleaner/internal/token"
)

// Lot extracts the lot quantity from multi-unit listings: "Lot of 5",
// "Lot (4)", "5x", leading counts, and model enumerations like
// "5420+5540" where the quantity is the number of models listed.
// Quantity shapes already claimed by the CPU pipeline are skipped, so
// "2x" next to a processor never doubles as a lot count.
type Lot struct{}

// NewLot creates the lot pipeline.
func NewLot() *Lot {
	return &Lot{}
}

// Name returns the pipeline's domain name.
func (l *Lot) Name() string {
	return "lot"
}

var (
	reParenQty      = regexp.MustCompile(`^\((\d+)\)$`)
	reParenQtyGlued = regexp.MustCompile(`^\((\d+)\)[A-Za-z]`)
	reLotShape      = regexp.MustCompile(`(?i)^(?:(\d+)x|x(\d+)|\((\d+)\)|\(x(\d+)\)|\((\d+)x\))$`)
	reModelsGlued   = regexp.MustCompile(`^\d{3,5}(?:[+/]\d{3,5})+$`)
	reModelNumber   = regexp.MustCompile(`^\d{3,5}$`)
	rePlusOrSlash   = regexp.MustCompile(`^[+/]$`)
	reDigitRun      = regexp.MustCompile(`\d{3,5}`)
	reSpeedShape    = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?[gm]hz$`)
	reISeriesShapeLot  = regexp.MustCompile(`^i[3579](?:-|$)`)
)

var cpuContextWords = map[string]bool{
	"intel": true, "amd": true, "arm": true, "qualcomm": true, "mediatek": true,
	"samsung": true, "ibm": true, "via": true, "cyrix": true, "transmeta": true,
	"fujitsu": true, "motorola": true, "risc-v": true, "huawei": true,
	"rockchip": true, "allwinner": true,
	"core": true, "ryzen": true, "xeon": true, "pentium": true, "celeron": true,
	"atom": true, "athlon": true, "phenom": true, "epyc": true, "threadripper": true,
	"processor": true, "cpu": true, "ghz": true, "mhz": true,
}

// Extract scans for the first lot-quantity shape. The pass never claims:
// the shapes are shared vocabulary and later passes may still need the
// tokens.
func (l *Lot) Extract(tokens []string, claims *token.ClaimSet) *model.Attributes {
	attrs := model.NewAttributes()
	for i := range tokens {
		if claims.Claimed(i) {
			continue
		}
		low := strings.ToLower(tokens[i])

		// "Lot of 5", "Lot of (5)".
		if low == "lot" && i+2 < len(tokens) && strings.EqualFold(tokens[i+1], "of") {
			if qty, ok := plainOrParenQty(tokens[i+2]); ok {
				attrs.Add("lot", strconv.Itoa(qty))
				return attrs
			}
			continue
		}

		// "Lot 5", "Lot (5)", "Lot (4)Asus".
		if low == "lot" && i+1 < len(tokens) {
			if qty, ok := plainOrParenQty(tokens[i+1]); ok {
				attrs.Add("lot", strconv.Itoa(qty))
				return attrs
			}
			if m := reParenQtyGlued.FindStringSubmatch(tokens[i+1]); m != nil {
				qty, _ := strconv.Atoi(m[1])
				attrs.Add("lot", strconv.Itoa(qty))
				return attrs
			}
			continue
		}

		// "5 Lot", "(5) Lot".
		if i+1 < len(tokens) && strings.EqualFold(tokens[i+1], "lot") {
			if qty, ok := plainOrParenQty(tokens[i]); ok {
				attrs.Add("lot", strconv.Itoa(qty))
				return attrs
			}
			continue
		}

		// "5x", "x5", "(5)", "(x5)", "(5x)" — unless the neighbors say CPU.
		if m := reLotShape.FindStringSubmatch(tokens[i]); m != nil {
			if !lotShapeIsCPUQuantity(tokens, i) {
				for _, g := range m[1:] {
					if g != "" {
						qty, _ := strconv.Atoi(g)
						attrs.Add("lot", strconv.Itoa(qty))
						return attrs
					}
				}
			}
			continue
		}

		// "5420+5540" or "5420/5540": quantity is the model count.
		if reModelsGlued.MatchString(tokens[i]) {
			count := len(reDigitRun.FindAllString(tokens[i], -1))
			if count >= 2 {
				attrs.Add("lot", strconv.Itoa(count))
				return attrs
			}
			continue
		}

		// Spaced "5420 + 5540 + 5550".
		if reModelNumber.MatchString(tokens[i]) && i+2 < len(tokens) &&
			rePlusOrSlash.MatchString(tokens[i+1]) && reModelNumber.MatchString(tokens[i+2]) {
			count := 2
			j := i + 2
			for j+2 < len(tokens) && rePlusOrSlash.MatchString(tokens[j+1]) && reModelNumber.MatchString(tokens[j+2]) {
				count++
				j += 2
			}
			attrs.Add("lot", strconv.Itoa(count))
			return attrs
		}

		// A bare leading count: "5 Dell Latitude ...".
		if i == 0 {
			if qty, ok := plainOrParenQty(tokens[0]); ok && !leadingCountIsCPU(tokens) {
				attrs.Add("lot", strconv.Itoa(qty))
				return attrs
			}
		}
	}
	return attrs
}

func plainOrParenQty(tok string) (int, bool) {
	if isDigits(tok) {
		qty, err := strconv.Atoi(tok)
		return qty, err == nil
	}
	if m := reParenQty.FindStringSubmatch(tok); m != nil {
		qty, err := strconv.Atoi(m[1])
		return qty, err == nil
	}
	return 0, false
}

// lotShapeIsCPUQuantity rejects "5x"-style shapes sitting next to CPU
// vocabulary; a following phone-product context restores the lot reading.
func lotShapeIsCPUQuantity(tokens []string, i int) bool {
	if i > 0 {
		prev := strings.ToLower(tokens[i-1])
		if cpuContextWords[prev] || reSpeedShape.MatchString(prev) || reISeriesShapeLot.MatchString(prev) {
			return true
		}
	}
	if i+1 >= len(tokens) {
		return false
	}
	next := strings.ToLower(tokens[i+1])
	if phoneProductFollows(tokens, i+1) {
		return false
	}
	if cpuContextWords[next] || reISeriesShapeLot.MatchString(next) {
		return true
	}
	return false
}

// phoneProductFollows recognizes "(3) Apple iPhone ..." style openings
// where the brand word is a phone maker, not a CPU vendor.
func phoneProductFollows(tokens []string, at int) bool {
	next := strings.ToLower(tokens[at])
	var after string
	if at+1 < len(tokens) {
		after = strings.ToLower(tokens[at+1])
	}
	switch {
	case next == "apple" && (after == "iphone" || after == "ipad"):
		return true
	case next == "samsung" && strings.Contains(after, "galaxy"):
		return true
	case next == "google" && strings.Contains(after, "pixel"):
		return true
	case next == "oneplus" && after != "":
		return true
	case next == "iphone" || next == "ipad" || next == "pixel" || strings.Contains(next, "galaxy"):
		return true
	}
	return false
}

var leadingCPUBrands = map[string]bool{
	"intel": true, "amd": true, "arm": true, "qualcomm": true, "mediatek": true,
}

func leadingCountIsCPU(tokens []string) bool {
	return len(tokens) > 1 && leadingCPUBrands[strings.ToLower(tokens[1])]
}
