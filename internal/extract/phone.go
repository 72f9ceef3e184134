package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ppiankov/gleaner/internal/model"
	"github.com/ppiankov/gleaner/internal/token"
)

// Phone extracts handset and tablet attributes: brand and series, Apple
// model numbers, color, carrier, network lock status, and battery health.
// The pass is gated on a brand/series pair (or a bare "Apple") so desktop
// titles that happen to say "Black" never grow a phone color.
type Phone struct{}

// NewPhone creates the phone pipeline.
func NewPhone() *Phone {
	return &Phone{}
}

// Name returns the pipeline's domain name.
func (p *Phone) Name() string {
	return "phone"
}

var phoneBrands = map[string]bool{
	"samsung": true, "apple": true, "google": true, "oneplus": true,
}

var phoneSeries = map[string]bool{
	"galaxy": true, "iphone": true, "ipad": true, "pixel": true,
	"nord": true, "oneplus": true,
}

// Color names across the major handset makers, lower-cased; multi-word
// names are matched as token sequences, longest first.
var phoneColors = []string{
	"black", "white", "silver", "gold", "blue", "red", "green", "purple",
	"yellow", "pink", "coral", "graphite", "titanium", "midnight",
	"starlight", "twilight", "sage", "chalk", "charcoal", "hazel", "slate",
	"rose gold", "space gray", "space grey", "space black", "jet black",
	"matte black", "midnight black", "alpine green", "deep purple",
	"product red", "sierra blue", "pacific blue", "sky blue",
	"phantom black", "phantom silver", "phantom gray", "phantom grey",
	"phantom white", "phantom violet", "phantom pink", "phantom green",
	"mystic bronze", "mystic black", "mystic white", "mystic gray",
	"mystic grey", "mystic green", "aura black", "aura white", "aura blue",
	"aura red", "aura glow", "prism black", "prism white", "prism blue",
	"prism green", "cloud blue", "cloud pink", "cloud white",
	"cosmic gray", "cosmic grey", "cosmic black", "burgundy red",
	"lilac purple", "amber brown", "crystal blue", "ceramic white",
	"ceramic black", "flamingo pink", "canary yellow", "just black",
	"clearly white", "not pink", "kinda blue", "really blue",
	"sorta sage", "barely blue", "stormy black", "sorta sunny",
	"cloudy white", "stormy sky", "frosted silver", "nebula blue",
	"glacial green", "marble white", "stellar gray", "stellar grey",
	"lunar silver", "astral black", "morning mist", "pine green",
	"sandstone black", "jade green", "emerald green", "ocean blue",
	"polar white",
}

// US carriers, lower-cased token sequences.
var phoneCarriers = []string{
	"verizon", "at&t", "t-mobile", "sprint", "cricket", "metropcs", "metro",
	"boost mobile", "mint mobile", "google fi", "xfinity mobile",
	"spectrum mobile", "consumer cellular", "straight talk", "us cellular",
	"tracfone", "simple mobile",
}

var reAppleModel = regexp.MustCompile(`^A\d{4}$`)

// Extract reports phone attributes for the title. Only the brand/series
// pair is claimed; the finer attributes stay shared vocabulary.
func (p *Phone) Extract(tokens []string, claims *token.ClaimSet) *model.Attributes {
	attrs := model.NewAttributes()

	matched, local := p.matchBrandSeries(tokens, claims, attrs)
	if !matched {
		return attrs
	}

	p.extractAppleModels(tokens, claims, local, attrs)
	p.extractColors(tokens, claims, local, attrs)
	p.extractCarrier(tokens, claims, local, attrs)
	p.extractNetworkStatus(tokens, claims, local, attrs)
	p.extractBatteryHealth(tokens, claims, local, attrs)
	p.extractModel(tokens, claims, local, attrs)
	return attrs
}

// matchBrandSeries finds a maker word followed by a series word, stepping
// over claimed tokens, or a bare "Apple". Matched positions are claimed
// and recorded in the local set.
func (p *Phone) matchBrandSeries(tokens []string, claims *token.ClaimSet, attrs *model.Attributes) (bool, map[int]bool) {
	local := make(map[int]bool)
	appleAt := -1
	for i, tok := range tokens {
		if claims.Claimed(i) {
			continue
		}
		low := strings.ToLower(tok)
		if !phoneBrands[low] {
			// A series word with no maker still identifies the listing:
			// "iPhone 13 Pro Max" rarely says "Apple".
			if phoneSeries[low] && low != "nord" {
				attrs.Add("series", tok)
				claims.Claim(i)
				local[i] = true
				return true, local
			}
			continue
		}
		if low == "apple" && appleAt < 0 {
			appleAt = i
		}
		for j := i + 1; j < len(tokens); j++ {
			if claims.Claimed(j) {
				continue
			}
			if phoneSeries[strings.ToLower(tokens[j])] {
				attrs.Add("brand", tok)
				attrs.Add("series", tokens[j])
				claims.Claim(i)
				claims.Claim(j)
				local[i] = true
				local[j] = true
				return true, local
			}
			break
		}
	}
	if appleAt >= 0 {
		attrs.Add("brand", tokens[appleAt])
		claims.Claim(appleAt)
		local[appleAt] = true
		return true, local
	}
	return false, local
}

func (p *Phone) extractAppleModels(tokens []string, claims *token.ClaimSet, local map[int]bool, attrs *model.Attributes) {
	for i, tok := range tokens {
		if claims.Claimed(i) || local[i] {
			continue
		}
		if reAppleModel.MatchString(tok) {
			attrs.Add("phone_model", tok)
			local[i] = true
		}
	}
}

func (p *Phone) extractColors(tokens []string, claims *token.ClaimSet, local map[int]bool, attrs *model.Attributes) {
	names := make([]string, len(phoneColors))
	copy(names, phoneColors)
	sort.SliceStable(names, func(a, b int) bool {
		return strings.Count(names[a], " ") > strings.Count(names[b], " ")
	})

	for _, name := range names {
		words := strings.Split(name, " ")
		for i := 0; i+len(words) <= len(tokens); i++ {
			if spanBlocked(claims, local, i, i+len(words)) {
				continue
			}
			if !wordsMatchAt(tokens, i, words) {
				continue
			}
			attrs.Add("color", strings.Join(tokens[i:i+len(words)], " "))
			for j := i; j < i+len(words); j++ {
				local[j] = true
			}
			break
		}
	}
}

func (p *Phone) extractCarrier(tokens []string, claims *token.ClaimSet, local map[int]bool, attrs *model.Attributes) {
	for _, name := range phoneCarriers {
		words := strings.Split(name, " ")
		for i := 0; i+len(words) <= len(tokens); i++ {
			if spanBlocked(claims, local, i, i+len(words)) || !wordsMatchAt(tokens, i, words) {
				continue
			}
			attrs.Add("carrier", strings.Join(tokens[i:i+len(words)], " "))
			for j := i; j < i+len(words); j++ {
				local[j] = true
			}
			return
		}
	}
}

func (p *Phone) extractNetworkStatus(tokens []string, claims *token.ClaimSet, local map[int]bool, attrs *model.Attributes) {
	// A handset that says "WiFi" means WiFi-only regardless of "Only".
	for i, tok := range tokens {
		if claims.Claimed(i) || local[i] {
			continue
		}
		low := strings.ToLower(tok)
		if low == "wifi" || low == "wi-fi" {
			attrs.Add("network_status", "WiFi Only")
			local[i] = true
			if i+1 < len(tokens) && strings.EqualFold(tokens[i+1], "only") {
				local[i+1] = true
			}
			break
		}
	}

	unlockedForms := []struct {
		words []string
		value string
	}{
		{[]string{"network", "unlocked"}, "Network Unlocked"},
		{[]string{"net", "unlocked"}, "Network Unlocked"},
		{[]string{"carrier", "unlocked"}, "Carrier Unlocked"},
		{[]string{"unlocked"}, "Network Unlocked"},
	}
	for _, form := range unlockedForms {
		for i := 0; i+len(form.words) <= len(tokens); i++ {
			if spanBlocked(claims, local, i, i+len(form.words)) || !wordsMatchAt(tokens, i, form.words) {
				continue
			}
			attrs.Add("network_status", form.value)
			for j := i; j < i+len(form.words); j++ {
				local[j] = true
			}
			return
		}
	}
}

func (p *Phone) extractBatteryHealth(tokens []string, claims *token.ClaimSet, local map[int]bool, attrs *model.Attributes) {
	for i := 0; i+2 < len(tokens); i++ {
		if spanBlocked(claims, local, i, i+3) {
			continue
		}
		if strings.EqualFold(tokens[i], "battery") && strings.EqualFold(tokens[i+1], "health") {
			attrs.Add("battery_health", tokens[i+2])
			local[i] = true
			local[i+1] = true
			local[i+2] = true
			return
		}
	}
}

// extractModel joins the remaining tokens into the model string: for
// "Samsung Galaxy S10 128GB Black Unlocked" everything the finer passes
// left behind is "S10 128GB".
func (p *Phone) extractModel(tokens []string, claims *token.ClaimSet, local map[int]bool, attrs *model.Attributes) {
	var parts []string
	for i, tok := range tokens {
		if claims.Claimed(i) || local[i] {
			continue
		}
		switch tok {
		case "/", "-", "|", ":", ";", "&":
			continue
		}
		parts = append(parts, tok)
	}
	if len(parts) > 0 {
		attrs.Add("model", strings.Join(parts, " "))
	}
}

func spanBlocked(claims *token.ClaimSet, local map[int]bool, from, to int) bool {
	for j := from; j < to; j++ {
		if claims.Claimed(j) || local[j] {
			return true
		}
	}
	return false
}

func wordsMatchAt(tokens []string, at int, words []string) bool {
	for k, w := range words {
		if !strings.EqualFold(tokens[at+k], w) {
			return false
		}
	}
	return true
}
