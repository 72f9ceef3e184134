package extract

import (
	"regexp"
	"strings"

	"github.com/ppiankov/gleaner/internal/model"
	"github.com/ppiankov/gleaner/internal/token"
)

// HDD extracts drive-listing specifics: interface, form factor,
// rotational speed, transfer rate, model/part numbers, and usage hours.
// The whole pipeline is gated on drive context so laptop titles that
// merely mention SATA never grow a drive model number.
type HDD struct{}

// NewHDD creates the drive pipeline.
func NewHDD() *HDD {
	return &HDD{}
}

// Name returns the pipeline's domain name.
func (h *HDD) Name() string {
	return "hdd"
}

var hddInterfaces = []string{"SATA", "IDE", "SCSI", "SAS", "PATA", "ATA"}

var (
	reFormFactor    = regexp.MustCompile(`^[23]\.5(?:["′]|in|inch)?$`)
	reRPMToken      = regexp.MustCompile(`(?i)^\d{4,5}rpm$`)
	reRPMNumber     = regexp.MustCompile(`^\d{4,5}$`)
	reHDDTransfer   = regexp.MustCompile(`(?i)^\d+(?:\.\d+)?[gm]?b/s$`)
	reAlnumModel    = regexp.MustCompile(`(?i)^[a-z0-9]{8,}$`)
	rePartLeadZero  = regexp.MustCompile(`(?i)^0[a-z0-9]{5,}$`)
	rePartLetterNum = regexp.MustCompile(`(?i)^[a-z]\d{5,}$`)
	reHoursWord     = regexp.MustCompile(`(?i)^(?:hours?|hrs?)$`)
	reHasLetter     = regexp.MustCompile(`(?i)[a-z]`)
	reHasDigit      = regexp.MustCompile(`[0-9]`)
)

// GPU model shapes that would otherwise pass the drive model-number test.
var gpuModelShapes = []*regexp.Regexp{
	regexp.MustCompile(`^(?:quadro|gtx|rtx|geforce|radeon|rx)[a-z0-9]*$`),
	regexp.MustCompile(`^m\d{3,4}m$`),
	regexp.MustCompile(`^p\d{3,4}$`),
	regexp.MustCompile(`^rtx_a\d{3,4}$`),
}

// hasDriveContext reports whether the title is about a drive rather than
// a computer that happens to contain one. The original system knew the
// listing category; here the title has to say so itself.
func hasDriveContext(tokens []string) bool {
	hasInterface := false
	hasCapacity := false
	for i, tok := range tokens {
		low := strings.ToLower(tok)
		switch low {
		case "hdd", "hdds", "harddrive", "harddrives":
			return true
		case "hard":
			if i+1 < len(tokens) {
				switch strings.ToLower(tokens[i+1]) {
				case "drive", "drives", "disk", "disks":
					return true
				}
			}
		}
		if reRPMToken.MatchString(tok) {
			return true
		}
		if reRPMNumber.MatchString(tok) && i+1 < len(tokens) &&
			strings.EqualFold(tokens[i+1], "rpm") {
			return true
		}
		for _, iface := range hddInterfaces {
			if strings.Contains(strings.ToUpper(tok), iface) {
				hasInterface = true
				break
			}
		}
		if reCapacity.MatchString(tok) {
			hasCapacity = true
		}
	}
	return hasInterface && hasCapacity
}

// Extract reports drive attributes for the title. Matched positions are
// claimed: drive specifics are single-owner vocabulary.
func (h *HDD) Extract(tokens []string, claims *token.ClaimSet) *model.Attributes {
	attrs := model.NewAttributes()
	if !hasDriveContext(tokens) {
		return attrs
	}

	h.extractInterface(tokens, claims, attrs)
	h.extractFormFactor(tokens, claims, attrs)
	h.extractRPM(tokens, claims, attrs)
	h.extractTransferRate(tokens, claims, attrs)
	h.extractModelNumber(tokens, claims, attrs)
	h.extractPartNumber(tokens, claims, attrs)
	h.extractUsageHours(tokens, claims, attrs)
	return attrs
}

func (h *HDD) extractInterface(tokens []string, claims *token.ClaimSet, attrs *model.Attributes) {
	for i, tok := range tokens {
		if claims.Claimed(i) {
			continue
		}
		upper := strings.ToUpper(tok)
		for _, iface := range hddInterfaces {
			if strings.Contains(upper, iface) {
				attrs.Add("hdd_interface", iface)
				claims.Claim(i)
				return
			}
		}
	}
}

func (h *HDD) extractFormFactor(tokens []string, claims *token.ClaimSet, attrs *model.Attributes) {
	for i, tok := range tokens {
		if claims.Claimed(i) || !reFormFactor.MatchString(strings.ToLower(tok)) {
			continue
		}
		if strings.HasPrefix(tok, "3.5") {
			attrs.Add("hdd_form_factor", `3.5"`)
		} else {
			attrs.Add("hdd_form_factor", `2.5"`)
		}
		claims.Claim(i)
		return
	}
}

func (h *HDD) extractRPM(tokens []string, claims *token.ClaimSet, attrs *model.Attributes) {
	for i, tok := range tokens {
		if claims.Claimed(i) {
			continue
		}
		if reRPMToken.MatchString(tok) {
			attrs.Add("hdd_rpm", strings.ToUpper(tok))
			claims.Claim(i)
			return
		}
		if reRPMNumber.MatchString(tok) && i+1 < len(tokens) && !claims.Claimed(i+1) &&
			strings.EqualFold(tokens[i+1], "rpm") {
			attrs.Add("hdd_rpm", tok+"RPM")
			claims.Claim(i)
			claims.Claim(i + 1)
			return
		}
	}
}

func (h *HDD) extractTransferRate(tokens []string, claims *token.ClaimSet, attrs *model.Attributes) {
	for i, tok := range tokens {
		if claims.Claimed(i) || !reHDDTransfer.MatchString(tok) {
			continue
		}
		attrs.Add("hdd_transfer_rate", tok)
		claims.Claim(i)
		return
	}
}

func (h *HDD) extractModelNumber(tokens []string, claims *token.ClaimSet, attrs *model.Attributes) {
	for i, tok := range tokens {
		if claims.Claimed(i) {
			continue
		}
		low := strings.ToLower(tok)
		if isGPUModelShape(low) {
			continue
		}
		if reAlnumModel.MatchString(tok) && reHasLetter.MatchString(tok) &&
			reHasDigit.MatchString(tok) && !strings.HasPrefix(tok, "0") {
			attrs.Add("hdd_model_number", tok)
			claims.Claim(i)
			return
		}
	}
}

func (h *HDD) extractPartNumber(tokens []string, claims *token.ClaimSet, attrs *model.Attributes) {
	for i, tok := range tokens {
		if claims.Claimed(i) {
			continue
		}
		if rePartLeadZero.MatchString(tok) || rePartLetterNum.MatchString(tok) {
			attrs.Add("hdd_part_number", tok)
			claims.Claim(i)
			return
		}
	}
}

func (h *HDD) extractUsageHours(tokens []string, claims *token.ClaimSet, attrs *model.Attributes) {
	for i, tok := range tokens {
		if claims.Claimed(i) || !isDigits(tok) {
			continue
		}
		if i+1 < len(tokens) && !claims.Claimed(i+1) && reHoursWord.MatchString(tokens[i+1]) {
			attrs.Add("hdd_usage_hours", tok+" Hours")
			claims.Claim(i)
			claims.Claim(i + 1)
			return
		}
	}
}

func isGPUModelShape(low string) bool {
	for _, re := range gpuModelShapes {
		if re.MatchString(low) {
			return true
		}
	}
	return false
}
