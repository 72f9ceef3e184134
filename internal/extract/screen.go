package extract

import (
	"regexp"
	"strings"

	"github.com/ppiankov/gleaner/internal/model"
	"github.com/ppiankov/gleaner/internal/token"
)

// Screen extracts display attributes: diagonal size, resolution, refresh
// rate, aspect ratio, touch capability, and panel type. The pass never
// claims; display vocabulary overlaps too much with the rest of a title.
type Screen struct{}

// NewScreen creates the screen pipeline.
func NewScreen() *Screen {
	return &Screen{}
}

// Name returns the pipeline's domain name.
func (s *Screen) Name() string {
	return "screen"
}

// Marketing names to pixel dimensions, including the legacy VESA tiers.
var resolutionAliases = map[string]string{
	"fhd": "1920x1080", "hd": "1366x768", "hd+": "1600x900",
	"4k": "3840x2160", "5k": "5120x2880", "8k": "7680x4320",
	"qhd": "2560x1440", "uhd": "3840x2160",
	"1080p": "1920x1080", "720p": "1280x720",
	"1440p": "2560x1440", "2160p": "3840x2160",
	"svga": "800x600", "xga": "1024x768", "sxga": "1280x1024",
	"wxga": "1280x800", "wxga+": "1440x900", "wsxga": "1440x900",
	"wsxga+": "1680x1050", "uxga": "1600x1200", "wuxga": "1920x1200",
	"qxga": "2048x1536", "wqhd": "2560x1440", "wqxga": "2560x1600",
	"uwfhd": "2560x1080", "uwqhd": "3440x1440",
	"retina": "2560x1600", "retina15": "2880x1800",
}

var resolutionAliasPairs = map[string]string{
	"full hd": "1920x1080", "quad hd": "2560x1440", "ultra hd": "3840x2160",
}

var panelTypes = map[string]string{
	"ips": "IPS", "tn": "TN", "va": "VA", "oled": "OLED",
	"amoled": "AMOLED", "lcd": "LCD", "led": "LED",
}

var (
	reScreenSize    = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)(?:"|″|-?in(?:ch(?:es)?)?)$`)
	reScreenSizeNum = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	reSizeUnit      = regexp.MustCompile(`(?i)^(?:"|″|in|inch(?:es)?)$`)
	rePixelPair     = regexp.MustCompile(`(?i)^(\d+)x(\d+)$`)
	reHertzToken    = regexp.MustCompile(`(?i)^(\d+)hz$`)
	reAspectRatio   = regexp.MustCompile(`^(\d+:\d+)$`)
	reTouchWord     = regexp.MustCompile(`(?i)^touch(?:screen)?$`)
	reNonTouch      = regexp.MustCompile(`(?i)^non-?touch$`)
)

// Extract reports screen attributes for the title.
func (s *Screen) Extract(tokens []string, claims *token.ClaimSet) *model.Attributes {
	attrs := model.NewAttributes()
	s.extractSize(tokens, attrs)
	s.extractResolution(tokens, attrs)
	s.extractHertz(tokens, attrs)
	s.extractAspectRatio(tokens, attrs)
	s.extractTouch(tokens, attrs)
	s.extractPanelType(tokens, attrs)
	return attrs
}

func (s *Screen) extractSize(tokens []string, attrs *model.Attributes) {
	for i, tok := range tokens {
		if m := reScreenSize.FindStringSubmatch(tok); m != nil {
			if isDriveFormFactor(m[1]) {
				continue
			}
			attrs.Add("screen_size", m[1]+"in")
			return
		}
		if reScreenSizeNum.MatchString(tok) && i+1 < len(tokens) &&
			reSizeUnit.MatchString(tokens[i+1]) && !isDriveFormFactor(tok) {
			// "2 in 1" convertibles are not two-inch screens.
			if i+2 < len(tokens) && tokens[i+2] == "1" {
				continue
			}
			attrs.Add("screen_size", tok+"in")
			return
		}
	}
}

// isDriveFormFactor keeps 2.5" and 3.5" drive bays out of screen sizes.
func isDriveFormFactor(number string) bool {
	return number == "2.5" || number == "3.5"
}

func (s *Screen) extractResolution(tokens []string, attrs *model.Attributes) {
	for i, tok := range tokens {
		low := strings.ToLower(tok)

		if m := rePixelPair.FindStringSubmatch(low); m != nil {
			attrs.Add("screen_resolution", m[1]+"x"+m[2])
			return
		}

		// "1920 x 1080" split across tokens.
		if reScreenSizeNum.MatchString(tok) && i+2 < len(tokens) &&
			strings.EqualFold(tokens[i+1], "x") && reScreenSizeNum.MatchString(tokens[i+2]) {
			attrs.Add("screen_resolution", tok+"x"+tokens[i+2])
			return
		}

		if i+1 < len(tokens) {
			pair := low + " " + strings.ToLower(tokens[i+1])
			if px, ok := resolutionAliasPairs[pair]; ok {
				attrs.Add("screen_resolution", px)
				return
			}
		}

		if px, ok := resolutionAliases[low]; ok {
			// "HD" is also drive shorthand; only read it as a resolution
			// when the title is not about a drive.
			if low == "hd" && hasDriveContext(tokens) {
				continue
			}
			attrs.Add("screen_resolution", px)
			return
		}
	}
}

func (s *Screen) extractHertz(tokens []string, attrs *model.Attributes) {
	for i, tok := range tokens {
		if m := reHertzToken.FindStringSubmatch(tok); m != nil {
			attrs.Add("screen_hertz", m[1]+"Hz")
			return
		}
		if isDigits(tok) && i+1 < len(tokens) && strings.EqualFold(tokens[i+1], "hz") {
			attrs.Add("screen_hertz", tok+"Hz")
			return
		}
	}
}

func (s *Screen) extractAspectRatio(tokens []string, attrs *model.Attributes) {
	for i, tok := range tokens {
		if m := reAspectRatio.FindStringSubmatch(tok); m != nil {
			attrs.Add("screen_aspect_ratio", m[1])
			return
		}
		if isDigits(tok) && i+2 < len(tokens) &&
			strings.EqualFold(tokens[i+1], "by") && isDigits(tokens[i+2]) {
			attrs.Add("screen_aspect_ratio", tok+":"+tokens[i+2])
			return
		}
		low := strings.ToLower(tok)
		if low == "widescreen" {
			attrs.Add("screen_aspect_ratio", "16:9")
			return
		}
		// "Standard" alone usually describes shipping; only a display
		// word right next to it makes it an aspect ratio.
		if low == "standard" && hasDisplayNeighbor(tokens, i) {
			attrs.Add("screen_aspect_ratio", "4:3")
			return
		}
	}
}

func hasDisplayNeighbor(tokens []string, i int) bool {
	for _, j := range []int{i - 1, i + 1} {
		if j < 0 || j >= len(tokens) {
			continue
		}
		switch strings.ToLower(tokens[j]) {
		case "screen", "display", "monitor", "panel", "lcd":
			return true
		}
	}
	return false
}

func (s *Screen) extractTouch(tokens []string, attrs *model.Attributes) {
	for i, tok := range tokens {
		if reNonTouch.MatchString(tok) {
			attrs.Add("screen_touch", "Non-Touch")
			return
		}
		if strings.EqualFold(tok, "non") && i+1 < len(tokens) &&
			reTouchWord.MatchString(tokens[i+1]) {
			attrs.Add("screen_touch", "Non-Touch")
			return
		}
		if reTouchWord.MatchString(tok) {
			attrs.Add("screen_touch", "Touchscreen")
			return
		}
	}
}

func (s *Screen) extractPanelType(tokens []string, attrs *model.Attributes) {
	for _, tok := range tokens {
		if name, ok := panelTypes[strings.ToLower(tok)]; ok {
			attrs.Add("screen_panel_type", name)
			return
		}
	}
}
