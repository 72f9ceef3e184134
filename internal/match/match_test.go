package match

import (
	"reflect"
	"testing"

	"github.com/ppiankov/gleaner/internal/token"
)

func TestAtom_Literal(t *testing.T) {
	a := Literal("SSD")
	if !a.Matches("ssd") || !a.Matches("SSD") {
		t.Error("Expected literal matching to be case-insensitive")
	}
	if a.Matches("ssds") {
		t.Error("Expected literal to require the whole token")
	}
}

func TestAtom_Regex(t *testing.T) {
	a := Regex(`\d+gb`)
	if !a.Matches("256GB") {
		t.Error("Expected regex to match case-insensitively")
	}
	if !a.Matches("256GBx") {
		t.Error("Expected regex to be anchored at token start only")
	}
	if a.Matches("x256GB") {
		t.Error("Expected regex not to match mid-token")
	}
}

func TestAtom_RegexCompileFailure(t *testing.T) {
	a := Regex(`[unclosed`)
	if a.Regex != nil {
		t.Error("Expected bad pattern to leave Regex nil")
	}
	if a.Matches("anything") {
		t.Error("Expected uncompiled regex to never match")
	}
}

func TestAtom_Any(t *testing.T) {
	a := Any("single", "dual", "quad")
	if !a.Matches("Dual") {
		t.Error("Expected alternatives to match case-insensitively")
	}
	if a.Matches("octal") {
		t.Error("Expected non-alternative to miss")
	}
}

func TestGroup_Find(t *testing.T) {
	g := Group{Regex(`\d+-ports?`), Literal("switch").Hidden()}
	tokens := []string{"Netgear", "24-Port", "Switch"}

	span, ok := g.Find(tokens, token.NewClaimSet())
	if !ok {
		t.Fatal("Expected group to match")
	}
	if !reflect.DeepEqual(span.Emit, []int{1}) {
		t.Errorf("Expected emit [1], got %v", span.Emit)
	}
	if !reflect.DeepEqual(span.All, []int{1, 2}) {
		t.Errorf("Expected all [1 2], got %v", span.All)
	}
}

func TestGroup_Find_StepsOverClaimed(t *testing.T) {
	g := Group{Literal("intel"), Literal("ethernet")}
	tokens := []string{"Intel", "X710", "Ethernet"}

	claims := token.NewClaimSet()
	claims.Claim(1)

	span, ok := g.Find(tokens, claims)
	if !ok {
		t.Fatal("Expected group to match across the claimed position")
	}
	if !reflect.DeepEqual(span.All, []int{0, 2}) {
		t.Errorf("Expected all [0 2], got %v", span.All)
	}
}

func TestGroup_Find_OptionalSkipped(t *testing.T) {
	g := Group{Regex(`pcie`), Regex(`x\d+`).Opt(), Literal("adapter").Hidden()}
	tokens := []string{"PCIe", "Adapter"}

	span, ok := g.Find(tokens, token.NewClaimSet())
	if !ok {
		t.Fatal("Expected group to match without the optional atom")
	}
	if !reflect.DeepEqual(span.Emit, []int{0}) {
		t.Errorf("Expected emit [0], got %v", span.Emit)
	}
}

func TestGroup_Find_NoMatch(t *testing.T) {
	g := Group{Literal("infiniband"), Regex(`[eqf]dr`)}
	tokens := []string{"Ethernet", "Adapter"}

	if _, ok := g.Find(tokens, token.NewClaimSet()); ok {
		t.Error("Expected no match")
	}
}

func TestExtractor_RepeatWithoutClaiming(t *testing.T) {
	e := New(Config{
		Name:   "speed",
		Groups: []Group{{Regex(`\d+gbe`)}},
		Repeat: true,
	})
	tokens := []string{"Dual", "10GbE", "and", "25GbE", "NIC"}
	claims := token.NewClaimSet()

	spans := e.Extract(tokens, claims)
	if len(spans) != 2 {
		t.Fatalf("Expected 2 spans, got %d", len(spans))
	}
	if spans[0][0] != 1 || spans[1][0] != 3 {
		t.Errorf("Expected spans at positions 1 and 3, got %v", spans)
	}
	// The extractor did not opt into claiming.
	if claims.Len() != 0 {
		t.Errorf("Expected no shared claims, got %d", claims.Len())
	}
}

func TestExtractor_Claims(t *testing.T) {
	e := New(Config{
		Name:   "capacity",
		Groups: []Group{{Regex(`\d+gb$`)}},
		Claim:  true,
	})
	tokens := []string{"Laptop", "256GB", "SSD"}
	claims := token.NewClaimSet()

	spans := e.Extract(tokens, claims)
	if len(spans) != 1 {
		t.Fatalf("Expected 1 span, got %d", len(spans))
	}
	if !claims.Claimed(1) {
		t.Error("Expected matched position to be claimed")
	}
}

func TestExtractor_Process(t *testing.T) {
	e := New(Config{Name: "screen_size", StripUnit: true})
	attrs := e.Process([]string{"14in", "Laptop"}, []int{0})

	if got, _ := attrs.Get("screen_size"); got != "14" {
		t.Errorf("Expected unit stripped, got %q", got)
	}
}

func TestValidate(t *testing.T) {
	good := Config{Name: "ports", Groups: []Group{{Regex(`\d+-ports?`)}}}
	if err := Validate(good); err != nil {
		t.Errorf("Expected valid config to pass, got %v", err)
	}

	if err := Validate(Config{Name: ""}); err == nil {
		t.Error("Expected error for empty name")
	}
	if err := Validate(Config{Name: "x", Groups: []Group{{}}}); err == nil {
		t.Error("Expected error for empty group")
	}
	if err := Validate(Config{Name: "x", Groups: []Group{{Regex(`[bad`)}}}); err == nil {
		t.Error("Expected error for uncompiled regex")
	}
	if err := Validate(Config{Name: "x", Groups: []Group{{Any()}}}); err == nil {
		t.Error("Expected error for empty alternatives")
	}
}
