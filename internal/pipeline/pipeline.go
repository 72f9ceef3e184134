package pipeline

import (
	"fmt"
	"time"

	"github.com/ppiankov/gleaner/internal/extract"
	"github.com/ppiankov/gleaner/internal/model"
	"github.com/ppiankov/gleaner/internal/token"
)

// Extractor is one domain pass over a title's tokens. Extractors share
// the claim set; whether a pass claims is its own policy.
type Extractor interface {
	Name() string
	Extract(tokens []string, claims *token.ClaimSet) *model.Attributes
}

// validator is implemented by extractors whose pattern configurations
// can be checked at startup.
type validator interface {
	Validate() error
}

// Pipeline runs the domain extractors in fixed order over one shared
// claim set per title. Order matters: CPU and Storage claim the
// ambiguous numeric tokens first, so the narrower passes (and Lot, which
// reads quantity shapes) see them as taken.
type Pipeline struct {
	extractors []Extractor
}

// New creates the engine with the full extractor chain and validates
// every declarative pattern configuration.
func New() (*Pipeline, error) {
	p := &Pipeline{
		extractors: []Extractor{
			extract.NewCPU(),
			extract.NewStorage(),
			extract.NewHDD(),
			extract.NewOS(),
			extract.NewScreen(),
			extract.NewBattery(),
			extract.NewPhone(),
			extract.NewNetAdapter(),
			extract.NewNetSwitch(),
			extract.NewStatus(),
			extract.NewLot(),
		},
	}
	for _, e := range p.extractors {
		if v, ok := e.(validator); ok {
			if err := v.Validate(); err != nil {
				return nil, fmt.Errorf("extractor %s: %w", e.Name(), err)
			}
		}
	}
	return p, nil
}

// ExtractTitle runs the full chain over one listing title. A fresh claim
// set is created per title; extraction itself never fails.
func (p *Pipeline) ExtractTitle(title string) *model.Result {
	tokens := token.Tokenize(title)
	claims := token.NewClaimSet()

	merged := model.NewAttributes()
	for _, e := range p.extractors {
		mergeNew(merged, e.Extract(tokens, claims))
	}

	return &model.Result{
		Title:       title,
		ExtractedAt: time.Now().UTC(),
		Tokens:      tokens,
		Attributes:  merged.Flatten(),
	}
}

// mergeNew merges attrs into dst, dropping exact key/value duplicates:
// the status pass and a domain pass may both report the same absence.
func mergeNew(dst, attrs *model.Attributes) {
	for _, key := range attrs.Keys() {
		if attrs.NumbersFromOne(key) {
			dst.NumberFromOne(key)
		}
		for _, val := range attrs.All(key) {
			if containsValue(dst.All(key), val) {
				continue
			}
			dst.Add(key, val)
		}
	}
}

func containsValue(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}
