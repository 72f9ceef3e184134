package match

import "fmt"

// Validate checks extractor configurations for programmer errors that the
// matcher would otherwise hide at run time: empty names, empty groups,
// empty alternatives, and regular expressions that failed to compile.
func Validate(cfgs ...Config) error {
	for _, cfg := range cfgs {
		if cfg.Name == "" {
			return fmt.Errorf("extractor config: empty attribute name")
		}
		for gi, g := range cfg.Groups {
			if len(g) == 0 {
				return fmt.Errorf("extractor %q: group %d is empty", cfg.Name, gi)
			}
			for ai, a := range g {
				if err := validateAtom(a); err != nil {
					return fmt.Errorf("extractor %q: group %d atom %d: %w", cfg.Name, gi, ai, err)
				}
			}
		}
	}
	return nil
}

func validateAtom(a Atom) error {
	switch a.Kind {
	case KindLiteral:
		if a.Value == "" {
			return fmt.Errorf("literal atom with empty value")
		}
	case KindRegex:
		if a.Regex == nil {
			return fmt.Errorf("regex atom %q did not compile", a.Pattern)
		}
	case KindAny:
		if len(a.Alternatives) == 0 {
			return fmt.Errorf("alternatives atom with no values")
		}
		for _, v := range a.Alternatives {
			if v == "" {
				return fmt.Errorf("alternatives atom with empty value")
			}
		}
	default:
		return fmt.Errorf("unknown atom kind %d", a.Kind)
	}
	return nil
}
