// Package templates holds the catalog of persuasive response patterns the
// candidate side draws from. The catalog is immutable after Load.
package templates

import (
	"fmt"
	"regexp"
)

// Strategy is the negotiation stance a session commits to at creation.
type Strategy string

const (
	StrategyCollaborative Strategy = "collaborative"
	StrategyAssertive     Strategy = "assertive"
	StrategyAnalytical    Strategy = "analytical"
	StrategyDiplomatic    Strategy = "diplomatic"
)

// Strategies lists every known strategy.
func Strategies() []Strategy {
	return []Strategy{StrategyCollaborative, StrategyAssertive, StrategyAnalytical, StrategyDiplomatic}
}

// Valid reports whether the strategy is one of the fixed enumeration.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyCollaborative, StrategyAssertive, StrategyAnalytical, StrategyDiplomatic:
		return true
	}
	return false
}

// Tone colors the phrasing of a template.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneConfident    Tone = "confident"
	ToneFriendly     Tone = "friendly"
	ToneFirm         Tone = "firm"
)

// ResponseTemplate is a parameterized persuasive message pattern. Text uses
// {slot} markers; Slots lists every marker that appears in Text.
type ResponseTemplate struct {
	ID            string
	Strategy      Strategy
	Tone          Tone
	Text          string
	Slots         []string
	Effectiveness float64
}

// Library is the loaded template catalog.
type Library struct {
	entries []ResponseTemplate
}

var slotPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// Load builds the library from the built-in catalog and verifies its
// integrity: effectiveness in [0,1], declared slots matching the markers in
// the text, and at least one template per strategy.
func Load() (*Library, error) {
	lib := &Library{entries: builtinTemplates}

	perStrategy := make(map[Strategy]int)
	for _, tpl := range lib.entries {
		if tpl.Effectiveness < 0 || tpl.Effectiveness > 1 {
			return nil, fmt.Errorf("template %s: effectiveness %f out of range", tpl.ID, tpl.Effectiveness)
		}

		if !tpl.Strategy.Valid() {
			return nil, fmt.Errorf("template %s: unknown strategy %s", tpl.ID, tpl.Strategy)
		}

		declared := make(map[string]struct{}, len(tpl.Slots))
		for _, slot := range tpl.Slots {
			declared[slot] = struct{}{}
		}

		for _, match := range slotPattern.FindAllStringSubmatch(tpl.Text, -1) {
			if _, ok := declared[match[1]]; !ok {
				return nil, fmt.Errorf("template %s: marker {%s} is not declared as a slot", tpl.ID, match[1])
			}
		}

		perStrategy[tpl.Strategy]++
	}

	for _, strategy := range Strategies() {
		if perStrategy[strategy] == 0 {
			return nil, fmt.Errorf("no templates for strategy %s", strategy)
		}
	}

	return lib, nil
}

// ByStrategy returns the templates for the given strategy in catalog order.
func (l *Library) ByStrategy(strategy Strategy) []ResponseTemplate {
	var out []ResponseTemplate
	for _, tpl := range l.entries {
		if tpl.Strategy == strategy {
			out = append(out, tpl)
		}
	}
	return out
}

// All returns every template in catalog order.
func (l *Library) All() []ResponseTemplate {
	out := make([]ResponseTemplate, len(l.entries))
	copy(out, l.entries)
	return out
}

// Validate checks that every declared slot has a resolver. It is meant to run
// once at startup so a missing resolver is caught before the first session,
// not at call time.
func (l *Library) Validate(resolvable func(slot string) bool) error {
	for _, tpl := range l.entries {
		for _, slot := range tpl.Slots {
			if !resolvable(slot) {
				return fmt.Errorf("template %s: no resolver for slot %q", tpl.ID, slot)
			}
		}
	}
	return nil
}
