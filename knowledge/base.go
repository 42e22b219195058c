// Package knowledge holds the static substance and condition tables the
// chatbot answers from. The tables are built once and never mutated.
package knowledge

import (
	"sort"
	"strings"
	"sync"

	"pharmacy-chatbot-backend/models"
)

// Base is a read-only view over the substance and condition tables.
// It is safe for concurrent use.
type Base struct {
	substances     map[string]models.InteractionProfile
	conditions     map[string]models.ConditionProfile
	substanceNames []string
	conditionNames []string
}

var (
	defaultBase *Base
	defaultOnce sync.Once
)

// Default returns the process-wide knowledge base, building it on first use.
func Default() *Base {
	defaultOnce.Do(func() {
		defaultBase = New(substances, conditions)
	})
	return defaultBase
}

// New builds a Base from the given profiles. Names are lower-cased.
func New(subs []models.InteractionProfile, conds []models.ConditionProfile) *Base {
	b := &Base{
		substances: make(map[string]models.InteractionProfile, len(subs)),
		conditions: make(map[string]models.ConditionProfile, len(conds)),
	}

	for _, s := range subs {
		s.Name = strings.ToLower(s.Name)
		interactions := make([]string, len(s.Interactions))
		for i, name := range s.Interactions {
			interactions[i] = strings.ToLower(name)
		}
		s.Interactions = interactions
		b.substances[s.Name] = s
		b.substanceNames = append(b.substanceNames, s.Name)
	}
	for _, c := range conds {
		c.Name = strings.ToLower(c.Name)
		b.conditions[c.Name] = c
		b.conditionNames = append(b.conditionNames, c.Name)
	}

	sort.Strings(b.substanceNames)
	sort.Strings(b.conditionNames)
	return b
}

// Substance returns the profile registered under name.
func (b *Base) Substance(name string) (models.InteractionProfile, bool) {
	p, ok := b.substances[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Condition returns the profile registered under name.
func (b *Base) Condition(name string) (models.ConditionProfile, bool) {
	p, ok := b.conditions[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// SubstanceNames returns all substance names in sorted order.
func (b *Base) SubstanceNames() []string {
	return append([]string(nil), b.substanceNames...)
}

// ConditionNames returns all condition names in sorted order.
func (b *Base) ConditionNames() []string {
	return append([]string(nil), b.conditionNames...)
}

// Interaction reports whether a's profile lists b, returning a's warning.
// The edge is directed: b listing a does not count.
func (b *Base) Interaction(a, other string) (string, bool) {
	profile, ok := b.Substance(a)
	if !ok {
		return "", false
	}

	target := strings.ToLower(strings.TrimSpace(other))
	for _, name := range profile.Interactions {
		if name == target {
			return profile.Warning, true
		}
	}
	return "", false
}
