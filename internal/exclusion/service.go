// Package exclusion decides whether a modifier may join an item's existing
// modifiers under the stat-pattern exclusion rules.
package exclusion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
	"github.com/osse101/PoE2Craft_Go/internal/modpool"
)

// Service checks candidate modifiers against loaded exclusion rules
type Service interface {
	CanAddMod(candidate *domain.Modifier, existing []domain.ItemModifier, category string) (bool, string)
	GetConflictingMods(candidate *domain.Modifier, existing []domain.ItemModifier, category string) []domain.ItemModifier
	FilterAvailableMods(candidates []*domain.Modifier, existing []domain.ItemModifier, category string) []*domain.Modifier
	RuleCount() int
}

type compiledRule struct {
	description string
	categories  map[string]bool // empty means every category
	modTypes    map[domain.ModType]bool
	patterns    []*regexp.Regexp
}

type service struct {
	rules []compiledRule
}

// NewService compiles the rules. Group names in applicable_items are expanded
// with categories.
func NewService(rules []domain.ExclusionRule, categories modpool.Categories) (Service, error) {
	s := &service{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		compiled, err := compileRule(r, categories)
		if err != nil {
			return nil, err
		}
		s.rules = append(s.rules, compiled)
	}
	return s, nil
}

func compileRule(r domain.ExclusionRule, categories modpool.Categories) (compiledRule, error) {
	if len(r.Patterns) < 2 {
		return compiledRule{}, fmt.Errorf(ErrFmtTooFewPatterns, domain.ErrInvalidExclusion, r.Description)
	}

	out := compiledRule{
		description: r.Description,
		categories:  make(map[string]bool),
		modTypes:    make(map[domain.ModType]bool),
	}
	for _, c := range categories.Expand(r.ApplicableItems) {
		out.categories[c] = true
	}
	for _, t := range r.ModTypes {
		if !t.Valid() {
			return compiledRule{}, fmt.Errorf(ErrFmtUnknownRuleModType, domain.ErrInvalidExclusion, r.Description, t)
		}
		out.modTypes[t] = true
	}

	seen := make(map[string]bool, len(r.Patterns))
	for _, p := range r.Patterns {
		if seen[p] {
			return compiledRule{}, fmt.Errorf(ErrFmtDuplicatePattern, domain.ErrInvalidExclusion, r.Description, p)
		}
		seen[p] = true

		if strings.TrimSpace(strings.ReplaceAll(p, domain.StatPlaceholder, "")) == "" {
			return compiledRule{}, fmt.Errorf(ErrFmtPlaceholderOnly, domain.ErrInvalidExclusion, r.Description, p)
		}
		re, err := CompilePattern(p)
		if err != nil {
			return compiledRule{}, fmt.Errorf(ErrFmtCompilePattern, domain.ErrInvalidExclusion, r.Description, p, err)
		}
		out.patterns = append(out.patterns, re)
	}
	return out, nil
}

// CompilePattern turns a rule pattern into an anchored regular expression.
// Literal text is escaped; each "{}" matches a number or a "(min-max)" range.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	parts := strings.Split(pattern, domain.StatPlaceholder)
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return regexp.Compile("^" + strings.Join(parts, numberOrRange) + "$")
}

func (r *compiledRule) appliesTo(category string, t domain.ModType) bool {
	if len(r.categories) > 0 && !r.categories[category] {
		return false
	}
	if len(r.modTypes) > 0 && !r.modTypes[t] {
		return false
	}
	return true
}

// matchIndexes returns the indexes of every pattern matching any of texts
func (r *compiledRule) matchIndexes(texts ...string) []int {
	var idx []int
	for i, re := range r.patterns {
		for _, text := range texts {
			if re.MatchString(text) {
				idx = append(idx, i)
				break
			}
		}
	}
	return idx
}

// candidateTexts is what a catalog entry looks like before it is rolled
func candidateTexts(m *domain.Modifier) []string {
	return []string{m.RangeText(), m.RenderValue(m.Min)}
}

// conflicts reports whether existing matches a pattern of the rule other than
// every pattern the candidate matched
func (r *compiledRule) conflicts(candidateIdx []int, existing *domain.ItemModifier) bool {
	for _, j := range r.matchIndexes(existing.Text(), existing.RangeText()) {
		for _, i := range candidateIdx {
			if i != j {
				return true
			}
		}
	}
	return false
}

// CanAddMod reports whether the candidate may join the existing modifiers.
// On rejection the reason names the first conflicting modifier and rule.
func (s *service) CanAddMod(candidate *domain.Modifier, existing []domain.ItemModifier, category string) (bool, string) {
	for ri := range s.rules {
		rule := &s.rules[ri]
		if !rule.appliesTo(category, candidate.Type) {
			continue
		}
		idx := rule.matchIndexes(candidateTexts(candidate)...)
		if len(idx) == 0 {
			continue
		}
		for ei := range existing {
			if rule.conflicts(idx, &existing[ei]) {
				return false, fmt.Sprintf(MsgFmtConflict, candidate.Name, existing[ei].Name, rule.description)
			}
		}
	}
	return true, ""
}

// GetConflictingMods returns every existing modifier that blocks the candidate,
// each listed once even when several rules object to it
func (s *service) GetConflictingMods(candidate *domain.Modifier, existing []domain.ItemModifier, category string) []domain.ItemModifier {
	blocked := make([]bool, len(existing))
	for ri := range s.rules {
		rule := &s.rules[ri]
		if !rule.appliesTo(category, candidate.Type) {
			continue
		}
		idx := rule.matchIndexes(candidateTexts(candidate)...)
		if len(idx) == 0 {
			continue
		}
		for ei := range existing {
			if !blocked[ei] && rule.conflicts(idx, &existing[ei]) {
				blocked[ei] = true
			}
		}
	}

	var out []domain.ItemModifier
	for ei, b := range blocked {
		if b {
			out = append(out, existing[ei])
		}
	}
	return out
}

// FilterAvailableMods keeps the candidates CanAddMod accepts, in input order.
// A candidate appearing more than once is returned once.
func (s *service) FilterAvailableMods(candidates []*domain.Modifier, existing []domain.ItemModifier, category string) []*domain.Modifier {
	seen := make(map[string]bool, len(candidates))
	out := make([]*domain.Modifier, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		if ok, _ := s.CanAddMod(c, existing, category); ok {
			out = append(out, c)
		}
	}
	return out
}

// RuleCount returns the number of compiled rules
func (s *service) RuleCount() int {
	return len(s.rules)
}
