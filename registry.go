package moneyfmt

import (
	"sort"
	"sync"
)

// Registry maps 2-letter language codes to their LocaleRule. It is
// read-mostly: the expected lifecycle is registration during program
// initialization followed by concurrent formatting reads, but every
// operation is safe to call at any time.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]LocaleRule
}

// NewRegistry returns a registry seeded with the builtin languages.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for lang, rule := range builtinLocaleRules {
		r.Register(lang, rule)
	}
	return r
}

// NewEmptyRegistry returns a registry with no languages at all. Formatting
// against one still works: lookups fall back to the builtin en rule.
func NewEmptyRegistry() *Registry {
	return &Registry{rules: make(map[string]LocaleRule)}
}

// Register adds or overwrites the rule for a language code. The rule is
// stored as given; no field validation is performed, so a rule with empty
// separators will produce ungrouped output rather than an error.
func (r *Registry) Register(lang string, rule LocaleRule) {
	if lang == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rules == nil {
		r.rules = make(map[string]LocaleRule)
	}
	r.rules[lang] = rule.Clone()
}

// RegisterCurrency adds or overwrites a currency under an existing
// language. Registering against a language the registry has no entry for
// returns ErrUnknownLocale.
func (r *Registry) RegisterCurrency(lang, code string, rule CurrencyRule) error {
	if lang == "" || code == "" {
		return ErrUnknownLocale
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rules[lang]
	if !ok {
		return ErrUnknownLocale
	}

	// stored rules are never mutated in place so concurrent readers can
	// hold them without a lock
	updated := existing.Clone()
	updated.Currencies[code] = rule
	r.rules[lang] = updated

	return nil
}

// Rule returns a copy of the rule for a language code. Mutating the result
// does not affect the registry.
func (r *Registry) Rule(lang string) (LocaleRule, bool) {
	r.mu.RLock()
	rule, ok := r.rules[lang]
	r.mu.RUnlock()

	if !ok {
		return LocaleRule{}, false
	}
	return rule.Clone(), true
}

// Languages returns a sorted slice with all registered language codes.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.rules) == 0 {
		return nil
	}

	out := make([]string, 0, len(r.rules))
	for lang := range r.rules {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// resolve returns the rule for a normalized language code, substituting the
// hardcoded fallback for unknown codes. The returned rule shares the
// registry's currency map and must not be mutated; the formatting path only
// reads it.
func (r *Registry) resolve(lang string) LocaleRule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rule, ok := r.rules[lang]; ok {
		return rule
	}
	if rule, ok := r.rules[fallbackLanguage]; ok {
		return rule
	}
	return builtinLocaleRules[fallbackLanguage]
}
