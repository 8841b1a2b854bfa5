package moneyfmt

import (
	"html"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Formatter renders numeric values against a Registry. It is a pure
// computation per call; the only state is the registry reference and the
// ambient preferred language captured at construction.
type Formatter struct {
	registry *Registry
	lang     string
}

// Registry returns the registry backing the formatter, for registration of
// additional languages or currencies.
func (f *Formatter) Registry() *Registry {
	return f.registry
}

// Format renders value according to the optional positional arguments:
//
//	Format(v)                          ambient language, natural precision
//	Format(v, "fr")                    explicit language
//	Format(v, "fr", 2)                 explicit fractional digit count
//	Format(v, "fr", "2")               same; integer-parseable strings are
//	                                   never treated as currency codes
//	Format(v, "fr", "EUR")             compact currency form
//	Format(v, "fr", "EUR", true)       extended currency form
//
// Unknown language codes fall back to en. Unknown currency codes skip the
// currency wrapping and keep the natural precision. Formatting never fails;
// malformed selectors degrade to the plain number.
func (f *Formatter) Format(value float64, args ...any) string {
	var (
		lang     string
		selector any
		extended bool
	)
	if len(args) > 0 {
		lang, _ = args[0].(string)
	}
	if len(args) > 1 {
		selector = args[1]
	}
	if len(args) > 2 {
		extended, _ = args[2].(bool)
	}

	if lang == "" {
		lang = f.lang
	}
	rule := f.registry.resolve(normalizeLanguage(lang))

	digits := -1
	var cur CurrencyRule
	haveCurrency := false

	switch sel := selector.(type) {
	case nil:
	case int:
		digits = sel
	case string:
		sel = strings.TrimSpace(sel)
		if n, err := strconv.Atoi(sel); err == nil {
			digits = n
		} else if found, ok := rule.Currency(strings.ToUpper(sel)); ok {
			cur = found
			haveCurrency = true
			digits = found.Digits
		}
	}

	out := renderLocalized(rule, value, digits)

	if haveCurrency {
		if extended {
			return cur.ExtPrefix + out + cur.ExtSuffix
		}
		return cur.Prefix + out + cur.Suffix
	}
	return out
}

// FormatNumber renders value with an explicit fractional digit count.
// A negative count keeps the natural precision.
func (f *Formatter) FormatNumber(lang string, value float64, digits int) string {
	return f.Format(value, lang, digits)
}

// FormatCurrency renders value as a currency amount. An unknown code
// renders the bare number.
func (f *Formatter) FormatCurrency(lang string, value float64, code string, extended bool) string {
	return f.Format(value, lang, code, extended)
}

// renderLocalized produces the grouped numeric string, sign attached to the
// integer part.
func renderLocalized(rule LocaleRule, value float64, digits int) string {
	s := renderFixed(value, digits)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, frac, hasFrac := strings.Cut(s, ".")
	out := groupThousands(intPart, rule.ThousandsSep)
	if hasFrac {
		out += rule.DecimalSep + groupFraction(frac, rule.ThousandthsSep)
	}

	if neg {
		out = "-" + out
	}
	return out
}

// normalizeLanguage reduces a language selector to a 2-letter lowercase
// code: "EN-US" and "en_US" both become "en". Well formed tags go through
// the language parser; anything it rejects is sliced directly.
func normalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return ""
	}

	if tag, err := language.Parse(lang); err == nil {
		if base, conf := tag.Base(); conf > language.No {
			lang = base.String()
		}
	}

	if len(lang) > 2 {
		lang = lang[:2]
	}
	return strings.ToLower(lang)
}

// PlainText decodes the HTML named entities of a formatted string for
// non-HTML sinks: "&nbsp;" becomes a non-breaking space, "&euro;" the euro
// sign, and so on.
func PlainText(s string) string {
	return html.UnescapeString(s)
}

var (
	defaultOnce      sync.Once
	defaultFormatter *Formatter
)

// Default returns the shared formatter: builtin registry, host environment
// language. Library-level registration goes through its registry before
// concurrent formatting begins.
func Default() *Formatter {
	defaultOnce.Do(func() {
		defaultFormatter, _ = New()
	})
	return defaultFormatter
}

// Format renders value with the shared formatter. See Formatter.Format for
// the argument forms.
func Format(value float64, args ...any) string {
	return Default().Format(value, args...)
}

// Register adds or overwrites a language rule on the shared registry.
func Register(lang string, rule LocaleRule) {
	Default().Registry().Register(lang, rule)
}

// RegisterCurrency adds or overwrites a currency on the shared registry.
func RegisterCurrency(lang, code string, rule CurrencyRule) error {
	return Default().Registry().RegisterCurrency(lang, code, rule)
}
