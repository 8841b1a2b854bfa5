package moneyfmt

// CurrencyRule describes how a single currency is rendered for one
// language. Prefix/Suffix wrap the compact form, ExtPrefix/ExtSuffix the
// extended (disambiguated) form. Digits is the canonical number of
// fractional digits for the currency in that language.
//
// Symbols are stored as literal strings, HTML named entities included
// (`&euro;`, `&nbsp;`, ...). They are emitted verbatim, never interpreted.
type CurrencyRule struct {
	Prefix    string `json:"prefix" yaml:"prefix"`
	Suffix    string `json:"suffix" yaml:"suffix"`
	ExtPrefix string `json:"ext_prefix" yaml:"ext_prefix"`
	ExtSuffix string `json:"ext_suffix" yaml:"ext_suffix"`
	Digits    int    `json:"digits" yaml:"digits"`
}

// LocaleRule describes the grouping/decimal punctuation of a language and
// the currencies it knows how to render.
type LocaleRule struct {
	// ThousandsSep groups the integer part in runs of three from the right.
	ThousandsSep string `json:"thousands_separator" yaml:"thousands_separator"`
	// DecimalSep separates the integer and fractional parts.
	DecimalSep string `json:"decimal_separator" yaml:"decimal_separator"`
	// ThousandthsSep groups fractional parts longer than five digits in
	// runs of three from the left.
	ThousandthsSep string `json:"thousandths_separator" yaml:"thousandths_separator"`

	Currencies map[string]CurrencyRule `json:"currencies" yaml:"currencies"`
}

// Clone returns a deep copy of the rule.
func (r LocaleRule) Clone() LocaleRule {
	out := r
	if len(r.Currencies) == 0 {
		out.Currencies = make(map[string]CurrencyRule)
		return out
	}

	out.Currencies = make(map[string]CurrencyRule, len(r.Currencies))
	for code, rule := range r.Currencies {
		out.Currencies[code] = rule
	}
	return out
}

// Currency returns the rule for a 3-letter currency code and ok=false if
// the language does not carry it.
func (r LocaleRule) Currency(code string) (CurrencyRule, bool) {
	if r.Currencies == nil {
		return CurrencyRule{}, false
	}
	rule, ok := r.Currencies[code]
	return rule, ok
}
