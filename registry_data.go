package moneyfmt

// builtinLocaleRules contains the hardcoded separator and currency data for
// the languages we ship by default. Additional languages are added through
// Registry.Register or a FileLoader, never by editing this map at runtime.
var builtinLocaleRules = map[string]LocaleRule{
	"en": {
		ThousandsSep:   ",",
		DecimalSep:     ".",
		ThousandthsSep: "&nbsp;",
		Currencies: map[string]CurrencyRule{
			"AUD": {Prefix: "$", ExtPrefix: "A$", Digits: 2},
			"CAD": {Prefix: "$", ExtPrefix: "C$", Digits: 2},
			"CHF": {Digits: 2},
			"EUR": {Prefix: "&euro;", ExtPrefix: "&euro;", Digits: 2},
			"GBP": {Prefix: "&pound;", ExtPrefix: "&pound;", Digits: 2},
			"JPY": {Prefix: "&yen;", ExtPrefix: "&yen;", Digits: 0},
			"MXN": {Prefix: "$", ExtPrefix: "Mex$", Digits: 2},
			"NZD": {Prefix: "$", ExtPrefix: "NZ$", Digits: 2},
			"USD": {Prefix: "$", ExtPrefix: "US$", Digits: 2},
		},
	},
	"fr": {
		ThousandsSep:   "&nbsp;",
		DecimalSep:     ",",
		ThousandthsSep: "&nbsp;",
		Currencies: map[string]CurrencyRule{
			"AUD": {Suffix: "&nbsp;$", ExtSuffix: "&nbsp;$A", Digits: 2},
			"CAD": {Suffix: "&nbsp;$", ExtSuffix: "&nbsp;$CAN", Digits: 2},
			"CHF": {Digits: 2},
			"EUR": {Suffix: "&nbsp;&euro;", ExtSuffix: "&nbsp;&euro;", Digits: 2},
			"GBP": {Suffix: "&nbsp;&pound;", ExtSuffix: "&nbsp;&pound;", Digits: 2},
			"JPY": {Suffix: "&nbsp;&yen;", ExtSuffix: "&nbsp;&yen;", Digits: 0},
			"MXN": {Suffix: "&nbsp;$", ExtSuffix: "&nbsp;$Mex", Digits: 2},
			"NZD": {Suffix: "&nbsp;$", ExtSuffix: "&nbsp;$NZ", Digits: 2},
			"USD": {Suffix: "&nbsp;$", ExtSuffix: "&nbsp;$US", Digits: 2},
		},
	},
}

// fallbackLanguage is substituted for every language code the registry does
// not know. Not configurable.
const fallbackLanguage = "en"
