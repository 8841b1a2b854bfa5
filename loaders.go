package moneyfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

// FileLoader reads locale rule definitions from YAML or JSON files, keyed
// by language code:
//
//	de:
//	  thousands_separator: "."
//	  decimal_separator: ","
//	  thousandths_separator: "&nbsp;"
//	  currencies:
//	    EUR:
//	      suffix: "&nbsp;&euro;"
//	      ext_suffix: "&nbsp;&euro;"
//	      digits: 2
//
// A currency entry may omit digits; the loader then defaults it from ISO
// 4217 cash rounding data.
type FileLoader struct {
	paths []string
}

// NewFileLoader builds a loader over the given file paths. Files are read
// in order and later files overwrite languages defined by earlier ones.
func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

type currencyRuleFile struct {
	Prefix    string `json:"prefix" yaml:"prefix"`
	Suffix    string `json:"suffix" yaml:"suffix"`
	ExtPrefix string `json:"ext_prefix" yaml:"ext_prefix"`
	ExtSuffix string `json:"ext_suffix" yaml:"ext_suffix"`
	Digits    *int   `json:"digits" yaml:"digits"`
}

type localeRuleFile struct {
	ThousandsSep   string                      `json:"thousands_separator" yaml:"thousands_separator"`
	DecimalSep     string                      `json:"decimal_separator" yaml:"decimal_separator"`
	ThousandthsSep string                      `json:"thousandths_separator" yaml:"thousandths_separator"`
	Currencies     map[string]currencyRuleFile `json:"currencies" yaml:"currencies"`
}

// Load reads all configured files and returns the merged language rules.
func (l *FileLoader) Load() (map[string]LocaleRule, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("moneyfmt: no loader paths configured")
	}

	merged := make(map[string]LocaleRule)

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("moneyfmt: read %s: %w", path, err)
		}

		src, err := decodeRuleFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("moneyfmt: decode %s: %w", path, err)
		}

		for lang, raw := range src {
			if lang == "" {
				return nil, fmt.Errorf("moneyfmt: empty language code in %s", path)
			}
			merged[lang] = raw.rule()
		}
	}

	return merged, nil
}

// ApplyTo loads the configured files and registers every language into r.
func (l *FileLoader) ApplyTo(r *Registry) error {
	rules, err := l.Load()
	if err != nil {
		return err
	}

	for lang, rule := range rules {
		r.Register(lang, rule)
	}
	return nil
}

func decodeRuleFile(path string, data []byte) (map[string]localeRuleFile, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var out map[string]localeRuleFile
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	return out, nil
}

func (raw localeRuleFile) rule() LocaleRule {
	rule := LocaleRule{
		ThousandsSep:   raw.ThousandsSep,
		DecimalSep:     raw.DecimalSep,
		ThousandthsSep: raw.ThousandthsSep,
		Currencies:     make(map[string]CurrencyRule, len(raw.Currencies)),
	}

	for code, cur := range raw.Currencies {
		rule.Currencies[code] = CurrencyRule{
			Prefix:    cur.Prefix,
			Suffix:    cur.Suffix,
			ExtPrefix: cur.ExtPrefix,
			ExtSuffix: cur.ExtSuffix,
			Digits:    cur.digitCount(code),
		}
	}
	return rule
}

// digitCount resolves an omitted digits field from ISO 4217 cash rounding
// data, defaulting to 2 for codes the ISO table does not know.
func (raw currencyRuleFile) digitCount(code string) int {
	if raw.Digits != nil {
		return *raw.Digits
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return 2
	}

	scale, _ := currency.Cash.Rounding(unit) // fractional digits
	return scale
}
