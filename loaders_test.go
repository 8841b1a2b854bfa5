package moneyfmt

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRuleFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFileLoaderYAML(t *testing.T) {
	path := writeRuleFile(t, "de.yaml", `
de:
  thousands_separator: "."
  decimal_separator: ","
  thousandths_separator: "&nbsp;"
  currencies:
    EUR:
      suffix: "&nbsp;&euro;"
      ext_suffix: "&nbsp;&euro;"
      digits: 2
    JPY:
      suffix: "&nbsp;&yen;"
`)

	rules, err := NewFileLoader(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	de, ok := rules["de"]
	if !ok {
		t.Fatal("expected de rule")
	}
	if de.ThousandsSep != "." || de.DecimalSep != "," {
		t.Fatalf("de separators = %q %q", de.ThousandsSep, de.DecimalSep)
	}

	eur, ok := de.Currency("EUR")
	if !ok {
		t.Fatal("expected de EUR rule")
	}
	if eur.Suffix != "&nbsp;&euro;" || eur.Digits != 2 {
		t.Fatalf("de EUR = %+v", eur)
	}

	// digits omitted: defaulted from ISO 4217 cash rounding
	jpy, ok := de.Currency("JPY")
	if !ok {
		t.Fatal("expected de JPY rule")
	}
	if jpy.Digits != 0 {
		t.Fatalf("de JPY digits = %d, want ISO default 0", jpy.Digits)
	}
}

func TestFileLoaderJSON(t *testing.T) {
	path := writeRuleFile(t, "nl.json", `{
  "nl": {
    "thousands_separator": ".",
    "decimal_separator": ",",
    "thousandths_separator": "&nbsp;",
    "currencies": {
      "EUR": {"prefix": "&euro;&nbsp;", "digits": 2},
      "XYZ": {"prefix": "~"}
    }
  }
}`)

	rules, err := NewFileLoader(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	nl, ok := rules["nl"]
	if !ok {
		t.Fatal("expected nl rule")
	}

	// a code the ISO table does not know defaults to 2 digits
	xyz, ok := nl.Currency("XYZ")
	if !ok {
		t.Fatal("expected nl XYZ rule")
	}
	if xyz.Digits != 2 {
		t.Fatalf("nl XYZ digits = %d", xyz.Digits)
	}
}

func TestFileLoaderUnsupportedExtension(t *testing.T) {
	path := writeRuleFile(t, "rules.toml", "de = 1")

	if _, err := NewFileLoader(path).Load(); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestFileLoaderNoPaths(t *testing.T) {
	if _, err := NewFileLoader().Load(); err == nil {
		t.Fatal("expected error for empty loader")
	}
}

func TestFileLoaderApplyTo(t *testing.T) {
	path := writeRuleFile(t, "de.yml", `
de:
  thousands_separator: "."
  decimal_separator: ","
  thousandths_separator: "&nbsp;"
  currencies:
    EUR:
      suffix: "&nbsp;&euro;"
      digits: 2
`)

	registry := NewRegistry()
	if err := NewFileLoader(path).ApplyTo(registry); err != nil {
		t.Fatalf("apply: %v", err)
	}

	langs := registry.Languages()
	if len(langs) != 3 || langs[0] != "de" {
		t.Fatalf("languages after apply = %v", langs)
	}

	f := newTestFormatter(t, WithRegistry(registry))
	if got := f.Format(1234.5, "de", "EUR"); got != "1.234,50&nbsp;&euro;" {
		t.Fatalf("loaded rule formatting = %q", got)
	}
}

func TestWithRuleFilesOption(t *testing.T) {
	path := writeRuleFile(t, "de.yaml", `
de:
  thousands_separator: "."
  decimal_separator: ","
  thousandths_separator: "&nbsp;"
  currencies:
    EUR:
      suffix: "&nbsp;&euro;"
      digits: 2
`)

	f, err := New(WithDefaultLanguage("de"), WithRuleFiles(path))
	if err != nil {
		t.Fatalf("new formatter: %v", err)
	}

	if got := f.Format(1234.5, "", "EUR"); got != "1.234,50&nbsp;&euro;" {
		t.Fatalf("rule file option = %q", got)
	}
}

func TestWithRuleFilesMissingFile(t *testing.T) {
	if _, err := New(WithRuleFiles("does-not-exist.yaml")); err == nil {
		t.Fatal("expected error for missing rule file")
	}
}
