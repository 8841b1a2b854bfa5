package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	moneyfmt "github.com/goliatone/go-moneyfmt"
)

func (a *App) RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moneyfmt",
		Short: "format numbers as locale aware currency strings",
	}

	cmd.PersistentFlags().StringSliceVarP(&a.rules, "rules", "r", nil, "extra locale rule files (yaml or json)")
	cmd.PersistentFlags().StringVarP(&a.lang, "lang", "l", "", "language code (default: host environment)")

	cmd.AddCommand(a.FormatCmd())
	cmd.AddCommand(a.LanguagesCmd())

	return cmd
}

func (a *App) Formatter() (*moneyfmt.Formatter, error) {
	var opts []moneyfmt.Option

	if len(a.rules) > 0 {
		opts = append(opts, moneyfmt.WithRuleFiles(a.rules...))
	}

	if a.lang != "" {
		opts = append(opts, moneyfmt.WithDefaultLanguage(a.lang))
	}

	return moneyfmt.New(opts...)
}

func (a *App) FormatCmd() *cobra.Command {
	var (
		currency string
		digits   int
		extended bool
		plain    bool
	)

	cmd := &cobra.Command{
		Use:   "format",
		Short: "format one or more numeric values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.Formatter()
			if err != nil {
				return err
			}

			for _, arg := range args {
				value, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("not a number: %q", arg)
				}

				var out string
				if currency != "" {
					out = f.FormatCurrency("", value, currency, extended)
				} else {
					out = f.FormatNumber("", value, digits)
				}

				if plain {
					out = moneyfmt.PlainText(out)
				}

				fmt.Println(out)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&currency, "currency", "c", "", "3-letter currency code")
	cmd.Flags().IntVarP(&digits, "digits", "d", -1, "fractional digits (-1 keeps the natural precision)")
	cmd.Flags().BoolVarP(&extended, "extended", "x", false, "use the extended currency form")
	cmd.Flags().BoolVarP(&plain, "plain", "p", false, "decode HTML entities in the output")

	return cmd
}

func (a *App) LanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "list registered languages and their currencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.Formatter()
			if err != nil {
				return err
			}

			registry := f.Registry()
			for _, lang := range registry.Languages() {
				rule, ok := registry.Rule(lang)
				if !ok {
					continue
				}

				codes := make([]string, 0, len(rule.Currencies))
				for code := range rule.Currencies {
					codes = append(codes, code)
				}
				sort.Strings(codes)

				fmt.Printf("%s: %s\n", lang, strings.Join(codes, " "))
			}

			return nil
		},
	}
}
