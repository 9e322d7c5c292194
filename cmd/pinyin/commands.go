package main

import (
	"bufio"
	"fmt"
	"slices"
	"strings"

	"github.com/npillmayer/pinyin"
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var form string
	cmd := &cobra.Command{
		Use:   "convert [text...]",
		Short: "Convert text to pinyin, one output line per argument or input line",
		RunE: func(cmd *cobra.Command, args []string) error {
			if form == "" {
				form = a.conf.GetString(keyForm)
			}
			if form == "" {
				form = pinyin.NumberedTone.String()
			}
			f, err := pinyin.ParseForm(form)
			if err != nil {
				return err
			}
			c, _, err := a.converter()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				for _, text := range args {
					a.printf("%s\n", c.Convert(text, f))
				}
				return nil
			}
			scanner := bufio.NewScanner(a.in)
			for scanner.Scan() {
				a.printf("%s\n", c.Convert(scanner.Text(), f))
			}
			return scanner.Err()
		},
	}
	cmd.Flags().StringVarP(&form, "form", "f", "", "output form: numbered|marked|plain")
	return cmd
}

func newLookupCmd(a *app) *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "lookup <text>",
		Short: "List the readings of every character",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, table, err := a.converter()
			if err != nil {
				return err
			}
			for _, token := range c.Tokens(strings.Join(args, "")) {
				readings, _ := table.Lookup(token.Rune)
				a.printf("%c\t%s", token.Rune, strings.Join(readings, ","))
				if explain {
					a.printf("\t%s", explainToken(token))
				}
				a.printf("\n")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&explain, "explain", "x", false, "show the selected reading and its source")
	return cmd
}

func explainToken(token pinyin.Token) string {
	switch {
	case token.Source == pinyin.FromNone:
		return "-"
	case token.Word != "":
		return fmt.Sprintf("%s (%s: %s)", token.Syllable, token.Source, token.Word)
	}
	return fmt.Sprintf("%s (%s)", token.Syllable, token.Source)
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <prefix>",
		Short: "List syllables starting with prefix and their characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.loadTable()
			if err != nil {
				return err
			}
			index := pinyin.NewIndex(table)
			prefix := strings.ToLower(args[0])
			syllables := index.Search(prefix)
			if len(syllables) == 0 {
				return fmt.Errorf("no syllables starting with %q", prefix)
			}
			for _, s := range syllables {
				a.printf("%s\t%s\t%s\n", s, pinyin.MarkTone(s), string(index.Characters(s)))
			}
			return nil
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load table and patterns and report statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, reg, err := a.load()
			if err != nil {
				return err
			}
			stats := table.Stats()
			a.printf("%s: entries=%d syllables=%d width=%d pages=%d\n", table.Identifier,
				stats.Entries, stats.Syllables, stats.Width, stats.Pages)
			a.printf("%s: resolvers=%d\n", reg.Identifier, reg.Len())
			for _, w := range unknownReadings(table, reg) {
				a.printf("warning: %s\n", w)
			}
			return nil
		},
	}
}

// unknownReadings lists resolver readings not found in the table entry of
// their character.
func unknownReadings(table *pinyin.Table, reg *pinyin.Registry) []string {
	var warnings []string
	for _, r := range reg.Runes() {
		res, _ := reg.Resolver(r)
		readings, ok := table.Lookup(r)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%c has a resolver but no table entry", r))
			continue
		}
		for _, s := range append([]string{res.Default()}, res.Candidates()...) {
			if !slices.Contains(readings, s) {
				warnings = append(warnings, fmt.Sprintf("%c: reading %s not in table", r, s))
			}
		}
	}
	return warnings
}
