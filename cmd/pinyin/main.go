/*
Command pinyin transcribes Chinese text to pinyin.

	pinyin convert --form marked 我的目的地
	echo 好逸恶劳 | pinyin convert
	pinyin lookup --explain 人参观
	pinyin search zhong
	pinyin check --dict chars.csv --patterns polyphones.txt
	pinyin convert --nfc < text.txt

Without --dict the character table of go-pinyin is used, without
--patterns the polyphone patterns bundled with package bundled. Input is
converted as given; --nfc (or configuration key pinyin.nfc) NFC-normalizes it
first, mapping compatibility ideographs to unified ones.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/pinyin"
	"github.com/npillmayer/pinyin/bundled"
	"github.com/npillmayer/pinyin/csvdict"
	"github.com/npillmayer/pinyin/gopinyin"
	"github.com/npillmayer/pinyin/polyphone"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries state shared between the root command and its sub-commands.
type app struct {
	opts     options
	conf     *koanfadapter.KConf
	teardown func()
	in       io.Reader
	out      io.Writer
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{in: in, out: out, teardown: func() {}}
	root := &cobra.Command{
		Use:           "pinyin",
		Short:         "Transcribe Chinese text to pinyin",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.conf = setupConfig(a.opts)
			teardown, err := setupTracing(a.conf)
			a.teardown = teardown
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)
	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.dictionary, "dict", "", "character table file (default: go-pinyin data)")
	flags.StringVar(&a.opts.format, "dict-format", "", "layout of the character table: sequential|keyed")
	flags.StringVar(&a.opts.patterns, "patterns", "", "polyphone pattern file (default: bundled patterns)")
	flags.StringVar(&a.opts.traceLevel, "trace", "", "trace level: Debug|Info|Error")
	flags.StringVar(&a.opts.adapter, "trace-adapter", "", "trace adapter: logrus|go")
	flags.BoolVar(&a.opts.nfc, "nfc", false, "NFC-normalize input before conversion")
	root.AddCommand(
		newConvertCmd(a),
		newLookupCmd(a),
		newSearchCmd(a),
		newCheckCmd(a),
	)
	return root
}

// loadTable loads the configured character table.
func (a *app) loadTable() (*pinyin.Table, error) {
	path := a.conf.GetString(keyDictionary)
	if path == "" {
		return gopinyin.Load()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return csvdict.Load(path, a.conf.GetString(keyFormat), f)
}

// loadRegistry loads the configured polyphone patterns.
func (a *app) loadRegistry() (*pinyin.Registry, error) {
	path := a.conf.GetString(keyPatterns)
	if path == "" {
		return bundled.LoadRegistry()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return polyphone.LoadRegistry(path, f)
}

func (a *app) load() (*pinyin.Table, *pinyin.Registry, error) {
	table, err := a.loadTable()
	if err != nil {
		tracer().Errorf("loading table: %v", err)
		return nil, nil, err
	}
	reg, err := a.loadRegistry()
	if err != nil {
		tracer().Errorf("loading patterns: %v", err)
		return nil, nil, err
	}
	return table, reg, nil
}

func (a *app) converter() (*pinyin.Converter, *pinyin.Table, error) {
	table, reg, err := a.load()
	if err != nil {
		return nil, nil, err
	}
	var opts []pinyin.Option
	if a.conf.GetBool(keyNFC) {
		opts = append(opts, pinyin.WithNormalization(norm.NFC))
	}
	return pinyin.NewConverter(table, reg, opts...), table, nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
