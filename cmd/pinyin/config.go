package main

import (
	"strings"

	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// Configuration keys. Values may be set in a NestedText file located by
// schuko (e.g. ~/.config/pinyin/config.nt) and are overridden by flags.
const (
	keyDictionary = "pinyin.dictionary"
	keyFormat     = "pinyin.format"
	keyPatterns   = "pinyin.patterns"
	keyForm       = "pinyin.form"
	keyNFC        = "pinyin.nfc"
	keyAdapter    = "tracing.adapter"
	keyTraceLevel = "tracelevel.pinyin"
)

// tracer writes to trace with key 'pinyin'
func tracer() tracing.Trace {
	return tracing.Select("pinyin")
}

// options collects the command line flags shared by all sub-commands.
type options struct {
	dictionary string
	format     string
	patterns   string
	traceLevel string
	adapter    string
	nfc        bool
}

// setupConfig loads the configuration and lets non-empty flags override
// configured values.
func setupConfig(opts options) *koanfadapter.KConf {
	conf := koanfadapter.New(nil, "pinyin", []string{"nt"})
	conf.InitDefaults()
	conf.Set(keyAdapter, "logrus")
	override := map[string]string{
		keyDictionary: opts.dictionary,
		keyFormat:     opts.format,
		keyPatterns:   opts.patterns,
		keyTraceLevel: opts.traceLevel,
		keyAdapter:    opts.adapter,
	}
	for key, value := range override {
		if value = strings.TrimSpace(value); value != "" {
			conf.Set(key, value)
		}
	}
	if opts.nfc {
		conf.Set(keyNFC, true)
	}
	if !conf.IsSet(keyFormat) {
		conf.Set(keyFormat, "sequential")
	}
	if !conf.IsSet(keyTraceLevel) {
		conf.Set(keyTraceLevel, "Error")
	}
	return conf
}

// setupTracing installs the trace adapter named in conf. It returns a
// teardown function.
func setupTracing(conf *koanfadapter.KConf) (func(), error) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("logrus", logrusadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return func() {}, err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("tracing with %s at level %s", conf.GetString(keyAdapter), conf.GetString(keyTraceLevel))
	return trace2go.Teardown, nil
}
