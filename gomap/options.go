package gomap

import "github.com/SamuelMarks/serde-json-extensions/parse"

// Option controls the conversion between Go values and value trees.
type Option func(*mapConfig)

type mapConfig struct {
	arbitraryPrecision bool
	rawValues          bool
}

func newMapConfig(opts ...Option) *mapConfig {
	cfg := &mapConfig{
		arbitraryPrecision: true,
		rawValues:          true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ArbitraryPrecision controls the !number sentinel and the exact-literal
// numeric domain. Enabled by default; disabled, numbers must fit the
// 64-bit domains and the sentinel key is an ordinary string.
func ArbitraryPrecision(v bool) Option {
	return func(c *mapConfig) { c.arbitraryPrecision = v }
}

// RawValues controls the !raw sentinel. Enabled by default.
func RawValues(v bool) Option {
	return func(c *mapConfig) { c.rawValues = v }
}

// parseOptions carries the capabilities through to re-parsing of raw
// payloads.
func (c *mapConfig) parseOptions() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ArbitraryPrecision(c.arbitraryPrecision),
		parse.RawValues(c.rawValues),
	}
}
