package parse

type parseOpts struct {
	arbitraryPrecision bool
	rawValues          bool
}

func newParseOpts() *parseOpts {
	return &parseOpts{
		arbitraryPrecision: true,
		rawValues:          true,
	}
}

type ParseOption func(*parseOpts)

// ArbitraryPrecision controls whether the !number sentinel is honored
// and whether numerals beyond the 64-bit domains are kept as exact
// literals. Enabled by default; disabled, such numerals fail with
// ir.ErrNumberOutOfRange and the sentinel is an ordinary object key.
func ArbitraryPrecision(v bool) ParseOption {
	return func(o *parseOpts) { o.arbitraryPrecision = v }
}

// RawValues controls whether the !raw sentinel is honored. Enabled by
// default.
func RawValues(v bool) ParseOption {
	return func(o *parseOpts) { o.rawValues = v }
}
