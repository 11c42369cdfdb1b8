package ir

// Reserved object keys. A single-key object using one of these keys is
// not a real object: it smuggles a payload the value shapes have no
// native syntax for.
const (
	// NumberToken carries an arbitrary-precision decimal numeral.
	NumberToken = "!number"
	// RawToken carries pre-encoded wire text to be re-parsed in place.
	RawToken = "!raw"
)

// RawNumber is a pre-formatted decimal numeral. Converting one produces
// a Number node in the extended numeric domain without precision loss.
type RawNumber string

// RawValue is pre-encoded wire text. Converting one re-parses the text
// into a value tree of the current shape; deserializing into one
// re-renders the source node back to wire text.
type RawValue string

// KeyClass is the classification of an object key observed during
// conversion of object-shaped input.
type KeyClass int

const (
	// KeyOrdinary is any key that is not a reserved token.
	KeyOrdinary KeyClass = iota
	// KeyNumber is the NumberToken sentinel.
	KeyNumber
	// KeyRaw is the RawToken sentinel.
	KeyRaw
)

// sentinelKeys is the single lookup table for reserved keys; rows are
// honored only when the matching capability is enabled.
var sentinelKeys = map[string]KeyClass{
	NumberToken: KeyNumber,
	RawToken:    KeyRaw,
}

// ClassifyKey classifies an object key. Classification cannot fail: a
// key that is not an enabled sentinel is ordinary and carried forward
// unchanged.
func ClassifyKey(s string, arbitraryPrecision, rawValues bool) KeyClass {
	switch c := sentinelKeys[s]; {
	case c == KeyNumber && arbitraryPrecision:
		return c
	case c == KeyRaw && rawValues:
		return c
	}
	return KeyOrdinary
}
