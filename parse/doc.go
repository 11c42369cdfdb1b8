// Package parse reads JSON wire text into value trees.
//
// The value domain has no objects, so object syntax fails, with two
// exceptions: a single-key object under the !number key carries an
// exact decimal numeral, and one under the !raw key carries wire text
// re-parsed in place. Both are capability gated through ParseOption
// values and enabled by default.
package parse
