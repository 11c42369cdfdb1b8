package parse

import "errors"

// ErrParse reports malformed wire text. Well formed text denoting a
// value outside the representable domain fails with the ir sentinel
// errors instead.
var ErrParse = errors.New("parse error")
