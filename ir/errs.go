package ir

import "errors"

var (
	// ErrInvalidType reports a shape mismatch, typically an object or
	// array appearing where the target shape forbids one.
	ErrInvalidType = errors.New("invalid type")

	// ErrNumberOutOfRange reports a numeric value that does not fit the
	// representable domain without the arbitrary-precision capability.
	ErrNumberOutOfRange = errors.New("number out of range")

	// ErrInvalidNumber reports a malformed payload under NumberToken.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrKeyMustBeAString reports a map key of a compound kind.
	ErrKeyMustBeAString = errors.New("key must be a string")

	// ErrFloatKeyMustBeFinite reports a NaN or infinite float map key.
	ErrFloatKeyMustBeFinite = errors.New("float key must be finite")

	// ErrExpectedSomeValue reports a non-string payload under RawToken.
	ErrExpectedSomeValue = errors.New("expected some value")
)
