package ir

import (
	"errors"
)

var (
	// ErrParse wraps errors from the xml, yaml and json parsers.
	ErrParse = errors.New("parse error")
	// ErrStructure is returned when a document does not have the shape a
	// conversion requires, e.g. more than one root for xml.
	ErrStructure = errors.New("structural error")
	// ErrType is returned when a value of the wrong kind is found where a
	// scalar or key is required.
	ErrType = errors.New("type error")
	// ErrDepth is returned when a document nests deeper than allowed.
	ErrDepth = errors.New("max depth exceeded")
)

// DefaultMaxDepth bounds recursion of the converters unless overridden.
const DefaultMaxDepth = 10000
