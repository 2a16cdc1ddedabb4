// Package token provides the scalar level helpers shared by the converters.
//
// [ParseInt], [ParseFloat] and [ParseBool] are fallible parses used for
// scalar type inference; each reports whether it recognized its input so
// callers can try them in a fixed order.
//
// [IsXMLName] checks element and attribute names, and [PosDoc] maps byte
// offsets of an input document to lines and columns for error reporting.
package token
