package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/signadot/tony-format/xy/token"
)

// MarshalJSON encodes y as a plain json value, keeping object keys in
// order.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, y, "$"); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, y *Node, path string) error {
	switch y.Type {
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, f.String); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, y.Values[i], FieldPath(path, f.String)); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v, IndexPath(path, i)); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case StringType:
		return writeJSONString(buf, y.String)
	case NumberType:
		switch {
		case y.Int64 != nil:
			buf.WriteString(token.FormatInt(*y.Int64))
		case y.Float64 != nil:
			f := *y.Float64
			if math.IsInf(f, 0) || math.IsNaN(f) {
				return fmt.Errorf("%w: %s: %s has no json form", ErrType, path, token.FormatFloat(f))
			}
			buf.WriteString(token.FormatFloat(f))
		default:
			return fmt.Errorf("%w: %s: number without value", ErrType, path)
		}
	case BoolType:
		buf.WriteString(token.FormatBool(y.Bool))
	case NullType:
		buf.WriteString("null")
	default:
		return fmt.Errorf("%w: %s: unknown type %s", ErrType, path, y.Type)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}

// UnmarshalJSON decodes a plain json value into y, keeping object keys in
// document order and integers distinct from floats.
func (y *Node) UnmarshalJSON(d []byte) error {
	n, err := FromJSON(d)
	if err != nil {
		return err
	}
	*y = *n
	for _, f := range y.Fields {
		f.Parent = y
	}
	for _, v := range y.Values {
		v.Parent = y
	}
	return nil
}

// FromJSON decodes a single json document. A leading utf-8 byte order
// mark is skipped.
func FromJSON(d []byte) (*Node, error) {
	d = bytes.TrimPrefix(d, []byte("\xef\xbb\xbf"))
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := readJSON(dec, "$", 0)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, fmt.Errorf("%w: trailing data after json value at offset %d", ErrParse, dec.InputOffset())
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}

func readJSON(dec *json.Decoder, path string, depth int) (*Node, error) {
	if depth > DefaultMaxDepth {
		return nil, fmt.Errorf("%w: %s", ErrDepth, path)
	}
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			return readJSONObject(dec, path, depth)
		case '[':
			return readJSONArray(dec, path, depth)
		default:
			return nil, fmt.Errorf("%w: unexpected %s at offset %d", ErrParse, x, dec.InputOffset())
		}
	case json.Number:
		return jsonNumber(x, path)
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
	}
}

func readJSONObject(dec *json.Decoder, path string, depth int) (*Node, error) {
	kvs := []KeyVal{}
	seen := map[string]bool{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected object key, got %v", ErrParse, tok)
		}
		if seen[key] {
			return nil, fmt.Errorf("%w: %s: duplicate key %q", ErrStructure, path, key)
		}
		seen[key] = true
		val, err := readJSON(dec, FieldPath(path, key), depth+1)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, KV(key, val))
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromKeyVals(kvs), nil
}

func readJSONArray(dec *json.Decoder, path string, depth int) (*Node, error) {
	vals := []*Node{}
	for dec.More() {
		val, err := readJSON(dec, IndexPath(path, len(vals)), depth+1)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromSlice(vals), nil
}

func jsonNumber(n json.Number, path string) (*Node, error) {
	if i, err := n.Int64(); err == nil {
		return FromInt(i), nil
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: number %s: %w", ErrParse, path, n, err)
	}
	return FromFloat(f), nil
}
