package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMalformed is returned when the input is not a well formed document.
	ErrMalformed = errors.New("malformed document")
	// ErrNotObject is returned when the document root is not a key-value mapping.
	ErrNotObject = errors.New("document root is not an object")
	// ErrUnsupportedValue is returned for values that are neither strings, lists of strings nor objects.
	ErrUnsupportedValue = errors.New("unsupported value")
)

// ParseJSON decodes a JSON object into a Tree, preserving key order.
func ParseJSON(data []byte) (*Tree, error) {
	t := New()
	if err := t.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return t, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tree) UnmarshalJSON(data []byte) error {
	if !json.Valid(data) {
		return ErrMalformed
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return ErrNotObject
	}

	parsed, err := decodeObject(dec, "")
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}

func decodeObject(dec *json.Decoder, path string) (*Tree, error) {
	t := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected key at %q", ErrMalformed, path)
		}

		n, err := decodeValue(dec, join(path, key))
		if err != nil {
			return nil, err
		}
		t.Set(key, n)
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return t, nil
}

func decodeValue(dec *json.Decoder, path string) (Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	switch v := tok.(type) {
	case string:
		return Text(v), nil
	case json.Delim:
		switch v {
		case '{':
			return decodeObject(dec, path)
		case '[':
			lines := []string{}
			for dec.More() {
				tok, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
				}
				line, ok := tok.(string)
				if !ok {
					return nil, fmt.Errorf("%w: non-string line at %q", ErrUnsupportedValue, path)
				}
				lines = append(lines, line)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			return Lines(lines...), nil
		}
	}
	return nil, fmt.Errorf("%w: %v at %q", ErrUnsupportedValue, tok, path)
}

// MarshalJSON implements json.Marshaler. Keys are written in tree order.
func (t *Tree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeObject(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (l Leaf) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeLeaf(&buf, l); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeObject(buf *bytes.Buffer, t *Tree) error {
	buf.WriteByte('{')
	for i, k := range t.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(buf, k); err != nil {
			return err
		}
		buf.WriteByte(':')

		n, _ := t.Get(k)
		switch v := n.(type) {
		case Leaf:
			if err := writeLeaf(buf, v); err != nil {
				return err
			}
		case *Tree:
			if err := writeObject(buf, v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %T at %q", ErrUnsupportedValue, n, k)
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeLeaf(buf *bytes.Buffer, l Leaf) error {
	if !l.IsMultiline() {
		return writeString(buf, l.Text())
	}
	buf.WriteByte('[')
	for i, line := range l.Lines() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(buf, line); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

// EncodeJSON encodes v as pretty printed JSON with four space indentation,
// without escaping HTML characters, and with a trailing newline.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
