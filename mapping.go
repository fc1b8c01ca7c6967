package asn1der

import (
	"bytes"
	"unicode/utf8"
)

// state is the per-call decode state. It is never shared between calls.
type state struct {
	maxDepth int // < 0: unbounded
	depth    int
	depthHit bool
}

func newState(maxDepth int) *state { return &state{maxDepth: maxDepth} }

func (s *state) enter() error {
	if s.maxDepth >= 0 && s.depth >= s.maxDepth {
		s.depthHit = true
		return unsupported("nesting exceeds maximum depth of %d", s.maxDepth)
	}
	s.depth++
	return nil
}

func (s *state) leave() { s.depth-- }

// Mapping converts between Go values of type T and objects. Mappings are
// plain values; build them once and reuse them.
//
// Record fields, array elements and top-level values are all described by
// a Mapping, so no per-field encoding code is ever written by hand:
//
//	var userMapping = asn1der.RecordOf[User]()
//	b, err := asn1der.Encode(u, userMapping)
type Mapping[T any] struct {
	name     string
	enc      func(T) (Object, error)
	dec      func(*state, Object) (T, error)
	nullable bool
}

// MappingFunc builds a Mapping from an encode and a decode function.
func MappingFunc[T any](name string, enc func(T) (Object, error), dec func(Object) (T, error)) Mapping[T] {
	return Mapping[T]{
		name: name,
		enc:  enc,
		dec:  func(_ *state, o Object) (T, error) { return dec(o) },
	}
}

func (m Mapping[T]) Name() string { return m.name }

// Encode converts v into an object.
func (m Mapping[T]) Encode(v T) (Object, error) {
	if m.enc == nil {
		var zero T
		return Object{}, errorf(KindUnsupportedType, "no encode rule for %T", zero)
	}
	return m.enc(v)
}

// Decode converts o into a T with the default depth limit.
func (m Mapping[T]) Decode(o Object) (T, error) {
	return m.decode(newState(DefaultMaxDepth), o)
}

func (m Mapping[T]) decode(st *state, o Object) (T, error) {
	if m.dec == nil {
		var zero T
		return zero, errorf(KindUnsupportedType, "no decode rule for %T", zero)
	}
	return m.dec(st, o)
}

// Bool maps bool to BOOLEAN.
func Bool() Mapping[bool] {
	return Mapping[bool]{
		name: "bool",
		enc:  func(v bool) (Object, error) { return Boolean(v).Object(), nil },
		dec: func(_ *state, o Object) (bool, error) {
			b, err := BooleanFromObject(o)
			return bool(b), err
		},
	}
}

// Uint maps a native unsigned integer type to INTEGER.
func Uint[T Unsigned]() Mapping[T] {
	return Mapping[T]{
		name: "uint",
		enc:  func(v T) (Object, error) { return EncodeUnsigned(v).Object(), nil },
		dec: func(_ *state, o Object) (T, error) {
			i, err := IntegerFromObject(o)
			if err != nil {
				return 0, err
			}
			return DecodeUnsigned[T](i)
		},
	}
}

// BigInteger maps Integer itself, for values of any width and sign.
func BigInteger() Mapping[Integer] {
	return Mapping[Integer]{
		name: "integer",
		enc:  func(v Integer) (Object, error) { return v.Object(), nil },
		dec:  func(_ *state, o Object) (Integer, error) { return IntegerFromObject(o) },
	}
}

// String maps string to UTF8String. Strings that are not valid UTF-8 are
// rejected on encode so that every encoding decodes again.
func String() Mapping[string] {
	return Mapping[string]{
		name: "string",
		enc: func(v string) (Object, error) {
			if !utf8.ValidString(v) {
				return Object{}, invalid("string is not valid UTF-8")
			}
			return UTF8String(v).Object(), nil
		},
		dec: func(_ *state, o Object) (string, error) {
			s, err := UTF8StringFromObject(o)
			return string(s), err
		},
	}
}

// Bytes maps a byte slice to OCTET STRING. Decoded slices are copies.
func Bytes() Mapping[[]byte] {
	return Mapping[[]byte]{
		name: "bytes",
		enc:  func(v []byte) (Object, error) { return OctetString(v).Object(), nil },
		dec: func(_ *state, o Object) ([]byte, error) {
			s, err := OctetStringFromObject(o)
			if err != nil {
				return nil, err
			}
			return bytes.Clone([]byte(s)), nil
		},
	}
}

// Raw passes objects through untouched.
func Raw() Mapping[Object] {
	return Mapping[Object]{
		name: "raw",
		enc:  func(v Object) (Object, error) { return v, nil },
		dec:  func(_ *state, o Object) (Object, error) { return NewObject(o.tag, o.value), nil },
	}
}

// ValueOf maps the typed Value tree. A nil Value, at any depth, encodes
// as NULL. Strings that are not valid UTF-8 are rejected on encode.
func ValueOf() Mapping[Value] {
	return Mapping[Value]{
		name: "value",
		enc:  encodeValue,
		dec: parseValue,
	}
}

func encodeValue(v Value) (Object, error) {
	if v == nil {
		return Null{}.Object(), nil
	}
	if err := checkValue(v); err != nil {
		return Object{}, err
	}
	return v.Object(), nil
}
