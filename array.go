package asn1der

import "reflect"

// ArrayOf maps a slice. A slice of raw bytes, including named types whose
// underlying type is byte, becomes one OCTET STRING with the bytes
// concatenated, never a SEQUENCE of single-byte integers; elem is not
// consulted in that case. Every other element type becomes a SEQUENCE
// with one child per element.
func ArrayOf[T any](elem Mapping[T]) Mapping[[]T] {
	if reflect.TypeOf((*T)(nil)).Elem().Kind() == reflect.Uint8 {
		return octetArray[T]()
	}
	return Mapping[[]T]{
		name: "array of " + elem.name,
		enc: func(vs []T) (Object, error) {
			children := make([]Object, len(vs))
			for i, v := range vs {
				o, err := elem.Encode(v)
				if err != nil {
					return Object{}, indexed(i, err)
				}
				children[i] = o
			}
			return NewSequence(children...)
		},
		dec: func(st *state, o Object) ([]T, error) {
			if err := st.enter(); err != nil {
				return nil, err
			}
			defer st.leave()

			elems, err := ParseSequence(o)
			if err != nil {
				return nil, err
			}
			out := make([]T, 0, len(elems))
			cur := NewCursor(elems)
			for !cur.AtEnd() {
				v, err := decodeNext(cur, st, elem)
				if err != nil {
					return nil, indexed(cur.Pos(), err)
				}
				out = append(out, v)
			}
			return out, nil
		},
	}
}

// octetArray is ArrayOf for element types of kind uint8. reflect only
// moves the bytes; the element type is fixed when the mapping is built.
func octetArray[T any]() Mapping[[]T] {
	return Mapping[[]T]{
		name: "array of bytes",
		enc: func(vs []T) (Object, error) {
			return OctetString(reflect.ValueOf(vs).Bytes()).Object(), nil
		},
		dec: func(_ *state, o Object) ([]T, error) {
			s, err := OctetStringFromObject(o)
			if err != nil {
				return nil, err
			}
			out := make([]T, len(s))
			copy(reflect.ValueOf(out).Bytes(), s)
			return out, nil
		},
	}
}

func indexed(i int, err error) error {
	return wrapf(err, "element %d", i)
}

// OptionalOf maps *T: nil encodes as an explicit NULL so that positions
// of later fields are preserved. Inside a record or array, absence is
// detected by trying NULL first and falling back to elem on the same
// element.
//
// Nested optionals cannot be told apart: nil and a pointer to nil both
// encode as NULL.
func OptionalOf[T any](elem Mapping[T]) Mapping[*T] {
	return Mapping[*T]{
		name:     "optional " + elem.name,
		nullable: true,
		enc: func(p *T) (Object, error) {
			if p == nil {
				return Null{}.Object(), nil
			}
			return elem.Encode(*p)
		},
		dec: func(st *state, o Object) (*T, error) {
			cur := NewCursor([]Object{o})
			if cur.DecodeNull() {
				return nil, nil
			}
			v, err := elem.decode(st, o)
			if err != nil {
				return nil, err
			}
			return &v, nil
		},
	}
}
