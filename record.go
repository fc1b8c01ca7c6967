package asn1der

import "fmt"

// Record is implemented by structured types that map onto a SEQUENCE. The
// same DERFields method drives both directions: it lists every field, in
// declaration order, through Field.
//
//	type Inner struct {
//		Number uint8
//		Flag   *bool
//	}
//
//	func (r *Inner) DERFields(f *asn1der.FieldSet) {
//		asn1der.Field(f, "number", &r.Number, asn1der.Uint[uint8]())
//		asn1der.Field(f, "flag", &r.Flag, asn1der.OptionalOf(asn1der.Bool()))
//	}
//
// The encoding carries no field names: position is the only identity, so
// reordering fields changes the wire format.
type Record interface {
	DERFields(f *FieldSet)
}

// FieldSet visits the fields of one record. While encoding it collects one
// object per field; while decoding it hands out one sequence element per
// field. The first error sticks and turns every later call into a no-op.
//
// Decoded values are held back and only written into the record once every
// field has decoded, so a failed decode leaves the record untouched.
type FieldSet struct {
	decoding bool
	st       *state
	out      []Object
	cur      *Cursor
	assign   []func()
	err      error
}

// Decoding reports whether the visit fills the record from an encoding.
func (f *FieldSet) Decoding() bool { return f.decoding }

// Err returns the first error of the visit.
func (f *FieldSet) Err() error { return f.err }

// Fail records err for the named field unless an error is already set.
// DERFields implementations use it to report validation failures.
func (f *FieldSet) Fail(name string, err error) {
	if f.err == nil && err != nil {
		f.err = fmt.Errorf("field %q: %w", name, err)
	}
}

// Field encodes or decodes the field *p with m. Every field produces or
// consumes exactly one element, including absent optionals.
func Field[T any](f *FieldSet, name string, p *T, m Mapping[T]) {
	if f.err != nil {
		return
	}
	if !f.decoding {
		o, err := m.Encode(*p)
		if err != nil {
			f.Fail(name, err)
			return
		}
		f.out = append(f.out, o)
		return
	}
	v, err := decodeNext(f.cur, f.st, m)
	if err != nil {
		f.Fail(name, err)
		return
	}
	f.assign = append(f.assign, func() { *p = v })
}

// RecordOf maps a Record type to a SEQUENCE of its fields.
//
// Decoding is strict about arity: elements left after the last field are
// rejected as InvalidEncoding. An encoding produced by a newer version of
// the type with fields appended therefore does not decode into an older
// one.
func RecordOf[T any, P interface {
	*T
	Record
}]() Mapping[T] {
	return Mapping[T]{
		name: "record",
		enc:  func(v T) (Object, error) { return encodeRecord(P(&v)) },
		dec: func(st *state, o Object) (T, error) {
			var v T
			if err := decodeRecord(st, o, P(&v)); err != nil {
				var zero T
				return zero, err
			}
			return v, nil
		},
	}
}

func encodeRecord(r Record) (Object, error) {
	f := &FieldSet{}
	r.DERFields(f)
	if f.err != nil {
		return Object{}, f.err
	}
	return NewSequence(f.out...)
}

// decodeRecord fills r from o. Nothing is written into r unless the whole
// record decodes.
func decodeRecord(st *state, o Object, r Record) error {
	if err := st.enter(); err != nil {
		return err
	}
	defer st.leave()

	elems, err := ParseSequence(o)
	if err != nil {
		return err
	}
	f := &FieldSet{decoding: true, st: st, cur: NewCursor(elems)}
	r.DERFields(f)
	if f.err != nil {
		return f.err
	}
	if n := f.cur.Remaining(); n != 0 {
		return invalid("record has %d unexpected trailing elements", n)
	}
	for _, set := range f.assign {
		set()
	}
	return nil
}
