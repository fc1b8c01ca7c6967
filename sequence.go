package asn1der

import (
	"github.com/unkn0wn-root/asn1der/internal/wire"
)

// Iterator walks the children of a SEQUENCE one object at a time. Each
// child is decoded with the remaining value bytes as its limit, so a child
// can never claim bytes outside its parent.
//
//	it := obj.Elements()
//	for it.Next() {
//		child := it.Object()
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type Iterator struct {
	r   *wire.Reader
	cur Object
	err error
}

// Elements returns an iterator over the children of o. A tag other than
// SEQUENCE is reported by Err.
func (o Object) Elements() *Iterator {
	it := &Iterator{r: wire.NewReader(o.value)}
	if err := expectTag(o, TagSequence); err != nil {
		it.err = err
	}
	return it
}

func (it *Iterator) Next() bool {
	if it.err != nil || it.r.Remaining() == 0 {
		return false
	}
	off := it.r.Offset()
	child, err := readObject(it.r, it.r.Remaining())
	if err != nil {
		// any failure inside a sequence, including a child that claims more
		// than is left, is malformed input
		it.err = invalid("sequence element at offset %d: %s", off, trimPrefix(err))
		return false
	}
	it.cur = child
	return true
}

func (it *Iterator) Object() Object { return it.cur }
func (it *Iterator) Err() error     { return it.err }

func trimPrefix(err error) string {
	if e, ok := err.(*Error); ok && e.Msg != "" {
		return e.Msg
	}
	return err.Error()
}

// ParseSequence decodes all children of a SEQUENCE object. The value bytes
// must be consumed exactly.
func ParseSequence(o Object) ([]Object, error) {
	var out []Object
	it := o.Elements()
	for it.Next() {
		out = append(out, it.Object())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// NewSequence concatenates the encodings of children into a SEQUENCE.
func NewSequence(children ...Object) (Object, error) {
	size := 0
	for _, c := range children {
		s, ok := wire.Sum(size, c.EncodedLen())
		if !ok {
			return Object{}, fromWire("sequence size", wire.ErrOverflow)
		}
		size = s
	}
	value := make([]byte, 0, size)
	for _, c := range children {
		var err error
		if value, err = c.AppendTo(value); err != nil {
			return Object{}, err
		}
	}
	return object(TagSequence, value), nil
}
