package asn1der

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/unkn0wn-root/asn1der/internal/wire"
)

// NoLimit disables the size guard of ParseObject.
const NoLimit = math.MaxInt

// Object is an untyped tag/value pair. The value is never interpreted here.
//
// Objects are immutable: constructors copy their input, and the slice
// returned by Value must not be modified.
type Object struct {
	tag   Tag
	value []byte
}

// NewObject returns an object holding a copy of value.
func NewObject(tag Tag, value []byte) Object {
	return Object{tag: tag, value: bytes.Clone(value)}
}

// object builds an Object that takes ownership of value.
func object(tag Tag, value []byte) Object {
	return Object{tag: tag, value: value}
}

func (o Object) Tag() Tag       { return o.tag }
func (o Object) Value() []byte  { return o.value }
func (o Object) Len() int       { return len(o.value) }
func (o Object) String() string { return fmt.Sprintf("%s:%d", o.tag, len(o.value)) }

// Equal reports whether o and p have the same tag and value bytes.
func (o Object) Equal(p Object) bool {
	return o.tag == p.tag && bytes.Equal(o.value, p.value)
}

// EncodedLen is the size of the full encoding of o.
func (o Object) EncodedLen() int {
	return 1 + wire.LengthSize(len(o.value)) + len(o.value)
}

// Header describes the tag and length field of an object.
type Header struct {
	Tag Tag
	// Length is the declared value length.
	Length int
	// Size is the number of bytes taken by tag and length field.
	Size int
}

// Total is the declared size of the full encoding, or false on overflow.
func (h Header) Total() (int, bool) {
	return wire.Sum(h.Size, h.Length)
}

// DecodeHeader reads the tag and length field at the front of b without
// touching the value bytes.
func DecodeHeader(b []byte) (Header, error) {
	return readHeader(wire.NewReader(b))
}

func readHeader(r *wire.Reader) (Header, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return Header{}, fromWire("cannot read tag", err)
	}
	n, size, err := r.ReadLength()
	if err != nil {
		return Header{}, fromWire("cannot read length", err)
	}
	return Header{Tag: Tag(tag), Length: n, Size: 1 + size}, nil
}

// ParseObject decodes one object from the front of b and returns it along
// with the unread rest of b. The full encoding must not exceed limit bytes.
// The returned value aliases b.
func ParseObject(b []byte, limit int) (Object, []byte, error) {
	r := wire.NewReader(b)
	o, err := readObject(r, limit)
	if err != nil {
		return Object{}, nil, err
	}
	return o, r.Rest(), nil
}

func readObject(r *wire.Reader, limit int) (Object, error) {
	h, err := readHeader(r)
	if err != nil {
		return Object{}, err
	}
	total, ok := h.Total()
	if !ok {
		return Object{}, fromWire("object size", wire.ErrOverflow)
	}
	if total > limit {
		// the bytes may be perfectly valid, just larger than allowed
		return Object{}, errorf(KindLimitExceeded, "object of %d bytes exceeds limit of %d", total, limit)
	}
	value, err := r.ReadN(h.Length)
	if err != nil {
		return Object{}, invalid("value truncated: expected %d bytes, got %d", h.Length, r.Remaining())
	}
	return object(h.Tag, value), nil
}

// DecodeObject decodes a single object that must span all of b.
func DecodeObject(b []byte) (Object, error) {
	o, rest, err := ParseObject(b, NoLimit)
	if err != nil {
		return Object{}, err
	}
	if len(rest) != 0 {
		return Object{}, errorf(KindTrailingData, "%d trailing bytes after object", len(rest))
	}
	return o, nil
}

// AppendTo appends the encoding of o to dst.
func (o Object) AppendTo(dst []byte) ([]byte, error) {
	dst = append(dst, byte(o.tag))
	dst, err := wire.AppendLength(dst, len(o.value))
	if err != nil {
		return dst, fromWire("cannot encode length", err)
	}
	return append(dst, o.value...), nil
}

// Encode returns the encoding of o.
func (o Object) Encode() []byte {
	// lengths of in-memory slices are never negative
	b, _ := o.AppendTo(make([]byte, 0, o.EncodedLen()))
	return b
}

// WriteTo writes the encoding of o to w.
func (o Object) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(o.Encode())
	return int64(n), err
}
