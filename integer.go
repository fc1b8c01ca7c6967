package asn1der

import (
	"bytes"
	"math/big"
	"math/bits"

	"github.com/unkn0wn-root/asn1der/internal/wire"
)

// Unsigned is the set of native integer types the integer codec decodes into.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a two's-complement big-endian integer in its minimal form.
type Integer struct {
	raw []byte
}

// NewInteger builds the canonical integer for the given big-endian
// magnitude. A leading 0x00 is added when a non-negative value would
// otherwise read as negative; an empty or all-zero magnitude is zero.
func NewInteger(magnitude []byte, negative bool) Integer {
	m := wire.TrimLeadingZeros(magnitude)
	switch {
	case len(m) == 0:
		return Integer{raw: []byte{0x00}}
	case m[0]&0x80 != 0 && !negative:
		raw := make([]byte, 0, len(m)+1)
		return Integer{raw: append(append(raw, 0x00), m...)}
	default:
		return Integer{raw: bytes.Clone(m)}
	}
}

// NewIntegerFromUint64 returns the canonical encoding of u.
func NewIntegerFromUint64(u uint64) Integer {
	return NewInteger(wire.BigEndian(u), false)
}

// NewIntegerFromInt64 returns the canonical encoding of i.
func NewIntegerFromInt64(i int64) Integer {
	if i >= 0 {
		return NewIntegerFromUint64(uint64(i))
	}
	var b [8]byte
	u := uint64(i)
	for j := 7; j >= 0; j-- {
		b[j] = byte(u)
		u >>= 8
	}
	return Integer{raw: trimSignExtension(b[:])}
}

// NewIntegerFromBig returns the canonical encoding of x.
func NewIntegerFromBig(x *big.Int) Integer {
	if x.Sign() >= 0 {
		return NewInteger(x.Bytes(), false)
	}
	// two's complement of |x| over enough bytes to hold the sign bit
	n := new(big.Int).Neg(x)
	n.Sub(n, big.NewInt(1))
	mag := n.Bytes()
	raw := make([]byte, len(mag)+1)
	for i := range raw {
		raw[i] = 0xFF
	}
	for i, c := range mag {
		raw[i+1] = ^c
	}
	return Integer{raw: trimSignExtension(raw)}
}

func trimSignExtension(b []byte) []byte {
	for len(b) > 1 && b[0] == 0xFF && b[1]&0x80 != 0 {
		b = b[1:]
	}
	return bytes.Clone(b)
}

// IntegerFromObject validates o as an INTEGER. Empty values and redundant
// leading 0x00 or 0xFF bytes are rejected.
func IntegerFromObject(o Object) (Integer, error) {
	if err := expectTag(o, TagInteger); err != nil {
		return Integer{}, err
	}
	v := o.value
	switch {
	case len(v) == 0:
		return Integer{}, invalid("integer has no value bytes")
	case len(v) > 1 && v[0] == 0x00 && v[1]&0x80 == 0:
		return Integer{}, invalid("integer has redundant leading 0x00")
	case len(v) > 1 && v[0] == 0xFF && v[1]&0x80 != 0:
		return Integer{}, invalid("integer has redundant leading 0xff")
	}
	return Integer{raw: v}, nil
}

// Object returns the INTEGER object. The zero Integer encodes as 0.
func (i Integer) Object() Object {
	if len(i.raw) == 0 {
		return object(TagInteger, []byte{0x00})
	}
	return object(TagInteger, i.raw)
}

func (i Integer) Tag() Tag { return TagInteger }

// Raw returns the minimal two's-complement bytes.
func (i Integer) Raw() []byte { return i.raw }

func (i Integer) IsNegative() bool { return len(i.raw) > 0 && i.raw[0]&0x80 != 0 }

// Magnitude returns the raw bytes without leading zero bytes. For negative
// numbers this is still the two's-complement form; use IsNegative.
func (i Integer) Magnitude() []byte { return wire.TrimLeadingZeros(i.raw) }

func (i Integer) Equal(j Integer) bool { return bytes.Equal(i.raw, j.raw) }

// Uint64 returns i as an unsigned 64-bit value.
func (i Integer) Uint64() (uint64, error) {
	return DecodeUnsigned[uint64](i)
}

// Int64 returns i as a signed 64-bit value.
func (i Integer) Int64() (int64, error) {
	if len(i.raw) > 8 {
		return 0, unsupported("integer does not fit into int64")
	}
	var u uint64
	if i.IsNegative() {
		u = ^uint64(0)
	}
	for _, c := range i.raw {
		u = u<<8 | uint64(c)
	}
	return int64(u), nil
}

// Big returns i as an arbitrary-precision integer.
func (i Integer) Big() *big.Int {
	x := new(big.Int).SetBytes(i.raw)
	if i.IsNegative() {
		x.Sub(x, new(big.Int).Lsh(big.NewInt(1), uint(8*len(i.raw))))
	}
	return x
}

// EncodeUnsigned returns the canonical INTEGER for v.
func EncodeUnsigned[T Unsigned](v T) Integer {
	return NewIntegerFromUint64(uint64(v))
}

// DecodeUnsigned interprets i as the unsigned type T. Negative values and
// values wider than T are unsupported.
func DecodeUnsigned[T Unsigned](i Integer) (T, error) {
	if i.IsNegative() {
		return 0, unsupported("integer is negative")
	}
	m := i.Magnitude()
	var zero T
	width := bits.Len64(uint64(^zero)) / 8
	if len(m) > width {
		return 0, unsupported("target type too small: %d bytes needed, %d available", len(m), width)
	}
	return T(wire.Uint64(m)), nil
}
