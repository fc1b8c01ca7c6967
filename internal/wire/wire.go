package wire

import (
	"errors"
	"math"
	"math/bits"
)

const (
	longFormBit   byte = 0x80
	maxShortForm       = 0x7F
	intByteWidth       = bits.UintSize / 8
	maxIntAsUint64     = uint64(math.MaxInt)
)

var (
	ErrTruncated        = errors.New("truncated input")
	ErrZeroLength       = errors.New("zero-sized complex length")
	ErrNonMinimalLength = errors.New("simple length encoded as complex length")
	ErrLeadingZero      = errors.New("complex length has leading zero byte")
	ErrLengthTooLarge   = errors.New("length does not fit into int")
	ErrOverflow         = errors.New("size computation overflows int")
	ErrNegativeLength   = errors.New("negative length")
)

// Reader is a bounds-checked cursor over a byte slice. Slices returned by
// Reader alias the underlying buffer.
type Reader struct {
	b   []byte
	off int
}

func NewReader(b []byte) *Reader { return &Reader{b: b} }

func (r *Reader) Offset() int    { return r.off }
func (r *Reader) Remaining() int { return len(r.b) - r.off }
func (r *Reader) Rest() []byte   { return r.b[r.off:] }

func (r *Reader) ReadByte() (byte, error) {
	if r.off >= len(r.b) {
		return 0, ErrTruncated
	}
	c := r.b[r.off]
	r.off++
	return c, nil
}

// ReadN returns the next n bytes without copying.
func (r *Reader) ReadN(n int) ([]byte, error) {
	if n < 0 || n > len(r.b)-r.off { // overflow-safe bound check
		return nil, ErrTruncated
	}
	p := r.b[r.off : r.off+n]
	r.off += n
	return p, nil
}

// ReadLength decodes one canonical length field and returns the length
// together with the number of bytes the field occupied.
//
// Short form: 0xxxxxxx. Long form: 1kkkkkkk followed by k big-endian bytes,
// k >= 1, no leading zero byte and a value of at least 128.
func (r *Reader) ReadLength() (n, size int, err error) {
	first, err := r.ReadByte()
	if err != nil {
		return 0, 0, err
	}
	if first&longFormBit == 0 {
		return int(first), 1, nil
	}

	k := int(first &^ longFormBit)
	if k == 0 {
		return 0, 0, ErrZeroLength
	}
	// truncation is reported before width so that a short buffer always
	// reads as malformed input
	mag, err := r.ReadN(k)
	if err != nil {
		return 0, 0, err
	}
	if k > intByteWidth {
		return 0, 0, ErrLengthTooLarge
	}
	if mag[0] == 0 {
		// a leading zero is either a value < 128 (k == 1) or a wasted byte
		if k == 1 {
			return 0, 0, ErrNonMinimalLength
		}
		return 0, 0, ErrLeadingZero
	}

	u := Uint64(mag)
	if u > maxIntAsUint64 {
		return 0, 0, ErrLengthTooLarge
	}
	if u <= maxShortForm {
		return 0, 0, ErrNonMinimalLength
	}
	return int(u), 1 + k, nil
}

// AppendLength appends the canonical length field for n.
func AppendLength(dst []byte, n int) ([]byte, error) {
	if n < 0 {
		return dst, ErrNegativeLength
	}
	if n <= maxShortForm {
		return append(dst, byte(n)), nil
	}
	mag := BigEndian(uint64(n))
	dst = append(dst, longFormBit|byte(len(mag)))
	return append(dst, mag...), nil
}

// LengthSize is the number of bytes AppendLength writes for n.
func LengthSize(n int) int {
	if n <= maxShortForm {
		return 1
	}
	return 1 + len(BigEndian(uint64(n)))
}

// Sum adds ns and reports false if the result does not fit into int.
func Sum(ns ...int) (int, bool) {
	sum := 0
	for _, n := range ns {
		if n < 0 || n > math.MaxInt-sum {
			return 0, false
		}
		sum += n
	}
	return sum, true
}

// BigEndian returns the big-endian bytes of u with leading zero bytes
// stripped. Zero yields an empty slice.
func BigEndian(u uint64) []byte {
	n := (bits.Len64(u) + 7) / 8
	out := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(u)
		u >>= 8
	}
	return out
}

// Uint64 interprets up to eight big-endian bytes. Callers check the width.
func Uint64(b []byte) uint64 {
	var u uint64
	for _, c := range b {
		u = u<<8 | uint64(c)
	}
	return u
}

// TrimLeadingZeros drops leading 0x00 bytes.
func TrimLeadingZeros(b []byte) []byte {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	return b
}
