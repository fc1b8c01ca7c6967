package asn1der

import (
	"bytes"
	"math/big"
	"testing"
)

type intVector struct {
	name  string
	b     []byte
	uint  *uint64
	int   *int64
	value []byte
}

func u64(v uint64) *uint64 { return &v }
func i64(v int64) *int64   { return &v }

var intVectors = []intVector{
	{"0", []byte{2, 1, 0}, u64(0), i64(0), []byte{0}},
	{"7", []byte{2, 1, 7}, u64(7), i64(7), []byte{7}},
	{"128", []byte{2, 2, 0, 128}, u64(128), i64(128), []byte{0, 128}},
	{"255", []byte{2, 2, 0, 255}, u64(255), i64(255), []byte{0, 255}},
	{"32759", []byte{2, 2, 127, 247}, u64(32759), i64(32759), []byte{127, 247}},
	{"32933", []byte{2, 3, 0, 128, 165}, u64(32933), i64(32933), []byte{0, 128, 165}},
	{"65535", []byte{2, 3, 0, 255, 255}, u64(65535), i64(65535), []byte{0, 255, 255}},
	{"2146947863", []byte{2, 4, 127, 247, 211, 23}, u64(2146947863), i64(2146947863), []byte{127, 247, 211, 23}},
	{"2158316671", []byte{2, 5, 0, 128, 165, 76, 127}, u64(2158316671), i64(2158316671), []byte{0, 128, 165, 76, 127}},
	{"4294967295", []byte{2, 5, 0, 255, 255, 255, 255}, u64(4294967295), i64(4294967295), []byte{0, 255, 255, 255, 255}},
	{"9221070861274031910", []byte{2, 8, 127, 247, 211, 23, 206, 241, 167, 38}, u64(9221070861274031910), i64(9221070861274031910), []byte{127, 247, 211, 23, 206, 241, 167, 38}},
	{"9269899520199460000", []byte{2, 9, 0, 128, 165, 76, 127, 229, 13, 132, 160}, u64(9269899520199460000), nil, []byte{0, 128, 165, 76, 127, 229, 13, 132, 160}},
	{"2^64-1", []byte{2, 9, 0, 255, 255, 255, 255, 255, 255, 255, 255}, u64(18446744073709551615), nil, []byte{0, 255, 255, 255, 255, 255, 255, 255, 255}},
	{"16 bytes", []byte{2, 16, 127, 200, 163, 165, 50, 73, 204, 242, 115, 179, 233, 77, 225, 182, 51, 97}, nil, nil, []byte{127, 200, 163, 165, 50, 73, 204, 242, 115, 179, 233, 77, 225, 182, 51, 97}},
	{"17 bytes", []byte{2, 17, 0, 128, 200, 163, 165, 50, 73, 204, 242, 115, 179, 233, 77, 225, 182, 51, 97}, nil, nil, []byte{0, 128, 200, 163, 165, 50, 73, 204, 242, 115, 179, 233, 77, 225, 182, 51, 97}},
	{"2^128-1", []byte{2, 17, 0, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255}, nil, nil, []byte{0, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255}},
}

func checkWidth[T Unsigned](t *testing.T, name string, i Integer, want uint64, bits uint) {
	t.Helper()
	got, err := DecodeUnsigned[T](i)
	fits := bits == 64 || want < 1<<bits
	if !fits {
		wantKind(t, err, KindUnsupported)
		return
	}
	if err != nil || uint64(got) != want {
		t.Fatalf("%s as %d-bit: got %d err=%v", name, bits, got, err)
	}
}

func TestIntegerVectors(t *testing.T) {
	for _, tt := range intVectors {
		i, err := IntegerFromObject(mustDecodeObject(t, tt.b))
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if !bytes.Equal(i.Raw(), tt.value) {
			t.Fatalf("%s: raw=%x, want %x", tt.name, i.Raw(), tt.value)
		}
		if got := i.Object().Encode(); !bytes.Equal(got, tt.b) {
			t.Fatalf("%s: re-encode %x, want %x", tt.name, got, tt.b)
		}
		if i.IsNegative() {
			t.Fatalf("%s: unexpectedly negative", tt.name)
		}

		if tt.uint != nil {
			checkWidth[uint8](t, tt.name, i, *tt.uint, 8)
			checkWidth[uint16](t, tt.name, i, *tt.uint, 16)
			checkWidth[uint32](t, tt.name, i, *tt.uint, 32)
			checkWidth[uint64](t, tt.name, i, *tt.uint, 64)

			if enc := EncodeUnsigned(*tt.uint).Object().Encode(); !bytes.Equal(enc, tt.b) {
				t.Fatalf("%s: EncodeUnsigned=%x, want %x", tt.name, enc, tt.b)
			}
			if i.Big().Uint64() != *tt.uint {
				t.Fatalf("%s: Big=%s", tt.name, i.Big())
			}
		} else {
			_, err := i.Uint64()
			wantKind(t, err, KindUnsupported)
		}

		if tt.int != nil {
			n, err := i.Int64()
			if err != nil || n != *tt.int {
				t.Fatalf("%s: Int64=%d err=%v", tt.name, n, err)
			}
			if enc := NewIntegerFromInt64(*tt.int).Object().Encode(); !bytes.Equal(enc, tt.b) {
				t.Fatalf("%s: NewIntegerFromInt64=%x, want %x", tt.name, enc, tt.b)
			}
		}

		if enc := NewIntegerFromBig(i.Big()).Object().Encode(); !bytes.Equal(enc, tt.b) {
			t.Fatalf("%s: NewIntegerFromBig=%x, want %x", tt.name, enc, tt.b)
		}
	}
}

func TestIntegerRejects(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
	}{
		{"wrong tag", []byte{3, 1, 7}},
		{"empty", []byte{2, 0}},
		{"two leading zeroes", []byte{2, 2, 0, 0}},
		{"padded 127", []byte{2, 2, 0, 127}},
		{"padded -1", []byte{2, 2, 255, 255}},
	}
	for _, tt := range tests {
		_, err := IntegerFromObject(mustDecodeObject(t, tt.b))
		if KindOf(err) != KindInvalidEncoding {
			t.Fatalf("%s: expected invalid encoding, got %v", tt.name, err)
		}
	}
}

func TestNegativeIntegers(t *testing.T) {
	tests := []struct {
		v   int64
		raw []byte
	}{
		{-1, []byte{0xff}},
		{-128, []byte{0x80}},
		{-129, []byte{0xff, 0x7f}},
		{-256, []byte{0xff, 0x00}},
		{-9223372036854775808, []byte{0x80, 0, 0, 0, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		i := NewIntegerFromInt64(tt.v)
		if !bytes.Equal(i.Raw(), tt.raw) {
			t.Fatalf("%d: raw=%x, want %x", tt.v, i.Raw(), tt.raw)
		}
		if !i.IsNegative() {
			t.Fatalf("%d: not negative", tt.v)
		}
		if b := NewIntegerFromBig(big.NewInt(tt.v)); !b.Equal(i) {
			t.Fatalf("%d: big raw=%x", tt.v, b.Raw())
		}
		if got := i.Big().Int64(); got != tt.v {
			t.Fatalf("%d: Big=%d", tt.v, got)
		}
		back, err := IntegerFromObject(i.Object())
		if err != nil {
			t.Fatalf("%d: not canonical: %v", tt.v, err)
		}
		if n, _ := back.Int64(); n != tt.v {
			t.Fatalf("%d: Int64=%d", tt.v, n)
		}
		_, err = DecodeUnsigned[uint64](back)
		wantKind(t, err, KindUnsupported)
	}
}

func TestNewInteger(t *testing.T) {
	tests := []struct {
		mag []byte
		raw []byte
	}{
		{nil, []byte{0}},
		{[]byte{0, 0, 0}, []byte{0}},
		{[]byte{0, 0x7f}, []byte{0x7f}},
		{[]byte{0x80}, []byte{0, 0x80}},
		{[]byte{0, 0, 0xff, 1}, []byte{0, 0xff, 1}},
	}
	for _, tt := range tests {
		if got := NewInteger(tt.mag, false).Raw(); !bytes.Equal(got, tt.raw) {
			t.Fatalf("NewInteger(%x)=%x, want %x", tt.mag, got, tt.raw)
		}
	}
	if got := (Integer{}).Object().Encode(); !bytes.Equal(got, []byte{2, 1, 0}) {
		t.Fatalf("zero Integer encodes as %x", got)
	}
}
