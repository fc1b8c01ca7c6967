package asn1der

import (
	"bytes"
	"testing"
)

func TestBoolean(t *testing.T) {
	for _, tt := range []struct {
		b    []byte
		want bool
	}{
		{[]byte{1, 1, 0}, false},
		{[]byte{1, 1, 255}, true},
	} {
		v, err := BooleanFromObject(mustDecodeObject(t, tt.b))
		if err != nil || bool(v) != tt.want {
			t.Fatalf("%x: got %v err=%v", tt.b, v, err)
		}
		if got := v.Object().Encode(); !bytes.Equal(got, tt.b) {
			t.Fatalf("re-encode %x, want %x", got, tt.b)
		}
	}
}

func TestLeafRejects(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
		dec  func(Object) error
	}{
		{"bool wrong tag", []byte{2, 1, 0}, func(o Object) error { _, err := BooleanFromObject(o); return err }},
		{"bool byte 0x01", []byte{1, 1, 1}, func(o Object) error { _, err := BooleanFromObject(o); return err }},
		{"bool two bytes", []byte{1, 2, 0, 0}, func(o Object) error { _, err := BooleanFromObject(o); return err }},
		{"bool empty", []byte{1, 0}, func(o Object) error { _, err := BooleanFromObject(o); return err }},
		{"null wrong tag", []byte{6, 0}, func(o Object) error { _, err := NullFromObject(o); return err }},
		{"null not empty", []byte{5, 1, 0}, func(o Object) error { _, err := NullFromObject(o); return err }},
		{"octet string wrong tag", []byte{3, 1, 0}, func(o Object) error { _, err := OctetStringFromObject(o); return err }},
		{"utf8 wrong tag", []byte{13, 0}, func(o Object) error { _, err := UTF8StringFromObject(o); return err }},
		{"utf8 invalid", []byte{12, 4, 240, 40, 140, 40}, func(o Object) error { _, err := UTF8StringFromObject(o); return err }},
	}
	for _, tt := range tests {
		err := tt.dec(mustDecodeObject(t, tt.b))
		if KindOf(err) != KindInvalidEncoding {
			t.Fatalf("%s: expected invalid encoding, got %v", tt.name, err)
		}
	}
}

func TestTruncatedLeaves(t *testing.T) {
	for _, b := range [][]byte{
		{1, 2, 0},
		{2, 2, 128},
		{5, 2, 0},
		{4, 1},
		{12, 2, 84},
	} {
		_, err := DecodeObject(b)
		wantKind(t, err, KindInvalidEncoding)
	}
}

func TestOctetStringAndUTF8(t *testing.T) {
	s, err := OctetStringFromObject(mustDecodeObject(t, []byte{4, 2, 55, 228}))
	if err != nil || !bytes.Equal(s, []byte{55, 228}) {
		t.Fatalf("octet string: %x err=%v", s, err)
	}

	tests := []struct {
		b    []byte
		want string
	}{
		{[]byte{12, 0}, ""},
		{[]byte{12, 9, 84, 101, 115, 116, 111, 108, 111, 112, 101}, "Testolope"},
		{[]byte{12, 25, 83, 111, 109, 101, 32, 85, 84, 70, 45, 56, 32, 69, 109, 111, 106, 105, 32, 240, 159, 150, 150, 240, 159, 143, 189}, "Some UTF-8 Emoji 🖖🏽"},
	}
	for _, tt := range tests {
		u, err := UTF8StringFromObject(mustDecodeObject(t, tt.b))
		if err != nil || string(u) != tt.want {
			t.Fatalf("%x: got %q err=%v", tt.b, u, err)
		}
		if got := u.Object().Encode(); !bytes.Equal(got, tt.b) {
			t.Fatalf("re-encode %x, want %x", got, tt.b)
		}
	}
}
