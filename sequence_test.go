package asn1der

import (
	"bytes"
	"testing"
)

func TestSequenceVectors(t *testing.T) {
	long := append([]byte{114, 51, 14, 141}, bytes.Repeat([]byte{0x5a}, 124)...)
	second := append([]byte{4, 129, 128}, long...)
	body := append([]byte{4, 2, 55, 228}, second...)
	withTwo := append([]byte{48, 129, 135}, body...)

	tests := []struct {
		name     string
		b        []byte
		children [][]byte
	}{
		{"empty", []byte{48, 0}, nil},
		{"one octet string", []byte{48, 4, 4, 2, 55, 228}, [][]byte{{4, 2, 55, 228}}},
		{"two octet strings", withTwo, [][]byte{{4, 2, 55, 228}, second}},
	}
	for _, tt := range tests {
		o := mustDecodeObject(t, tt.b)
		elems, err := ParseSequence(o)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if len(elems) != len(tt.children) {
			t.Fatalf("%s: %d children, want %d", tt.name, len(elems), len(tt.children))
		}
		for i, c := range elems {
			if !bytes.Equal(c.Encode(), tt.children[i]) {
				t.Fatalf("%s: child %d = %x", tt.name, i, c.Encode())
			}
		}
		rebuilt, err := NewSequence(elems...)
		if err != nil {
			t.Fatalf("%s: NewSequence: %v", tt.name, err)
		}
		if !bytes.Equal(rebuilt.Encode(), tt.b) {
			t.Fatalf("%s: rebuilt %x", tt.name, rebuilt.Encode())
		}
	}
}

func TestSequenceRejects(t *testing.T) {
	// wrong tag
	if _, err := ParseSequence(mustDecodeObject(t, []byte{49, 0})); KindOf(err) != KindInvalidEncoding {
		t.Fatalf("wrong tag: %v", err)
	}
	// truncated child inside a complete parent
	_, err := ParseSequence(mustDecodeObject(t, []byte{48, 3, 2, 2, 128}))
	wantKind(t, err, KindInvalidEncoding)

	// truncated parent
	_, err = DecodeObject([]byte{48, 5, 4, 2, 55, 228})
	wantKind(t, err, KindInvalidEncoding)

	// a child claiming more than the parent holds is malformed, never a limit error
	_, err = ParseSequence(object(TagSequence, []byte{4, 0x84, 0x7f, 0xff, 0xff, 0xff}))
	wantKind(t, err, KindInvalidEncoding)
}

func TestIteratorStopsOnError(t *testing.T) {
	it := object(TagSequence, []byte{5, 0, 1, 1, 0, 2}).Elements()
	n := 0
	for it.Next() {
		n++
	}
	if n != 2 {
		t.Fatalf("iterated %d children, want 2", n)
	}
	wantKind(t, it.Err(), KindInvalidEncoding)
}

func TestValueRoundTrip(t *testing.T) {
	v := Sequence{
		Boolean(true),
		NewIntegerFromInt64(-5),
		Null{},
		OctetString{1, 2, 3},
		UTF8String("ä"),
		Sequence{},
		Sequence{EncodeUnsigned(uint8(200))},
	}
	b := EncodeValue(v)
	got, err := DecodeValue(b)
	if err != nil {
		t.Fatalf("DecodeValue: %v", err)
	}
	if !EqualValues(v, got) {
		t.Fatalf("round trip changed value: %x vs %x", b, EncodeValue(got))
	}
	if !bytes.Equal(EncodeValue(got), b) {
		t.Fatalf("canonical round trip changed bytes")
	}
}

func TestValueRejectsUnknownTag(t *testing.T) {
	_, err := DecodeValue([]byte{48, 3, 0x13, 1, 'a'})
	wantKind(t, err, KindInvalidEncoding)
}

func TestValueDepthLimit(t *testing.T) {
	o := object(TagSequence, nil)
	for i := 1; i < DefaultMaxDepth; i++ {
		o, _ = NewSequence(o)
	}
	if _, err := ParseValue(o); err != nil {
		t.Fatalf("%d levels: %v", DefaultMaxDepth, err)
	}
	o, _ = NewSequence(o)
	_, err := ParseValue(o)
	wantKind(t, err, KindUnsupported)
}

func TestValueNilChildEncodesAsNull(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want []byte
	}{
		{"nil", nil, []byte{0x05, 0x00}},
		{"nil child", Sequence{nil}, []byte{0x30, 0x02, 0x05, 0x00}},
		{"nested nil", Sequence{Boolean(true), Sequence{nil}}, []byte{0x30, 0x07, 0x01, 0x01, 0xff, 0x30, 0x02, 0x05, 0x00}},
	}
	for _, tt := range tests {
		b, err := Encode(tt.v, ValueOf())
		if err != nil || !bytes.Equal(b, tt.want) {
			t.Fatalf("%s: got %x err=%v, want %x", tt.name, b, err, tt.want)
		}
		if _, err := Decode(b, ValueOf()); err != nil {
			t.Fatalf("%s: encoding does not decode: %v", tt.name, err)
		}
	}
}

func TestValueRejectsInvalidUTF8(t *testing.T) {
	bad := UTF8String("\xff")
	for _, v := range []Value{bad, Sequence{Null{}, bad}, Sequence{Sequence{bad}}} {
		b, err := Encode(v, ValueOf())
		wantKind(t, err, KindInvalidEncoding)
		if b != nil {
			t.Fatalf("got bytes %x for invalid string", b)
		}
		_, err = Encode[any](v, Dynamic())
		wantKind(t, err, KindInvalidEncoding)
	}
}
