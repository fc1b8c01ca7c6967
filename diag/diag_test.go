package diag

import (
	"bytes"
	"errors"
	"testing"

	der "github.com/unkn0wn-root/asn1der"
)

func sample() der.Value {
	return der.Sequence{
		der.Boolean(true),
		der.Boolean(false),
		der.NewIntegerFromInt64(-300),
		der.EncodeUnsigned(uint64(18446744073709551615)),
		der.Null{},
		der.OctetString{0x37, 0xe4},
		der.OctetString{},
		der.UTF8String("Testolope"),
		der.Sequence{},
		der.Sequence{der.UTF8String("")},
	}
}

func TestTranscoders(t *testing.T) {
	want := der.EncodeValue(sample())
	tests := []struct {
		name      string
		marshal   func(der.Value) ([]byte, error)
		unmarshal func([]byte) (der.Value, error)
	}{
		{"json", MarshalJSON, UnmarshalJSON},
		{"cbor", MarshalCBOR, UnmarshalCBOR},
		{"msgpack", MarshalMsgpack, UnmarshalMsgpack},
		{"proto", MarshalProto, UnmarshalProto},
	}
	for _, tt := range tests {
		b, err := tt.marshal(sample())
		if err != nil {
			t.Fatalf("%s: marshal: %v", tt.name, err)
		}
		v, err := tt.unmarshal(b)
		if err != nil {
			t.Fatalf("%s: unmarshal: %v", tt.name, err)
		}
		if got := der.EncodeValue(v); !bytes.Equal(got, want) {
			t.Fatalf("%s: round trip %x, want %x", tt.name, got, want)
		}
	}
}

func TestCBORDeterministic(t *testing.T) {
	a, err := MarshalCBOR(sample())
	if err != nil {
		t.Fatalf("MarshalCBOR: %v", err)
	}
	b, _ := MarshalCBOR(sample())
	if !bytes.Equal(a, b) {
		t.Fatalf("CBOR output is not stable")
	}
}

func TestStructPB(t *testing.T) {
	pv, err := ToStructPB(der.EncodeUnsigned(uint8(7)))
	if err != nil {
		t.Fatalf("ToStructPB: %v", err)
	}
	fields := pv.GetStructValue().GetFields()
	if fields["type"].GetStringValue() != TypeInteger || fields["int"].GetStringValue() != "7" {
		t.Fatalf("unexpected struct %v", fields)
	}
	v, err := FromStructPB(pv)
	if err != nil || !der.EqualValues(v, der.EncodeUnsigned(uint8(7))) {
		t.Fatalf("FromStructPB=%v err=%v", v, err)
	}
}

func TestInvalidNodes(t *testing.T) {
	for _, in := range []string{
		`{"type":"float"}`,
		`{"type":"int","int":"x1"}`,
		`{"type":"seq","items":[{"type":"bool"},{}]}`,
	} {
		if _, err := UnmarshalJSON([]byte(in)); !errors.Is(err, ErrNode) {
			t.Fatalf("%s: expected ErrNode, got %v", in, err)
		}
	}
}

func TestDump(t *testing.T) {
	got := Dump(der.Sequence{der.EncodeUnsigned(uint8(7)), der.OctetString{0x37, 0xe4}, der.Sequence{der.Null{}}})
	want := "SEQUENCE {\n  INTEGER 7\n  OCTET STRING 37e4\n  SEQUENCE {\n    NULL\n  }\n}\n"
	if got != want {
		t.Fatalf("Dump:\n%s\nwant:\n%s", got, want)
	}
}
