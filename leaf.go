package asn1der

import (
	"bytes"
	"unicode/utf8"
)

// Boolean is a BOOLEAN: exactly one byte, 0x00 or 0xFF.
type Boolean bool

func BooleanFromObject(o Object) (Boolean, error) {
	if err := expectTag(o, TagBoolean); err != nil {
		return false, err
	}
	if len(o.value) != 1 {
		return false, invalid("boolean must have exactly one value byte, got %d", len(o.value))
	}
	switch o.value[0] {
	case 0x00:
		return false, nil
	case 0xFF:
		return true, nil
	default:
		return false, invalid("boolean value byte 0x%02x is neither 0x00 nor 0xff", o.value[0])
	}
}

func (b Boolean) Tag() Tag { return TagBoolean }

func (b Boolean) Object() Object {
	if b {
		return object(TagBoolean, []byte{0xFF})
	}
	return object(TagBoolean, []byte{0x00})
}

// Null is the NULL object; its value is always empty.
type Null struct{}

func NullFromObject(o Object) (Null, error) {
	if err := expectTag(o, TagNull); err != nil {
		return Null{}, err
	}
	if len(o.value) != 0 {
		return Null{}, invalid("null must be empty, got %d value bytes", len(o.value))
	}
	return Null{}, nil
}

func (Null) Tag() Tag       { return TagNull }
func (Null) Object() Object { return object(TagNull, nil) }

// OctetString carries an opaque payload verbatim.
type OctetString []byte

func OctetStringFromObject(o Object) (OctetString, error) {
	if err := expectTag(o, TagOctetString); err != nil {
		return nil, err
	}
	return OctetString(o.value), nil
}

func (s OctetString) Tag() Tag       { return TagOctetString }
func (s OctetString) Object() Object { return object(TagOctetString, bytes.Clone(s)) }

// UTF8String is a UTF8String; the value must be valid UTF-8.
type UTF8String string

func UTF8StringFromObject(o Object) (UTF8String, error) {
	if err := expectTag(o, TagUTF8String); err != nil {
		return "", err
	}
	if !utf8.Valid(o.value) {
		return "", invalid("utf8 string is not valid UTF-8")
	}
	return UTF8String(o.value), nil
}

func (s UTF8String) Tag() Tag       { return TagUTF8String }
func (s UTF8String) Object() Object { return object(TagUTF8String, []byte(s)) }
