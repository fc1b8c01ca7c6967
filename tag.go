package asn1der

import "fmt"

// Tag is the single identifier byte of an encoded object.
type Tag uint8

// Universal tags understood by the typed layer.
const (
	TagBoolean     Tag = 0x01
	TagInteger     Tag = 0x02
	TagOctetString Tag = 0x04
	TagNull        Tag = 0x05
	TagUTF8String  Tag = 0x0C
	TagSequence    Tag = 0x30
)

func (t Tag) String() string {
	switch t {
	case TagBoolean:
		return "BOOLEAN"
	case TagInteger:
		return "INTEGER"
	case TagOctetString:
		return "OCTET STRING"
	case TagNull:
		return "NULL"
	case TagUTF8String:
		return "UTF8String"
	case TagSequence:
		return "SEQUENCE"
	default:
		return fmt.Sprintf("tag(0x%02x)", uint8(t))
	}
}

func expectTag(o Object, want Tag) error {
	if o.tag != want {
		return invalid("wrong tag: expected %s, got %s", want, o.tag)
	}
	return nil
}
