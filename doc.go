// Package asn1der implements a strict codec for a subset of DER: BOOLEAN,
// INTEGER, OCTET STRING, NULL, UTF8String and SEQUENCE, plus a bridge that
// maps Go values onto those objects without per-field encoding code.
//
// The codec is byte-exact. Every accepted encoding is the only encoding of
// its value, and non-canonical input (long-form lengths for short values,
// redundant integer bytes, boolean bytes other than 0x00/0xFF, non-empty
// NULL) is rejected instead of normalized.
//
// Layers:
//   - Object: untyped tag/value pair; ParseObject, DecodeObject, AppendTo.
//   - Leaf types: Boolean, Integer, Null, OctetString, UTF8String, Sequence.
//   - Mapping[T]: converts T to and from an Object. Bool, Uint, String,
//     Bytes, ArrayOf, OptionalOf, RecordOf, EnumOf and Dynamic cover the
//     usual shapes.
//   - Decode/Encode/Marshal/Unmarshal: top-level entry points with Options.
//
// Records list their fields through Field, in order:
//
//	func (u *User) DERFields(f *asn1der.FieldSet) {
//		asn1der.Field(f, "id", &u.ID, asn1der.Uint[uint64]())
//		asn1der.Field(f, "name", &u.Name, asn1der.String())
//		asn1der.Field(f, "email", &u.Email, asn1der.OptionalOf(asn1der.String()))
//	}
//
// Absent optionals encode as NULL so later fields keep their position.
//
// Errors carry a Kind; use errors.Is with ErrInvalidEncoding, ErrUnsupported,
// ErrTrailingData, ErrUnsupportedType or ErrLimitExceeded.
package asn1der
