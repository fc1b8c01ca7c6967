package asn1der

import (
	"math/big"
)

// Dynamic maps loosely typed values such as those produced by generic
// decoders of other formats. It accepts nil, bool, the native integer
// types, *big.Int, string, []byte, Object, Value, Record and []any; any
// other shape fails with KindUnsupportedType.
//
// Decoding yields bool, uint64 (or int64 when negative, *big.Int when
// wider than 64 bits), nil, []byte, string and []any.
func Dynamic() Mapping[any] {
	m := Mapping[any]{name: "dynamic"}
	m.enc = func(v any) (Object, error) { return encodeDynamic(m, v) }
	m.dec = decodeDynamic
	return m
}

func encodeDynamic(self Mapping[any], v any) (Object, error) {
	switch x := v.(type) {
	case nil:
		return Null{}.Object(), nil
	case bool:
		return Boolean(x).Object(), nil
	case uint:
		return EncodeUnsigned(x).Object(), nil
	case uint8:
		return EncodeUnsigned(x).Object(), nil
	case uint16:
		return EncodeUnsigned(x).Object(), nil
	case uint32:
		return EncodeUnsigned(x).Object(), nil
	case uint64:
		return EncodeUnsigned(x).Object(), nil
	case int:
		return NewIntegerFromInt64(int64(x)).Object(), nil
	case int8:
		return NewIntegerFromInt64(int64(x)).Object(), nil
	case int16:
		return NewIntegerFromInt64(int64(x)).Object(), nil
	case int32:
		return NewIntegerFromInt64(int64(x)).Object(), nil
	case int64:
		return NewIntegerFromInt64(x).Object(), nil
	case *big.Int:
		if x == nil {
			return Null{}.Object(), nil
		}
		return NewIntegerFromBig(x).Object(), nil
	case string:
		return String().Encode(x)
	case []byte:
		return OctetString(x).Object(), nil
	case Object:
		return x, nil
	case Value:
		return encodeValue(x)
	case Record:
		return encodeRecord(x)
	case []any:
		return ArrayOf(self).Encode(x)
	default:
		return Object{}, errorf(KindUnsupportedType, "no rule for %T", v)
	}
}

func decodeDynamic(st *state, o Object) (any, error) {
	switch o.tag {
	case TagBoolean:
		b, err := BooleanFromObject(o)
		if err != nil {
			return nil, err
		}
		return bool(b), nil
	case TagInteger:
		i, err := IntegerFromObject(o)
		if err != nil {
			return nil, err
		}
		if u, err := i.Uint64(); err == nil {
			return u, nil
		}
		if n, err := i.Int64(); err == nil {
			return n, nil
		}
		return i.Big(), nil
	case TagNull:
		if _, err := NullFromObject(o); err != nil {
			return nil, err
		}
		return nil, nil
	case TagOctetString:
		return Bytes().decode(st, o)
	case TagUTF8String:
		return String().decode(st, o)
	case TagSequence:
		if err := st.enter(); err != nil {
			return nil, err
		}
		defer st.leave()

		elems, err := ParseSequence(o)
		if err != nil {
			return nil, err
		}
		out := make([]any, len(elems))
		for i, e := range elems {
			if out[i], err = decodeDynamic(st, e); err != nil {
				return nil, indexed(i, err)
			}
		}
		return out, nil
	default:
		return nil, invalid("unknown tag %s", o.tag)
	}
}
