package asn1der

import "unicode/utf8"

// Value is a typed object: Boolean, Integer, Null, OctetString, UTF8String
// or Sequence.
type Value interface {
	Tag() Tag
	Object() Object
}

var (
	_ Value = Boolean(false)
	_ Value = Integer{}
	_ Value = Null{}
	_ Value = OctetString(nil)
	_ Value = UTF8String("")
	_ Value = Sequence(nil)
)

// Sequence is an ordered list of typed values. Order is significant;
// duplicates and mixed element types are allowed.
type Sequence []Value

func (s Sequence) Tag() Tag { return TagSequence }

// Object encodes the children in order; a nil child encodes as NULL.
func (s Sequence) Object() Object {
	children := make([]Object, len(s))
	for i, v := range s {
		if v == nil {
			children[i] = Null{}.Object()
			continue
		}
		children[i] = v.Object()
	}
	// in-memory sizes cannot overflow int
	o, _ := NewSequence(children...)
	return o
}

// DefaultMaxDepth bounds SEQUENCE nesting when Options.MaxDepth is zero.
const DefaultMaxDepth = 64

// ParseValue converts o into its typed form, expanding nested sequences up
// to DefaultMaxDepth levels.
func ParseValue(o Object) (Value, error) {
	return parseValue(newState(DefaultMaxDepth), o)
}

func parseValue(st *state, o Object) (Value, error) {
	var (
		v   Value
		err error
	)
	switch o.tag {
	case TagBoolean:
		v, err = BooleanFromObject(o)
	case TagInteger:
		v, err = IntegerFromObject(o)
	case TagNull:
		v, err = NullFromObject(o)
	case TagOctetString:
		v, err = OctetStringFromObject(o)
	case TagUTF8String:
		v, err = UTF8StringFromObject(o)
	case TagSequence:
		v, err = parseSequence(st, o)
	default:
		err = invalid("unknown tag %s", o.tag)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func parseSequence(st *state, o Object) (Sequence, error) {
	if err := st.enter(); err != nil {
		return nil, err
	}
	defer st.leave()

	seq := Sequence{}
	it := o.Elements()
	for it.Next() {
		v, err := parseValue(st, it.Object())
		if err != nil {
			return nil, err
		}
		seq = append(seq, v)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return seq, nil
}

// DecodeValue decodes b, which must hold exactly one object, into a typed
// value.
func DecodeValue(b []byte) (Value, error) {
	o, err := DecodeObject(b)
	if err != nil {
		return nil, err
	}
	return ParseValue(o)
}

// checkValue reports values whose encoding would not decode again.
func checkValue(v Value) error {
	switch x := v.(type) {
	case UTF8String:
		if !utf8.ValidString(string(x)) {
			return invalid("utf8 string is not valid UTF-8")
		}
	case Sequence:
		for i, c := range x {
			if err := checkValue(c); err != nil {
				return indexed(i, err)
			}
		}
	}
	return nil
}

// EncodeValue returns the encoding of v. It does not validate v; values
// built from a decode always encode back, others should go through
// ValueOf.
func EncodeValue(v Value) []byte {
	return v.Object().Encode()
}

// EqualValues reports whether a and b encode to the same object.
func EqualValues(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Object().Equal(b.Object())
}
