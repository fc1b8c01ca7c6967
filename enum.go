package asn1der

// EnumOf maps an enumeration through its raw representation. Decoding
// rejects raw values that fromRaw does not recognize.
func EnumOf[E, R any](raw Mapping[R], toRaw func(E) R, fromRaw func(R) (E, bool)) Mapping[E] {
	return Mapping[E]{
		name: "enum of " + raw.name,
		enc:  func(e E) (Object, error) { return raw.Encode(toRaw(e)) },
		dec: func(st *state, o Object) (E, error) {
			r, err := raw.decode(st, o)
			if err != nil {
				var zero E
				return zero, err
			}
			e, ok := fromRaw(r)
			if !ok {
				var zero E
				return zero, invalid("invalid enum value")
			}
			return e, nil
		},
	}
}

// StringEnum maps a string enumeration with the given variants to
// UTF8String.
func StringEnum[E ~string](known ...E) Mapping[E] {
	return EnumOf(String(),
		func(e E) string { return string(e) },
		lookup[E, string](known, func(e E) string { return string(e) }),
	)
}

// UintEnum maps an unsigned enumeration with the given variants to
// INTEGER.
func UintEnum[E Unsigned](known ...E) Mapping[E] {
	return EnumOf(Uint[E](),
		func(e E) E { return e },
		lookup[E, E](known, func(e E) E { return e }),
	)
}

func lookup[E any, R comparable](known []E, key func(E) R) func(R) (E, bool) {
	set := make(map[R]E, len(known))
	for _, e := range known {
		set[key(e)] = e
	}
	return func(r R) (E, bool) {
		e, ok := set[r]
		return e, ok
	}
}
