package asn1der

// Options tune a top-level decode. The zero value is the strict default:
// trailing bytes rejected, no size limit, DefaultMaxDepth levels of nesting.
type Options struct {
	AllowTrailingBytes bool   // default false: bytes after the top-level object are an error
	MaxSize            int    // largest accepted top-level encoding; 0 => NoLimit
	MaxDepth           int    // SEQUENCE nesting; 0 => DefaultMaxDepth, < 0 => unbounded
	Logger             Logger // if nil, NopLogger is used
	Hooks              Hooks  // if nil, NopHooks is used
}

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

type decoder struct {
	allowTrailing bool
	maxSize       int
	maxDepth      int
	log           Logger
	hooks         Hooks
}

func newDecoder(opts Options) decoder {
	return decoder{
		allowTrailing: opts.AllowTrailingBytes,
		maxSize:       coalesce[int](opts.MaxSize, NoLimit),
		maxDepth:      coalesce[int](opts.MaxDepth, DefaultMaxDepth),
		log:           coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:         coalesce[Hooks](opts.Hooks, NopHooks{}),
	}
}

// Decode decodes data, which must hold exactly one object, with m.
func Decode[T any](data []byte, m Mapping[T]) (T, error) {
	return DecodeWithOptions(data, m, Options{})
}

// DecodeWithOptions decodes the first object of data with m.
func DecodeWithOptions[T any](data []byte, m Mapping[T], opts Options) (T, error) {
	d := newDecoder(opts)
	st := newState(d.maxDepth)
	v, err := decodeTop(d, st, data, m)
	if err != nil {
		d.reject(st, data, err)
		var zero T
		return zero, err
	}
	return v, nil
}

func decodeTop[T any](d decoder, st *state, data []byte, m Mapping[T]) (T, error) {
	var zero T
	o, rest, err := ParseObject(data, d.maxSize)
	if err != nil {
		return zero, err
	}
	if len(rest) != 0 {
		d.hooks.TrailingBytes(len(rest))
		if !d.allowTrailing {
			return zero, errorf(KindTrailingData, "%d trailing bytes after object", len(rest))
		}
		d.log.Debug("ignoring trailing bytes", Fields{"trailing": len(rest), "mapping": m.name})
	}
	return m.decode(st, o)
}

func (d decoder) reject(st *state, data []byte, err error) {
	kind := KindOf(err)
	switch {
	case kind == KindLimitExceeded:
		declared := -1
		if h, herr := DecodeHeader(data); herr == nil {
			if total, ok := h.Total(); ok {
				declared = total
			}
		}
		d.log.Warn("object exceeds size limit", Fields{"declared": declared, "limit": d.maxSize})
		d.hooks.LimitExceeded(declared, d.maxSize)
	case st.depthHit:
		d.log.Warn("nesting exceeds depth limit", Fields{"maxDepth": d.maxDepth})
		d.hooks.DepthExceeded(d.maxDepth)
	}
	d.log.Debug("decode rejected", Fields{"kind": kind.String(), "err": err, "size": len(data)})
	d.hooks.DecodeRejected(kind, trimPrefix(err))
}

// Encode maps v with m and returns its encoding.
func Encode[T any](v T, m Mapping[T]) ([]byte, error) {
	o, err := m.Encode(v)
	if err != nil {
		return nil, err
	}
	return o.AppendTo(make([]byte, 0, o.EncodedLen()))
}

// Marshal returns the encoding of r.
func Marshal(r Record) ([]byte, error) {
	o, err := encodeRecord(r)
	if err != nil {
		return nil, err
	}
	return o.AppendTo(make([]byte, 0, o.EncodedLen()))
}

// Unmarshal fills r from data, which must hold exactly one object.
func Unmarshal(data []byte, r Record) error {
	return UnmarshalWithOptions(data, r, Options{})
}

// UnmarshalWithOptions fills r from the first object of data. On error r
// is left as it was.
func UnmarshalWithOptions(data []byte, r Record, opts Options) error {
	m := Mapping[Record]{
		name: "record",
		dec: func(st *state, o Object) (Record, error) {
			return r, decodeRecord(st, o, r)
		},
	}
	_, err := DecodeWithOptions(data, m, opts)
	return err
}
