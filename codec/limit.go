package codec

import (
	der "github.com/unkn0wn-root/asn1der"
)

// LimitCodec wraps another codec to enforce a maximum allowed object size
// at Decode time. Encode is forwarded to Inner unchanged.
// If MaxDecode <= 0, size limiting is disabled.
//
// The size checked is the one the payload declares in its header, so an
// oversized object is rejected from its first few bytes even when the
// payload itself was cut short.
type LimitCodec[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[V]
	// MaxDecode is the maximum permitted size (in bytes) of the encoded
	// top-level object. Oversized payloads fail with der.ErrLimitExceeded
	// without invoking Inner.
	MaxDecode int
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }
func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	var zero V
	if c.MaxDecode <= 0 {
		return c.Inner.Decode(b)
	}
	h, err := der.DecodeHeader(b)
	if err != nil {
		return zero, err
	}
	total, ok := h.Total()
	if !ok || total > c.MaxDecode {
		return zero, &der.Error{Kind: der.KindLimitExceeded, Msg: "payload declares more than the decode limit"}
	}
	if len(b) > c.MaxDecode {
		return zero, &der.Error{Kind: der.KindTrailingData, Msg: "payload longer than the decode limit"}
	}
	return c.Inner.Decode(b)
}
