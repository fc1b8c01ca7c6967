package codec

import (
	der "github.com/unkn0wn-root/asn1der"
)

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// DER is a Codec backed by a Mapping. Decode is strict unless Options
// say otherwise.
type DER[V any] struct {
	Mapping der.Mapping[V]
	Options der.Options
}

var _ Codec[bool] = DER[bool]{}

// NewDER returns a strict DER codec for m.
func NewDER[V any](m der.Mapping[V]) DER[V] { return DER[V]{Mapping: m} }

func (c DER[V]) Encode(v V) ([]byte, error) { return der.Encode(v, c.Mapping) }
func (c DER[V]) Decode(b []byte) (V, error) {
	return der.DecodeWithOptions(b, c.Mapping, c.Options)
}
