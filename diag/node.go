// Package diag converts typed DER values to and from an interchange tree
// that other formats can carry: JSON, CBOR, MessagePack and protobuf
// structpb values. It exists for inspection, fixtures and test-vector
// exchange; the DER bytes remain the only canonical form.
package diag

import (
	"errors"
	"fmt"
	"math/big"

	der "github.com/unkn0wn-root/asn1der"
)

// Node types.
const (
	TypeBool     = "bool"
	TypeInteger  = "int"
	TypeNull     = "null"
	TypeOctets   = "octets"
	TypeUTF8     = "utf8"
	TypeSequence = "seq"
)

// ErrNode reports a tree that does not describe a valid value.
var ErrNode = errors.New("diag: invalid node")

// Node is one value of the interchange tree. Integers are carried as
// decimal strings so that no format loses precision.
type Node struct {
	Type  string `json:"type" cbor:"type" msgpack:"type"`
	Bool  bool   `json:"bool,omitempty" cbor:"bool,omitempty" msgpack:"bool,omitempty"`
	Int   string `json:"int,omitempty" cbor:"int,omitempty" msgpack:"int,omitempty"`
	Bytes []byte `json:"bytes,omitempty" cbor:"bytes,omitempty" msgpack:"bytes,omitempty"`
	Text  string `json:"text,omitempty" cbor:"text,omitempty" msgpack:"text,omitempty"`
	Items []Node `json:"items,omitempty" cbor:"items,omitempty" msgpack:"items,omitempty"`
}

// FromValue builds the tree for v.
func FromValue(v der.Value) (Node, error) {
	switch x := v.(type) {
	case der.Boolean:
		return Node{Type: TypeBool, Bool: bool(x)}, nil
	case der.Integer:
		return Node{Type: TypeInteger, Int: x.Big().String()}, nil
	case der.Null:
		return Node{Type: TypeNull}, nil
	case der.OctetString:
		return Node{Type: TypeOctets, Bytes: []byte(x)}, nil
	case der.UTF8String:
		return Node{Type: TypeUTF8, Text: string(x)}, nil
	case der.Sequence:
		items := make([]Node, len(x))
		for i, c := range x {
			n, err := FromValue(c)
			if err != nil {
				return Node{}, err
			}
			items[i] = n
		}
		return Node{Type: TypeSequence, Items: items}, nil
	default:
		return Node{}, fmt.Errorf("%w: no node for %T", ErrNode, v)
	}
}

// Value converts the tree back into a typed value.
func (n Node) Value() (der.Value, error) {
	switch n.Type {
	case TypeBool:
		return der.Boolean(n.Bool), nil
	case TypeInteger:
		x, ok := new(big.Int).SetString(n.Int, 10)
		if !ok {
			return nil, fmt.Errorf("%w: integer %q", ErrNode, n.Int)
		}
		return der.NewIntegerFromBig(x), nil
	case TypeNull:
		return der.Null{}, nil
	case TypeOctets:
		return der.OctetString(n.Bytes), nil
	case TypeUTF8:
		return der.UTF8String(n.Text), nil
	case TypeSequence:
		seq := make(der.Sequence, len(n.Items))
		for i, c := range n.Items {
			v, err := c.Value()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			seq[i] = v
		}
		return seq, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrNode, n.Type)
	}
}
