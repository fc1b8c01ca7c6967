package diag

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	der "github.com/unkn0wn-root/asn1der"
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// CBOR output uses Core Deterministic Encoding so the same tree always
// produces the same bytes.
var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("diag: CBOR encoder initialization failed: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("diag: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalJSON renders v as JSON.
func MarshalJSON(v der.Value) ([]byte, error) {
	n, err := FromValue(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(n)
}

// UnmarshalJSON parses the output of MarshalJSON.
func UnmarshalJSON(b []byte) (der.Value, error) {
	var n Node
	if err := json.Unmarshal(b, &n); err != nil {
		return nil, err
	}
	return n.Value()
}

// MarshalCBOR renders v as deterministic CBOR.
func MarshalCBOR(v der.Value) ([]byte, error) {
	n, err := FromValue(v)
	if err != nil {
		return nil, err
	}
	return cborEnc.Marshal(n)
}

// UnmarshalCBOR parses the output of MarshalCBOR.
func UnmarshalCBOR(b []byte) (der.Value, error) {
	var n Node
	if err := cborDec.Unmarshal(b, &n); err != nil {
		return nil, err
	}
	return n.Value()
}

// MarshalMsgpack renders v as MessagePack.
func MarshalMsgpack(v der.Value) ([]byte, error) {
	n, err := FromValue(v)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(n)
}

// UnmarshalMsgpack parses the output of MarshalMsgpack.
func UnmarshalMsgpack(b []byte) (der.Value, error) {
	var n Node
	if err := msgpack.Unmarshal(b, &n); err != nil {
		return nil, err
	}
	return n.Value()
}

// ToStructPB converts v into a protobuf Struct value with the same keys as
// the JSON form. Octets are base64 text, as in the protobuf JSON mapping.
func ToStructPB(v der.Value) (*structpb.Value, error) {
	n, err := FromValue(v)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return structpb.NewValue(m)
}

// FromStructPB converts the output of ToStructPB back.
func FromStructPB(pv *structpb.Value) (der.Value, error) {
	if _, ok := pv.GetKind().(*structpb.Value_StructValue); !ok {
		return nil, fmt.Errorf("%w: protobuf value is not a struct", ErrNode)
	}
	b, err := json.Marshal(pv.AsInterface())
	if err != nil {
		return nil, err
	}
	return UnmarshalJSON(b)
}

// MarshalProto renders v as protobuf wire bytes of a google.protobuf.Value.
func MarshalProto(v der.Value) ([]byte, error) {
	pv, err := ToStructPB(v)
	if err != nil {
		return nil, err
	}
	return proto.MarshalOptions{Deterministic: true}.Marshal(pv)
}

// UnmarshalProto parses the output of MarshalProto.
func UnmarshalProto(b []byte) (der.Value, error) {
	var pv structpb.Value
	if err := proto.Unmarshal(b, &pv); err != nil {
		return nil, err
	}
	return FromStructPB(&pv)
}
