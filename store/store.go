// Package store keeps canonical DER encodings in a byte Provider, addressed
// by the digest of the encoding itself.
//
// Entries are immutable: a digest always names the same bytes, so there is
// nothing to invalidate. Reads verify the digest and the canonical form
// before decoding; an entry failing either check is deleted and reported
// as a miss (self-heal).
//
// Keys:
//
//	der:<ns>:<hex digest>
package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	der "github.com/unkn0wn-root/asn1der"
	"github.com/unkn0wn-root/asn1der/codec"
	pr "github.com/unkn0wn-root/asn1der/provider"
)

// ErrRejected is returned when the provider declined a write under pressure.
var ErrRejected = errors.New("store: write rejected by provider")

// Self-heal reasons passed to Hooks.StoreSelfHeal.
const (
	ReasonDigestMismatch = "digest_mismatch"
	ReasonDecodeError    = "decode_error"
	ReasonNotCanonical   = "not_canonical"
)

// CostFunc returns the provider cost of an entry. Defaults to its size.
type CostFunc func(key string, encoding []byte) int64

// Options configure a Store. Namespace, Provider and Mapping are required.
type Options[T any] struct {
	Namespace string // logical namespace, e.g. "cert", "profile"
	Provider  pr.Provider
	Mapping   der.Mapping[T]

	TTL     time.Duration // 0 => entries do not expire
	MaxSize int           // largest accepted encoding in bytes; 0 => unlimited
	Cost    CostFunc      // nil => len(encoding)
	Logger  der.Logger    // if nil, NopLogger is used
	Hooks   der.Hooks     // if nil, NopHooks is used
}

// Store is safe for concurrent use when its Provider is.
type Store[T any] struct {
	ns       string
	provider pr.Provider
	codec    codec.Codec[T]
	ttl      time.Duration
	cost     CostFunc
	log      der.Logger
	hooks    der.Hooks
}

func New[T any](opts Options[T]) (*Store[T], error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("store: provider is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("store: namespace is required")
	}
	if opts.Mapping.Name() == "" {
		return nil, fmt.Errorf("store: mapping is required")
	}

	s := &Store[T]{
		ns:       opts.Namespace,
		provider: opts.Provider,
		ttl:      opts.TTL,
		cost:     opts.Cost,
	}
	s.log = coalesce[der.Logger](opts.Logger, der.NopLogger{})
	s.hooks = coalesce[der.Hooks](opts.Hooks, der.NopHooks{})
	if s.cost == nil {
		s.cost = func(_ string, b []byte) int64 { return int64(len(b)) }
	}

	s.codec = codec.LimitCodec[T]{
		Inner: codec.DER[T]{
			Mapping: opts.Mapping,
			Options: der.Options{Logger: s.log, Hooks: s.hooks},
		},
		MaxDecode: opts.MaxSize,
	}
	return s, nil
}

func (s *Store[T]) Close(ctx context.Context) error { return s.provider.Close(ctx) }

// Put stores the encoding of v and returns its digest. Storing the same
// value twice yields the same digest.
func (s *Store[T]) Put(ctx context.Context, v T) (Digest, error) {
	b, err := s.codec.Encode(v)
	if err != nil {
		return Digest{}, err
	}
	return s.put(ctx, b)
}

// PutRaw stores an existing encoding. It must be a single canonical object.
func (s *Store[T]) PutRaw(ctx context.Context, encoding []byte) (Digest, error) {
	if err := checkCanonical(encoding); err != nil {
		return Digest{}, err
	}
	return s.put(ctx, bytes.Clone(encoding))
}

func (s *Store[T]) put(ctx context.Context, b []byte) (Digest, error) {
	d := Sum(b)
	k := s.key(d)
	ok, err := s.provider.Set(ctx, k, b, s.cost(k, b), s.ttl)
	if err != nil {
		return Digest{}, err
	}
	if !ok {
		s.log.Debug("put rejected by provider (pressure)", der.Fields{"key": k, "size": len(b)})
		return Digest{}, ErrRejected
	}
	return d, nil
}

// Get returns the value stored under d. Entries that fail verification
// are deleted and reported as a miss.
func (s *Store[T]) Get(ctx context.Context, d Digest) (T, bool, error) {
	var zero T
	k := s.key(d)
	raw, ok, err := s.getVerified(ctx, k, d)
	if err != nil || !ok {
		return zero, false, err
	}
	v, err := s.codec.Decode(raw)
	if err != nil {
		s.heal(ctx, k, ReasonDecodeError, err)
		return zero, false, nil
	}
	return v, true, nil
}

// GetRaw returns the verified encoding stored under d.
func (s *Store[T]) GetRaw(ctx context.Context, d Digest) ([]byte, bool, error) {
	return s.getVerified(ctx, s.key(d), d)
}

// Delete removes the entry for d.
func (s *Store[T]) Delete(ctx context.Context, d Digest) error {
	return s.provider.Del(ctx, s.key(d))
}

func (s *Store[T]) getVerified(ctx context.Context, k string, d Digest) ([]byte, bool, error) {
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil || !ok {
		return nil, false, err
	}
	if Sum(raw) != d {
		s.heal(ctx, k, ReasonDigestMismatch, nil)
		return nil, false, nil
	}
	if err := checkCanonical(raw); err != nil {
		s.heal(ctx, k, ReasonNotCanonical, err)
		return nil, false, nil
	}
	return raw, true, nil
}

func (s *Store[T]) heal(ctx context.Context, k, reason string, cause error) {
	_ = s.provider.Del(ctx, k) // self-heal
	s.log.Warn("dropped corrupt entry", der.Fields{"key": k, "reason": reason, "err": cause})
	s.hooks.StoreSelfHeal(k, reason)
}

func (s *Store[T]) key(d Digest) string {
	// isolate by namespace
	return "der:" + s.ns + ":" + d.String()
}

// checkCanonical reports whether b is exactly one object whose typed form
// encodes back to b.
func checkCanonical(b []byte) error {
	v, err := der.DecodeValue(b)
	if err != nil {
		return err
	}
	if !bytes.Equal(der.EncodeValue(v), b) {
		return &der.Error{Kind: der.KindInvalidEncoding, Msg: "encoding is not canonical"}
	}
	return nil
}

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
