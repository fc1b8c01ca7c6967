package sloghooks

import (
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	der "github.com/unkn0wn-root/asn1der"
	"github.com/zeebo/blake3"
)

type Options struct {
	// Sampling to avoid floods from hostile input; 0/1 = log all.
	RejectEvery   uint64
	TrailingEvery uint64
	// Optional key redactor. Defaults to a BLAKE3 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	rejectCtr   atomic.Uint64
	trailingCtr atomic.Uint64
}

var _ der.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := blake3.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) DecodeRejected(kind der.Kind, reason string) {
	if h.l == nil || !sample(h.opts.RejectEvery, &h.rejectCtr) {
		return
	}
	h.l.Debug("asn1der.decode_rejected",
		"kind", kind.String(),
		"reason", reason)
}

func (h *Hooks) TrailingBytes(n int) {
	if h.l == nil || !sample(h.opts.TrailingEvery, &h.trailingCtr) {
		return
	}
	h.l.Debug("asn1der.trailing_bytes",
		"n", n)
}

func (h *Hooks) LimitExceeded(declared, limit int) {
	if h.l == nil {
		return
	}
	h.l.Warn("asn1der.limit_exceeded",
		"declared", declared,
		"limit", limit)
}

func (h *Hooks) DepthExceeded(max int) {
	if h.l == nil {
		return
	}
	h.l.Warn("asn1der.depth_exceeded",
		"max", max)
}

func (h *Hooks) StoreSelfHeal(key, reason string) {
	if h.l == nil {
		return
	}
	h.l.Warn("asn1der.store_self_heal",
		"key", h.redact(key),
		"reason", reason)
}
