// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    RejectEvery: 100, // sample logs: ~every 100th rejected input
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	v, err := asn1der.DecodeWithOptions(b, m, asn1der.Options{
//	    Hooks: hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"
	"sync/atomic"

	der "github.com/unkn0wn-root/asn1der"
)

// Hooks forwards events to inner on worker goroutines. Events that do not
// fit into the queue, or arrive after Close, are dropped.
type Hooks struct {
	inner   der.Hooks
	q       chan func()
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

var _ der.Hooks = (*Hooks)(nil)

func New(inner der.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers.
func (h *Hooks) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	close(h.q)
	h.mu.Unlock()
	h.wg.Wait()
}

// Dropped is the number of events lost to a full queue or a closed hook.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default: // drop
		h.dropped.Add(1)
	}
}

func (h *Hooks) DecodeRejected(k der.Kind, r string) { h.try(func() { h.inner.DecodeRejected(k, r) }) }
func (h *Hooks) TrailingBytes(n int)                 { h.try(func() { h.inner.TrailingBytes(n) }) }
func (h *Hooks) LimitExceeded(d, l int)              { h.try(func() { h.inner.LimitExceeded(d, l) }) }
func (h *Hooks) DepthExceeded(max int)               { h.try(func() { h.inner.DepthExceeded(max) }) }
func (h *Hooks) StoreSelfHeal(k, r string)           { h.try(func() { h.inner.StoreSelfHeal(k, r) }) }
