package ristretto

import (
	"bytes"
	"context"
	"errors"
	"time"

	rc "github.com/dgraph-io/ristretto"

	pr "github.com/unkn0wn-root/asn1der/provider"
)

var ErrInvalidConfig = errors.New("ristretto provider: invalid config")

// Provider keeps encodings in an in-process ristretto cache. Costs are
// byte sizes, so MaxCost bounds memory.
type Provider struct {
	c *rc.Cache
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	MaxBytes    int64 // total cost budget; required
	NumCounters int64 // 0 => MaxBytes/64, at least 1024
	BufferItems int64 // 0 => 64
	Metrics     bool
}

func New(cfg Config) (*Provider, error) {
	if cfg.MaxBytes <= 0 || cfg.NumCounters < 0 || cfg.BufferItems < 0 {
		return nil, ErrInvalidConfig
	}
	counters := cfg.NumCounters
	if counters == 0 {
		counters = max(cfg.MaxBytes/64, 1024)
	}
	buffer := cfg.BufferItems
	if buffer == 0 {
		buffer = 64
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: counters,
		MaxCost:     cfg.MaxBytes,
		BufferItems: buffer,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Provider{c: c}, nil
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// self-heal: drop unexpected entry shape
		p.c.Del(key)
		return nil, false, nil
	}
	return bytes.Clone(b), true, nil
}

// Set admits value and waits for the write buffer to drain, so a
// successful Set is visible to the next Get.
func (p *Provider) Set(_ context.Context, key string, value []byte, cost int64, ttl time.Duration) (bool, error) {
	if cost <= 0 {
		cost = int64(len(value))
	}
	if !p.c.SetWithTTL(key, bytes.Clone(value), cost, ttl) {
		return false, nil
	}
	p.c.Wait()
	return true, nil
}

func (p *Provider) Del(_ context.Context, key string) error {
	p.c.Del(key)
	return nil
}

func (p *Provider) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()
	return nil
}

// Metrics exposes ristretto counters when Config.Metrics is set.
func (p *Provider) Metrics() *rc.Metrics { return p.c.Metrics }
