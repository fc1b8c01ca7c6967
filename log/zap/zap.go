package zap

import (
	"sort"

	der "github.com/unkn0wn-root/asn1der"
	"go.uber.org/zap"
)

var _ der.Logger = ZapLogger{}

type ZapLogger struct{ L *zap.Logger }

func (z ZapLogger) Debug(msg string, f der.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f der.Fields)  { z.L.Warn(msg, zf(f)...) }

// zf converts fields in key order. Errors, ints and strings get typed
// fields; a nil error is dropped.
func zf(f der.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(f))
	for _, k := range keys {
		switch v := f[k].(type) {
		case nil:
			continue
		case error:
			out = append(out, zap.NamedError(k, v))
		case int:
			out = append(out, zap.Int(k, v))
		case string:
			out = append(out, zap.String(k, v))
		default:
			out = append(out, zap.Any(k, v))
		}
	}
	return out
}
