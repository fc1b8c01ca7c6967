package logrus

import (
	"github.com/sirupsen/logrus"
	der "github.com/unkn0wn-root/asn1der"
)

var _ der.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

func (l LogrusLogger) Debug(msg string, f der.Fields) { l.entry(f).Debug(msg) }
func (l LogrusLogger) Warn(msg string, f der.Fields)  { l.entry(f).Warn(msg) }

// entry attaches f; an error under "err" goes through WithError so that
// formatters see logrus.ErrorKey.
func (l LogrusLogger) entry(f der.Fields) *logrus.Entry {
	e := l.E
	fields := make(logrus.Fields, len(f))
	for k, v := range f {
		if v == nil {
			continue
		}
		if err, ok := v.(error); ok && k == "err" {
			e = e.WithError(err)
			continue
		}
		fields[k] = v
	}
	return e.WithFields(fields)
}
