package asn1der

// Fields is a minimal structured field map for logs.
type Fields map[string]any

// Logger receives diagnostics from decode and encode calls. Rejected input
// is reported at Debug; size and depth guards at Warn.
// If Logger is nil in Options, logging is disabled.
type Logger interface {
	Debug(msg string, f Fields)
	Warn(msg string, f Fields)
}

type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Warn(string, Fields)  {}
