package asn1der

// Hooks are lightweight callbacks for high-signal codec events.
// Implementations MUST be cheap and non-blocking.
type Hooks interface {
	// Input was rejected by a top-level decode.
	DecodeRejected(kind Kind, reason string)

	// A top-level object was followed by n unread bytes. Called whether or
	// not trailing bytes are allowed.
	TrailingBytes(n int)

	// An object declared more bytes than the configured limit.
	LimitExceeded(declared, limit int)

	// Nesting went past the configured maximum depth.
	DepthExceeded(max int)

	// A stored entry failed verification and was deleted.
	// reason ∈ {"digest_mismatch", "decode_error", "not_canonical"}
	StoreSelfHeal(key, reason string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) DecodeRejected(Kind, string)  {}
func (NopHooks) TrailingBytes(int)            {}
func (NopHooks) LimitExceeded(int, int)       {}
func (NopHooks) DepthExceeded(int)            {}
func (NopHooks) StoreSelfHeal(string, string) {}
