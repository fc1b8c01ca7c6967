package asn1der

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/asn1der/internal/wire"
)

// Kind classifies a failure. Every error returned by this package wraps an
// *Error carrying one of these kinds.
type Kind uint8

const (
	// KindInvalidEncoding marks malformed or non-canonical input.
	KindInvalidEncoding Kind = iota + 1
	// KindUnsupported marks well-formed input outside the representable range.
	KindUnsupported
	// KindTrailingData marks bytes left after the top-level object.
	KindTrailingData
	// KindUnsupportedType marks a Go value shape the bridge has no rule for.
	KindUnsupportedType
	// KindLimitExceeded marks an object larger than the caller allows.
	KindLimitExceeded
)

func (k Kind) String() string {
	switch k {
	case KindInvalidEncoding:
		return "invalid encoding"
	case KindUnsupported:
		return "unsupported"
	case KindTrailingData:
		return "trailing data"
	case KindUnsupportedType:
		return "unsupported type"
	case KindLimitExceeded:
		return "limit exceeded"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "asn1der: " + e.Kind.String()
	}
	return "asn1der: " + e.Msg
}

// Is reports whether target is the kind sentinel matching e.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Msg == "" && t.Kind == e.Kind
}

// Kind sentinels for errors.Is.
var (
	ErrInvalidEncoding = &Error{Kind: KindInvalidEncoding}
	ErrUnsupported     = &Error{Kind: KindUnsupported}
	ErrTrailingData    = &Error{Kind: KindTrailingData}
	ErrUnsupportedType = &Error{Kind: KindUnsupportedType}
	ErrLimitExceeded   = &Error{Kind: KindLimitExceeded}
)

// KindOf returns the kind of the *Error wrapped by err, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func invalid(format string, args ...any) *Error {
	return errorf(KindInvalidEncoding, format, args...)
}

func unsupported(format string, args ...any) *Error {
	return errorf(KindUnsupported, format, args...)
}

// fromWire maps a wire sentinel onto the taxonomy.
func fromWire(what string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, wire.ErrLengthTooLarge),
		errors.Is(err, wire.ErrOverflow),
		errors.Is(err, wire.ErrNegativeLength):
		return unsupported("%s: %v", what, err)
	default:
		return invalid("%s: %v", what, err)
	}
}

// wrapf prefixes err with context and keeps its kind.
func wrapf(err error, format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, err)...)
}
