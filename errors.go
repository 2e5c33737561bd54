package sentencepiece

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is()
var (
	ErrProcessorIsNil  = errors.New("sentencepiece: processor is nil and not defined")
	ErrProcessorClosed = errors.New("sentencepiece: processor is closed")
	ErrNotLoaded       = errors.New("sentencepiece: no model loaded")
)

// Kind classifies every error produced by this package into the closed
// set of outcomes reported by the native library. Native status codes
// outside the recognized set collapse to KindUnknown, never to success.
type Kind int

const (
	KindUnknown         Kind = iota // unrecognized native failure
	KindNotFound                    // model file missing or unreadable
	KindInvalidArgument             // malformed input (bad model bytes, id out of range)
	KindInternal                    // native-side invariant violation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalidArgument:
		return "invalid argument"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// StatusError reports a failed native operation. Code holds the raw
// native status for diagnostics; it is zero when the failure was
// detected on the Go side of the boundary.
type StatusError struct {
	Op      string // operation that failed, e.g. "load", "encode"
	Code    int    // raw native status code, 0 if not native
	Kind    Kind
	Message string // optional detail
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Code != 0 {
		return fmt.Sprintf("sentencepiece: %s failed: %s (native status %d)", e.Op, msg, e.Code)
	}
	return fmt.Sprintf("sentencepiece: %s failed: %s", e.Op, msg)
}

// KindOf reports the taxonomy kind of an error returned by this package.
// Sentinel errors map onto the state-machine rules: operations invoked
// before a model is loaded, after Close, or on a nil processor are
// internal misuse. Errors from other packages report KindUnknown.
func KindOf(err error) Kind {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Kind
	}
	switch {
	case errors.Is(err, ErrNotLoaded),
		errors.Is(err, ErrProcessorClosed),
		errors.Is(err, ErrProcessorIsNil):
		return KindInternal
	}
	return KindUnknown
}
