package sentencepiece

// Native status codes returned by the sentencepiece library. These are
// the google canonical codes; only the ones the translation cares about
// are named, every other value is treated as an unknown failure.
const (
	statusOK               = 0
	statusInvalidArgument  = 3
	statusNotFound         = 5
	statusPermissionDenied = 7
	statusOutOfRange       = 11
	statusInternal         = 13
)

// kindForCode maps a native status code onto the error taxonomy. The
// mapping is total: every non-zero integer yields a Kind, and codes
// outside the recognized set yield KindUnknown rather than success.
// OutOfRange is reported by the native decoder for invalid piece ids,
// which callers see as an invalid argument.
func kindForCode(code int) Kind {
	switch code {
	case statusInvalidArgument, statusOutOfRange:
		return KindInvalidArgument
	case statusNotFound:
		return KindNotFound
	case statusInternal:
		return KindInternal
	default:
		return KindUnknown
	}
}

// statusError translates a native status code at the call site. The
// zero code is success and yields nil; anything else carries the raw
// code for diagnostics.
func statusError(op string, code int) error {
	if code == statusOK {
		return nil
	}
	return &StatusError{Op: op, Code: code, Kind: kindForCode(code)}
}

// loadStatusError translates a failed model load. The native loader
// reports unreadable files as not-found or permission-denied, and
// malformed model data as an internal check violation; callers see the
// former as not-found and anything else as an invalid argument, since a
// load can only fail on an unreadable path or unusable model data.
func loadStatusError(op string, code int) error {
	if code == statusOK {
		return nil
	}
	kind := KindInvalidArgument
	if code == statusNotFound || code == statusPermissionDenied {
		kind = KindNotFound
	}
	return &StatusError{Op: op, Code: code, Kind: kind}
}
