package brro

import "errors"

// Kind classifies the error conditions the engine can surface: InvalidInput
// is a precondition violation (reject before entering the engine),
// Malformed and LengthMismatch are decode-time failures that abort the
// containing frame/stream decode.
type Kind int

const (
	InvalidInput Kind = iota
	Malformed
	LengthMismatch
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case Malformed:
		return "malformed"
	case LengthMismatch:
		return "length mismatch"
	default:
		return "unknown error kind"
	}
}

// Error is the error type returned across every package boundary in this
// module, mirroring ion.TypeError: enough structured context (Kind, the
// operation that failed, a human message) to format a useful error and to
// be matched on with errors.As, rather than ad-hoc errors.New strings.
type Error struct {
	Kind    Kind
	Op      string
	Message string
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Kind.String() + ": " + e.Message
	}
	return e.Op + ": " + e.Kind.String() + ": " + e.Message
}

// NewError constructs an *Error for the given op and message.
func NewError(k Kind, op, msg string) *Error {
	return &Error{Kind: k, Op: op, Message: msg}
}

// Is reports whether err is a *Error of the given Kind.
func Is(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}
