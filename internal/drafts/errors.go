package drafts

import (
	"errors"
	"fmt"
)

// Kind classifies a drafts failure.
type Kind int

// Failure kinds. The zero value is reserved for errors that did not come from this package.
const (
	KindUnknown Kind = iota
	KindLocationUnavailable
	KindDirectoryCreateFailed
	KindReadFailed
	KindParseFailed
	KindInvalidFormat
	KindWriteFailed
)

// String returns the kind's identifier.
func (k Kind) String() string {
	switch k {
	case KindLocationUnavailable:
		return "LocationUnavailable"
	case KindDirectoryCreateFailed:
		return "DirectoryCreateFailed"
	case KindReadFailed:
		return "ReadFailed"
	case KindParseFailed:
		return "ParseFailed"
	case KindInvalidFormat:
		return "InvalidFormat"
	case KindWriteFailed:
		return "WriteFailed"
	default:
		return "Unknown"
	}
}

// message is the human-readable text shown at the command boundary.
func (k Kind) message() string {
	switch k {
	case KindLocationUnavailable:
		return "could not determine the app data directory"
	case KindDirectoryCreateFailed:
		return "failed to create the app data directory"
	case KindReadFailed:
		return "failed to read drafts file"
	case KindParseFailed:
		return "invalid JSON"
	case KindInvalidFormat:
		return "invalid format: expected a JSON array"
	case KindWriteFailed:
		return "failed to write drafts file"
	default:
		return "drafts error"
	}
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrLocationUnavailable   = &Error{Kind: KindLocationUnavailable}
	ErrDirectoryCreateFailed = &Error{Kind: KindDirectoryCreateFailed}
	ErrReadFailed            = &Error{Kind: KindReadFailed}
	ErrParseFailed           = &Error{Kind: KindParseFailed}
	ErrInvalidFormat         = &Error{Kind: KindInvalidFormat}
	ErrWriteFailed           = &Error{Kind: KindWriteFailed}
)

// Error is a drafts failure tagged with its Kind.
// Path is the file or directory involved, when known.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.message()
	if e.Path != "" && e.Kind != KindParseFailed && e.Kind != KindInvalidFormat {
		msg += " " + e.Path
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a drafts error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain,
// or KindUnknown if there is none.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

func newError(kind Kind, path string, cause error) *Error {
	return &Error{Kind: kind, Path: path, Err: cause}
}
