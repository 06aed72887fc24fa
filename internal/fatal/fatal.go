// fatal holds the error type for failures that leave rendering undefined.
//
// Nothing here exits the process. Hosts are expected to report an *Error
// and terminate (ie. log.Fatal).
package fatal

import (
	"github.com/pkg/errors"
)

// Kind is the category of a fatal failure
type Kind int

const (
	Platform Kind = iota + 1
	Window
	Context
	ImageLoad
	FontLoad
	TextureUpload
	TextureBind
)

func (k Kind) String() string {
	switch k {
	case Platform:
		return "platform"
	case Window:
		return "window"
	case Context:
		return "context"
	case ImageLoad:
		return "image load"
	case FontLoad:
		return "font load"
	case TextureUpload:
		return "texture upload"
	case TextureBind:
		return "texture bind"
	}
	return "unknown"
}

// Error is a startup-class failure. Continuing after one is undefined.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "fatal " + e.Kind.String() + " error"
	}
	return "fatal " + e.Kind.String() + " error: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Cause lets errors.Cause walk past the fatal marker
func (e *Error) Cause() error {
	return e.Err
}

// New creates a fatal error of the given kind
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Err: errors.New(message)}
}

// Wrap annotates err with message and marks it fatal. Returns nil if err is nil.
func Wrap(kind Kind, err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: errors.Wrap(err, message)}
}

// Wrapf is Wrap with a format specifier
func Wrapf(kind Kind, err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: errors.Wrapf(err, format, args...)}
}

// As returns the fatal error in err's chain, if any
func As(err error) (*Error, bool) {
	var fatalErr *Error
	if errors.As(err, &fatalErr) {
		return fatalErr, true
	}
	return nil, false
}

// Is reports whether err's chain has a fatal error of the given kind
func Is(err error, kind Kind) bool {
	fatalErr, ok := As(err)
	return ok && fatalErr.Kind == kind
}
