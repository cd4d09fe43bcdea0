package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration compilation.
var (
	// ErrInvalidDescriptor indicates a binding value that is neither a key
	// sequence, a command, a macro, nor a known action.
	ErrInvalidDescriptor = errors.New("invalid key or action")

	// ErrInvalidMacro indicates a malformed macro expression.
	ErrInvalidMacro = errors.New("invalid macro")

	// ErrInvalidKey indicates a key name that is neither a keycode nor an
	// alias.
	ErrInvalidKey = errors.New("not a valid keycode or alias")

	// ErrUnknownLayer indicates a reference to an undeclared layer.
	ErrUnknownLayer = errors.New("not a valid layer")

	// ErrCapacity indicates a fixed-capacity pool or buffer was exhausted.
	ErrCapacity = errors.New("capacity exceeded")

	// ErrFileTooLarge indicates the assembled source text exceeds
	// MaxFileSize.
	ErrFileTooLarge = errors.New("maximum file size exceeded")

	// ErrLineTooLong indicates a source line exceeds MaxLineLen.
	ErrLineTooLong = errors.New("maximum line length exceeded")
)

// ParseError is a fatal compilation error carrying source context.
type ParseError struct {
	// Path is the configuration file being compiled.
	Path string

	// Line is the 1-based line number, or 0 when not applicable.
	Line int

	// Message describes what failed.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Warning is a recoverable diagnostic. The offending item was skipped and
// compilation continued.
type Warning struct {
	// Path is the configuration file being compiled.
	Path string

	// Line is the 1-based line number, or 0 when not applicable.
	Line int

	// Message describes what was skipped and why.
	Message string
}

// String renders the warning for display.
func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", w.Path, w.Line, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Path, w.Message)
}

// isCapacityError reports whether err is a pool or buffer exhaustion,
// which always aborts the whole load.
func isCapacityError(err error) bool {
	return errors.Is(err, ErrCapacity)
}

// warnf records a recoverable diagnostic on the in-progress config.
func (c *Config) warnf(line int, format string, args ...any) {
	c.Warnings = append(c.Warnings, Warning{
		Path:    c.Path,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}
