// Package fault defines the kinds of failure a script run can end with.
package fault

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies an Error.
type Kind int

// Flavours of failure.
const (
	Unknown Kind = iota
	Syntax       // malformed token, unmatched paren, bad while header
	Eval         // undefined identifier, division by zero, malformed RPN
	Runtime      // loop iteration cap exceeded
	IO           // unreadable input, bad invocation
)

var kinds = [...]string{
	Unknown: "error",
	Syntax:  "syntax error",
	Eval:    "eval error",
	Runtime: "runtime error",
	IO:      "io error",
}

func (k Kind) String() string {
	if 0 <= k && int(k) < len(kinds) {
		return kinds[k]
	}
	return kinds[Unknown]
}

// Error is a failure of a particular Kind.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

func newf(k Kind, format string, args ...interface{}) error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Syntaxf returns a Syntax error.
func Syntaxf(format string, args ...interface{}) error {
	return newf(Syntax, format, args...)
}

// Evalf returns an Eval error.
func Evalf(format string, args ...interface{}) error {
	return newf(Eval, format, args...)
}

// Runtimef returns a Runtime error.
func Runtimef(format string, args ...interface{}) error {
	return newf(Runtime, format, args...)
}

// IOf returns an IO error.
func IOf(format string, args ...interface{}) error {
	return newf(IO, format, args...)
}

// KindOf digs through any wrapping and reports the Kind of err. Errors that
// did not come from this package are Unknown.
func KindOf(err error) Kind {
	var f *Error
	if errors.As(err, &f) {
		return f.Kind
	}
	return Unknown
}

// Is reports whether err is a fault of kind k.
func Is(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
