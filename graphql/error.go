/**
 * Copyright (c) 2019, The Hermes Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import (
	"fmt"
	"log"
	"runtime"

	"github.com/botobag/hermes/internal/util"

	jsoniter "github.com/json-iterator/go"
)

// Op describes an operation, usually as the package and method, such as
// "graphql.TypeCatalog.Resolve".
type Op string

// ErrKind defines the kind of error this is.
type ErrKind uint8

// Enumeration of ErrKind
//
// The kinds split into two phase families sharing one root: definition errors
// (ErrKindDefinition through ErrKindDuplicate) are fatal at load time, while execution
// errors (ErrKindExecution, ErrKindSyntax) are produced by the request pipeline and
// surfaced here so callers can rescue both families uniformly.
const (
	ErrKindOther      ErrKind = iota // Unclassified error. This value is not printed in the error message.
	ErrKindDefinition                // Malformed or mismatched declaration at create time.
	ErrKindArgument                  // Bad arguments to a declaration.
	ErrKindName                      // Lookup miss.
	ErrKindDuplicate                 // Name or namespace collision.
	ErrKindExecution                 // Failure while executing a request.
	ErrKindSyntax                    // Malformed query text.
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindDefinition:
		return "definition error"
	case ErrKindArgument:
		return "argument error"
	case ErrKindName:
		return "name error"
	case ErrKindDuplicate:
		return "duplicate error"
	case ErrKindExecution:
		return "execution error"
	case ErrKindSyntax:
		return "syntax error"
	}
	return "unknown error kind"
}

// ErrorExtensions provides an additional machine-readable entry to an error with key
// "extensions". Conflict errors use it to carry the conflicting name and the owner and
// claimant origins alongside the human-readable message.
type ErrorExtensions map[string]interface{}

// ErrorWithExtensions indicates an error that contains extensions data. If "extensions"
// is not given in the arguments to NewError, NewError will retrieve one from the
// underlying error (if provided) that implements this interface.
type ErrorWithExtensions interface {
	Extensions() ErrorExtensions
}

// An Error describes a failure raised while declaring, organizing or resolving
// definitions. It can be serialized to JSON for reporting.
//
// An Error can be built by wrapping an error value; information (if unspecified in the
// arguments to NewError) in the wrapped value is propagated to the newly created Error.
// It also includes Op and ErrKind which show when printing the error value, making it
// helpful for programmers.
type Error struct {
	// Message describes the error. It must carry enough context (conflicting name, owner,
	// origin trace, expected vs. actual kind) to let a developer fix the declaration
	// without consulting sources beyond the message.
	Message string

	// Extensions contains machine-readable data to accompany the message.
	Extensions ErrorExtensions

	// The underlying error that triggered this one
	Err error

	// Op is the operation being performed, usually the name of the method being invoked.
	Op Op

	// Kind is the class of error.
	Kind ErrKind
}

// Error implements Go error interface.
var _ error = (*Error)(nil)

// NewError builds an error value from arguments. Inspired by the design of
// upspin.io/errors [0].
//
// [0]: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html.
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case ErrorExtensions:
			e.Extensions = arg

		case error:
			e.Err = arg

		case Op:
			e.Op = arg

		case ErrKind:
			e.Kind = arg

		default:
			_, file, line, _ := runtime.Caller(1)
			log.Printf("NewError: bad call from %s:%d: %v", file, line, args)
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	// Propagate extensions and kind from the underlying error when not provided in
	// arguments.
	prev := e.Err
	if prev != nil {
		if e.Extensions == nil {
			switch errWithExtensions := prev.(type) {
			case ErrorWithExtensions:
				e.Extensions = errWithExtensions.Extensions()
			case *Error:
				e.Extensions = errWithExtensions.Extensions
			}
		}

		if e.Kind == ErrKindOther {
			if prev, ok := prev.(*Error); ok {
				e.Kind = prev.Kind
			}
		}
	}

	return e
}

// WrapError is a convenient wrapper to build an Error value from an underlying error
// with a message.
func WrapError(err error, message string) error {
	return NewError(message, err)
}

// WrapErrorf is similar to WrapError but with the format specifier.
func WrapErrorf(err error, format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), err)
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b util.StringBuilder

	if len(e.Op) > 0 {
		b.WriteString(string(e.Op))
	}

	if len(e.Message) > 0 {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(e.Message)
	}

	if e.Kind != ErrKindOther {
		if b.Len() > 0 {
			b.WriteString(" (")
			b.WriteString(e.Kind.String())
			b.WriteString(")")
		} else {
			b.WriteString(e.Kind.String())
		}
	}

	if e.Err != nil {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(e.Err.Error())
	}

	if b.Len() == 0 {
		return "no error"
	}
	return b.String()
}

// MarshalJSON serializes the error into JSON which contains "message" and (when
// present) "extensions" entries.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(struct {
		Message    string          `json:"message"`
		Extensions ErrorExtensions `json:"extensions,omitempty"`
	}{
		Message:    e.Message,
		Extensions: e.Extensions,
	})
}
