// Package jserr implements the error/result plumbing described in
// SPEC_FULL.md §4.D: a tagged JsError union distinct from ordinary Go
// errors, because a JsError can carry a rooted JS value (a thrown Error
// object) rather than just a message. Grounded on
// original_source/src/rt/result.rs's JsError enum and its new_error/
// as_runtime machinery.
package jserr

import (
	"fmt"

	"github.com/nooga/jsobjectcore/pkg/gc"
	"github.com/nooga/jsobjectcore/pkg/jsvalue"
)

// Kind tags which variant a JsError carries.
type Kind uint8

const (
	KindIo Kind = iota
	KindLex
	KindParse
	KindReference
	KindRuntime
)

func (k Kind) String() string {
	switch k {
	case KindIo:
		return "io"
	case KindLex:
		return "lex"
	case KindParse:
		return "parse"
	case KindReference:
		return "reference"
	case KindRuntime:
		return "runtime"
	default:
		return "unknown"
	}
}

// JsError is the tagged error union every fallible operation in this
// module returns instead of an ad hoc error string. It implements the
// standard error interface so it composes with ordinary Go error
// handling, but callers that need to distinguish variants (the
// interpreter deciding how to surface a failure to user code) should
// switch on Kind.
type JsError struct {
	kind    Kind
	ioErr   error
	message string
	runtime gc.Root[jsvalue.Value]
}

func (e *JsError) Kind() Kind { return e.kind }

func (e *JsError) Error() string {
	switch e.kind {
	case KindIo:
		return fmt.Sprintf("io error: %v", e.ioErr)
	case KindLex:
		return fmt.Sprintf("lex error: %s", e.message)
	case KindParse:
		return fmt.Sprintf("parse error: %s", e.message)
	case KindReference:
		return fmt.Sprintf("reference error: %s", e.message)
	case KindRuntime:
		return "runtime error: thrown value"
	default:
		return "unknown jserr.JsError"
	}
}

// Message returns the message carried by a Lex/Parse/Reference error, or
// "" for Io/Runtime.
func (e *JsError) Message() string { return e.message }

// IoErr returns the underlying error for an Io variant, or nil otherwise.
func (e *JsError) IoErr() error { return e.ioErr }

// Runtime returns the rooted thrown value for a Runtime variant. Callers
// must only call this when Kind() == KindRuntime.
func (e *JsError) Runtime() gc.Root[jsvalue.Value] { return e.runtime }

// NewIo wraps a host I/O error (source-file reads, etc).
func NewIo(err error) *JsError { return &JsError{kind: KindIo, ioErr: err} }

// NewLex reports a lexer-level failure. Message only: position tracking
// belongs to the (out-of-scope) lexer.
func NewLex(message string) *JsError { return &JsError{kind: KindLex, message: message} }

// NewParse reports a parser-level failure.
func NewParse(message string) *JsError { return &JsError{kind: KindParse, message: message} }

// NewReferenceMessage reports a bare reference failure with no
// constructed host object yet (used before a HostFactory is available).
func NewReferenceMessage(message string) *JsError {
	return &JsError{kind: KindReference, message: message}
}

// NewRuntime wraps an already-rooted thrown JS value.
func NewRuntime(value gc.Root[jsvalue.Value]) *JsError {
	return &JsError{kind: KindRuntime, runtime: value}
}

// HostFactory is implemented by the composition layer (internal/env)
// that owns the well-known Error constructors. jserr depends only on
// this interface, never on the object package directly, so that the
// import graph stays a DAG: object depends on jserr, so jserr cannot
// depend back on object.
type HostFactory interface {
	// ConstructError invokes the built-in constructor named ctor (one of
	// "Error", "TypeError", "RangeError", "URIError", "ReferenceError",
	// "SyntaxError") with the given arguments, returning a rooted
	// instance or an error if construction itself failed.
	ConstructError(ctor string, args ...jsvalue.Value) (gc.Root[jsvalue.Value], error)

	// RootValue roots a bare Value (no host object construction involved),
	// used by AsRuntime to materialize the best-effort string-valued Io
	// error result.rs:84-87 specifies.
	RootValue(v jsvalue.Value) gc.Root[jsvalue.Value]
}

// buildError runs the "construct a host-visible Error object, or fall
// back to the inner error" rule shared by every New* constructor below:
// if construction itself fails, the inner error replaces the outer one
// rather than being swallowed, so errors never cascade infinitely.
func buildError(host HostFactory, ctor string, args ...jsvalue.Value) *JsError {
	root, err := host.ConstructError(ctor, args...)
	if err != nil {
		if je, ok := err.(*JsError); ok {
			return je
		}
		return NewIo(err)
	}
	return NewRuntime(root)
}

// NewType builds a TypeError via host, the "non-extensible writes,
// non-configurable rewrites, cannot-write" family of failures (SPEC_FULL
// §7 taxonomy).
func NewType(host HostFactory, message string) *JsError {
	return buildError(host, "TypeError", jsvalue.NewString(message))
}

// NewRange builds a RangeError, used for the non-integer array length
// case (ES5 15.4.5.1 step 3.e).
func NewRange(host HostFactory, message string) *JsError {
	return buildError(host, "RangeError", jsvalue.NewString(message))
}

// NewURI builds a URIError.
func NewURI(host HostFactory, message string) *JsError {
	return buildError(host, "URIError", jsvalue.NewString(message))
}

// NewReference builds a ReferenceError via host.
func NewReference(host HostFactory, message string) *JsError {
	return buildError(host, "ReferenceError", jsvalue.NewString(message))
}

// NewSyntax builds a SyntaxError via host, used by AsRuntime when
// materializing a Lex or Parse error.
func NewSyntax(host HostFactory, message string) *JsError {
	return buildError(host, "SyntaxError", jsvalue.NewString(message))
}

// AsRuntime materializes any JsError variant into a rooted runtime
// value, for the interpreter boundary where every thrown failure must
// become an actual JS value: Lex/Parse become SyntaxError; Reference
// becomes ReferenceError; Runtime is returned as-is; Io becomes a
// best-effort string-valued error, since there is no host I/O exception
// type in this object model's surface.
func AsRuntime(host HostFactory, e *JsError) (gc.Root[jsvalue.Value], error) {
	switch e.kind {
	case KindRuntime:
		return e.runtime, nil
	case KindLex, KindParse:
		materialized := NewSyntax(host, e.message)
		if materialized.kind != KindRuntime {
			return gc.Root[jsvalue.Value]{}, materialized
		}
		return materialized.runtime, nil
	case KindReference:
		materialized := NewReference(host, e.message)
		if materialized.kind != KindRuntime {
			return gc.Root[jsvalue.Value]{}, materialized
		}
		return materialized.runtime, nil
	case KindIo:
		return host.RootValue(jsvalue.NewString(e.Error())), nil
	default:
		return gc.Root[jsvalue.Value]{}, fmt.Errorf("jserr: unknown JsError kind %v", e.kind)
	}
}
