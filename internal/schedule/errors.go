package schedule

import (
	"errors"
	"fmt"
)

// Kind classifies an engine fault.
type Kind string

const (
	// KindParse marks an unparseable caller input (date/time literal,
	// missing field). Never guessed around; always surfaced.
	KindParse Kind = "parse"

	// KindGateway marks a remote query or insert failure. The detail
	// carries the provider-supplied reason.
	KindGateway Kind = "gateway"

	// KindUnexpected marks any other fault caught at an operation
	// boundary.
	KindUnexpected Kind = "unexpected"
)

// Error is the engine's fault type. Every error returned by an engine
// operation is a *Error, so callers can assert on Kind.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Err }

func parseError(format string, args ...any) *Error {
	return &Error{Kind: KindParse, Detail: fmt.Sprintf(format, args...)}
}

func gatewayError(detail string, err error) *Error {
	return &Error{Kind: KindGateway, Detail: detail, Err: err}
}

// Classify returns the Kind of an engine error, or KindUnexpected for any
// error that did not originate in the engine.
func Classify(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}
