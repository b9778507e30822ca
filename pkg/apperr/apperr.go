package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for the HTTP layer.
type Kind int

const (
	// NotFound: a referenced entity does not exist.
	NotFound Kind = iota
	// InvalidArgument: malformed input (bad role, bad status value,
	// non-positive quantity, mismatched payment amount).
	InvalidArgument
	// InvalidState: the operation is not valid for the entity's current
	// state (reapplying a coupon, assigning a non-assignable order).
	InvalidState
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func NotFoundf(format string, args ...any) error {
	return &Error{Kind: NotFound, Msg: fmt.Sprintf(format, args...)}
}

func InvalidArgumentf(format string, args ...any) error {
	return &Error{Kind: InvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

func InvalidStatef(format string, args ...any) error {
	return &Error{Kind: InvalidState, Msg: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind of err and whether err carries one.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == NotFound
}

func IsInvalidArgument(err error) bool {
	k, ok := KindOf(err)
	return ok && k == InvalidArgument
}

func IsInvalidState(err error) bool {
	k, ok := KindOf(err)
	return ok && k == InvalidState
}
