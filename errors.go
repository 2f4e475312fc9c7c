package actionkit

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyStarted = errors.New("action already started")
	ErrReleased       = errors.New("action used after release")
	ErrDoubleRelease  = errors.New("action released twice")
	ErrNilAction      = errors.New("nil action")
	ErrWrapped        = errors.New("repeat already wraps an action")
	ErrNoDriver       = errors.New("no driver to run on")
)

// Error describes a misuse of the action lifecycle. These are programmer
// errors; they are raised with panic rather than returned.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("actionkit: %s %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func fail(op string, kind Kind, err error) {
	panic(&Error{Op: op, Kind: kind, Err: err})
}
