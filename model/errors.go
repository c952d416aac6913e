package model

import (
	"errors"
	"fmt"
)

// Error kinds.  Callers detect them with errors.Is instead of comparing
// messages.
var (
	// ErrInvalidInput marks malformed or out-of-range requirement fields and
	// tasks constructed with inconsistent execution times.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInfeasible is returned when the requested utilisation cannot be
	// split across the requested number of tasks.
	ErrInfeasible = errors.New("infeasible requirement")

	// ErrNumeric signals an internal precision failure while deriving an
	// integral period.
	ErrNumeric = errors.New("numeric derivation failure")

	// ErrNotConverged is returned when a bounded search loop exhausts its
	// attempt budget.
	ErrNotConverged = errors.New("could not converge")
)

// Error wraps one of the error kinds with a human-readable cause.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

// InvalidInputf returns an ErrInvalidInput error.
func InvalidInputf(format string, args ...any) error {
	return &Error{Kind: ErrInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

// Infeasiblef returns an ErrInfeasible error.
func Infeasiblef(format string, args ...any) error {
	return &Error{Kind: ErrInfeasible, Msg: fmt.Sprintf(format, args...)}
}

// Numericf returns an ErrNumeric error.
func Numericf(format string, args ...any) error {
	return &Error{Kind: ErrNumeric, Msg: fmt.Sprintf(format, args...)}
}

// NotConvergedf returns an ErrNotConverged error.
func NotConvergedf(format string, args ...any) error {
	return &Error{Kind: ErrNotConverged, Msg: fmt.Sprintf(format, args...)}
}
