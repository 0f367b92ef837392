package gateway

import (
	"errors"
	"fmt"

	"github.com/labstack/gommon/log"
)

type Reason string

const (
	ReasonNotFound  Reason = "not_found"
	ReasonAmbiguous Reason = "ambiguous"
	ReasonStore     Reason = "store"
)

// Failure is the only error a Gateway returns. The value returned alongside
// it is always the operation's sentinel (empty slice, nil or false), so
// callers that ignore the error still get a usable result.
type Failure struct {
	Op     string
	Reason Reason
	Err    error
}

var (
	ErrNotFound  = &Failure{Reason: ReasonNotFound}
	ErrAmbiguous = &Failure{Reason: ReasonAmbiguous}
	ErrStore     = &Failure{Reason: ReasonStore}
)

func (f *Failure) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("%s: %s", f.Op, f.Reason)
	}
	return fmt.Sprintf("%s: %s: %v", f.Op, f.Reason, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Is matches failures by reason, so errors.Is(err, ErrNotFound) works for
// any operation.
func (f *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	if !ok {
		return false
	}
	return t.Reason == f.Reason && (t.Op == "" || t.Op == f.Op)
}

// errNoRecord is reported when a write succeeds without returning the
// stored row.
var errNoRecord = errors.New("store returned no record")

func storeFailure(op string, err error) *Failure {
	log.Errorf("%s failed: %v", op, err)
	return &Failure{Op: op, Reason: ReasonStore, Err: err}
}

func notFound(op, id string) *Failure {
	return &Failure{Op: op, Reason: ReasonNotFound, Err: fmt.Errorf("no record with id %q", id)}
}
