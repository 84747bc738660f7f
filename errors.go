package compose

import (
	"errors"
	"fmt"
)

// Faults raised when a composite reaches a stage it cannot invoke.
var (
	ErrNotCallable  = errors.New("invocation of non-callable value")
	ErrArity        = errors.New("argument count mismatch")
	ErrArgumentType = errors.New("argument type mismatch")
	ErrResultCount  = errors.New("stage returns more than one value")
)

// StageError reports a fault at a single stage of a composite.
// Stage is the position of the offending value in the sequence given to
// Compose, counted from the left and starting at 0.
type StageError struct {
	Stage int
	Value any
	Err   error
	msg   string
}

func (e *StageError) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("compose: stage %d (%T): %v", e.Stage, e.Value, e.Err)
	}
	return fmt.Sprintf("compose: stage %d (%T): %v: %s", e.Stage, e.Value, e.Err, e.msg)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageError(stage int, value any, err error, msg string, msgargs ...interface{}) *StageError {
	return &StageError{
		Stage: stage,
		Value: value,
		Err:   err,
		msg:   fmt.Sprintf(msg, msgargs...),
	}
}
