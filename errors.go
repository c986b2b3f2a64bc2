package polycalc

import (
	"errors"
	"fmt"
)

var (
	ErrWrongCommand          = errors.New("WRONG COMMAND")
	ErrStackUnderflow        = errors.New("STACK UNDERFLOW")
	ErrDegByWrongVariable    = errors.New("DEG BY WRONG VARIABLE")
	ErrAtWrongValue          = errors.New("AT WRONG VALUE")
	ErrComposeWrongParameter = errors.New("COMPOSE WRONG PARAMETER")
	ErrWrongPoly             = errors.New("WRONG POLY")
)

// LineError ties a calculator error to the input line that caused it.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("ERROR %d %s", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
