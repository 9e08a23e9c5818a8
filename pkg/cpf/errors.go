package cpf

import (
	"errors"
	"fmt"
)

// Error kinds returned (wrapped in a *ParseError) by New and Parse.
var (
	ErrInvalidLength   = errors.New("cpf must have exactly 11 digits")
	ErrInvalidFormat   = errors.New("cpf contains unexpected characters or misplaced separators")
	ErrInvalidChecksum = errors.New("cpf check digits do not match")
	ErrRepeatedDigits  = errors.New("cpf made of a single repeated digit")
)

// ParseError records a failed CPF construction and the input that caused it.
type ParseError struct {
	Input string
	Err   error
}

func newParseError(input string, err error) *ParseError {
	return &ParseError{Input: input, Err: err}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing cpf %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
