package models

import "errors"

// Error constants for CPF validation requests
var (
	ErrEmptyBatch     = errors.New("batch must contain at least one cpf")
	ErrBatchTooLarge  = errors.New("batch exceeds the maximum number of entries")
	ErrInvalidNumeric = errors.New("cpf is not an unsigned integer")
)
