package models

// Reason codes reported for CPFs that fail validation
const (
	ReasonInvalidLength   = "invalid_length"
	ReasonInvalidFormat   = "invalid_format"
	ReasonInvalidChecksum = "invalid_checksum"
	ReasonRepeatedDigits  = "repeated_digits"
	ReasonUnknown         = "unknown"
)

// Validation sources, used in metrics and spans
const (
	SourceText    = "text"
	SourceNumeric = "numeric"
)

// CPFValidationResult represents the outcome of validating one CPF
type CPFValidationResult struct {
	Input   string `json:"input"`
	Valid   bool   `json:"valid"`
	CPF     string `json:"cpf,omitempty"`
	Value   uint64 `json:"value,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// BatchValidationRequest represents a batch of CPFs to validate.
// CPFs holds textual entries; Numbers holds numeric entries whose leading
// zeros are implied.
type BatchValidationRequest struct {
	CPFs    []string `json:"cpfs,omitempty" example:"016.783.460-63"`
	Numbers []uint64 `json:"numbers,omitempty" example:"1678346063"`
}

// Size returns the total number of entries in the request
func (r BatchValidationRequest) Size() int {
	return len(r.CPFs) + len(r.Numbers)
}

// BatchSummary counts the outcomes of a batch validation
type BatchSummary struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

// BatchValidationResponse represents the outcome of a batch validation.
// Results keep request order: textual entries first, then numeric ones.
type BatchValidationResponse struct {
	Results []CPFValidationResult `json:"results"`
	Summary BatchSummary          `json:"summary"`
}
