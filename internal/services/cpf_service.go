package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/prefeitura-rio/app-cpf/internal/logging"
	"github.com/prefeitura-rio/app-cpf/internal/models"
	"github.com/prefeitura-rio/app-cpf/internal/observability"
	"github.com/prefeitura-rio/app-cpf/internal/utils"
	"github.com/prefeitura-rio/app-cpf/pkg/cpf"
	"go.uber.org/zap"
)

// CPFValidator defines the interface for CPF validation
type CPFValidator interface {
	ValidateText(ctx context.Context, input string) models.CPFValidationResult
	ValidateNumber(ctx context.Context, value uint64) models.CPFValidationResult
	ParseNumeric(ctx context.Context, input string) models.CPFValidationResult
	ValidateBatch(ctx context.Context, req models.BatchValidationRequest) (models.BatchValidationResponse, error)
}

// CPFService validates CPFs and records metrics and spans for each call
type CPFService struct {
	logger       *logging.SafeLogger
	maxBatchSize int
}

// NewCPFService creates a new CPFService
func NewCPFService(logger *logging.SafeLogger, maxBatchSize int) *CPFService {
	return &CPFService{
		logger:       logger,
		maxBatchSize: maxBatchSize,
	}
}

// ValidateText validates a CPF given as plain or punctuated text
func (s *CPFService) ValidateText(ctx context.Context, input string) models.CPFValidationResult {
	_, span, cleanup := utils.TraceValidationOperation(ctx, models.SourceText)
	defer cleanup()

	parsed, err := cpf.Parse(input)
	result := buildResult(input, parsed, err)

	utils.AddSpanAttribute(span, "validation.valid", result.Valid)
	s.record(models.SourceText, result, observability.MaskInput(input))
	return result
}

// ValidateNumber validates a CPF given as its integer value
func (s *CPFService) ValidateNumber(ctx context.Context, value uint64) models.CPFValidationResult {
	_, span, cleanup := utils.TraceValidationOperation(ctx, models.SourceNumeric)
	defer cleanup()

	result := s.validateNumber(value)
	utils.AddSpanAttribute(span, "validation.valid", result.Valid)
	return result
}

// ParseNumeric parses a decimal string into an unsigned integer and
// validates it like ValidateNumber. Strings that are not unsigned integers
// produce an invalid_format result; integers wider than 64 bits produce an
// invalid_length result.
func (s *CPFService) ParseNumeric(ctx context.Context, input string) models.CPFValidationResult {
	_, span, cleanup := utils.TraceValidationOperation(ctx, models.SourceNumeric)
	defer cleanup()

	value, err := strconv.ParseUint(input, 10, 64)
	if err != nil {
		reason := models.ReasonInvalidFormat
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			reason = models.ReasonInvalidLength
		}
		result := models.CPFValidationResult{
			Input:   input,
			Reason:  reason,
			Message: fmt.Errorf("%w: %q", models.ErrInvalidNumeric, input).Error(),
		}
		utils.AddSpanAttribute(span, "validation.valid", false)
		utils.AddSpanAttribute(span, "validation.reason", reason)
		s.record(models.SourceNumeric, result, observability.MaskInput(input))
		return result
	}

	result := s.validateNumber(value)
	utils.AddSpanAttribute(span, "validation.valid", result.Valid)
	return result
}

func (s *CPFService) validateNumber(value uint64) models.CPFValidationResult {
	input := strconv.FormatUint(value, 10)
	parsed, err := cpf.New(value)
	result := buildResult(input, parsed, err)

	s.record(models.SourceNumeric, result, observability.MaskInput(input))
	return result
}

// ValidateBatch validates every entry of the request in order
func (s *CPFService) ValidateBatch(ctx context.Context, req models.BatchValidationRequest) (models.BatchValidationResponse, error) {
	ctx, span, cleanup := utils.TraceOperation(ctx, "validation.cpf_batch", map[string]interface{}{
		"batch.size": req.Size(),
	})
	defer cleanup()

	size := req.Size()
	if size == 0 {
		utils.RecordErrorInSpan(span, models.ErrEmptyBatch, nil)
		return models.BatchValidationResponse{}, models.ErrEmptyBatch
	}
	if size > s.maxBatchSize {
		err := fmt.Errorf("%d entries, limit is %d: %w", size, s.maxBatchSize, models.ErrBatchTooLarge)
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"batch.limit": s.maxBatchSize})
		return models.BatchValidationResponse{}, err
	}
	observability.BatchSize.Observe(float64(size))

	resp := models.BatchValidationResponse{
		Results: make([]models.CPFValidationResult, 0, size),
	}
	for _, input := range req.CPFs {
		resp.Results = append(resp.Results, s.ValidateText(ctx, input))
	}
	for _, value := range req.Numbers {
		resp.Results = append(resp.Results, s.ValidateNumber(ctx, value))
	}

	for _, result := range resp.Results {
		if result.Valid {
			resp.Summary.Valid++
		} else {
			resp.Summary.Invalid++
		}
	}
	resp.Summary.Total = len(resp.Results)

	utils.AddSpanAttribute(span, "batch.valid", resp.Summary.Valid)
	utils.AddSpanAttribute(span, "batch.invalid", resp.Summary.Invalid)

	s.logger.Debug("batch validated",
		zap.Int("total", resp.Summary.Total),
		zap.Int("valid", resp.Summary.Valid),
		zap.Int("invalid", resp.Summary.Invalid),
	)
	return resp, nil
}

// ReasonFor maps a CPF construction error to its reason code
func ReasonFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, cpf.ErrInvalidLength):
		return models.ReasonInvalidLength
	case errors.Is(err, cpf.ErrInvalidFormat):
		return models.ReasonInvalidFormat
	case errors.Is(err, cpf.ErrInvalidChecksum):
		return models.ReasonInvalidChecksum
	case errors.Is(err, cpf.ErrRepeatedDigits):
		return models.ReasonRepeatedDigits
	default:
		return models.ReasonUnknown
	}
}

func buildResult(input string, parsed cpf.CPF, err error) models.CPFValidationResult {
	if err != nil {
		var parseErr *cpf.ParseError
		message := err.Error()
		if errors.As(err, &parseErr) {
			message = parseErr.Err.Error()
		}
		return models.CPFValidationResult{
			Input:   input,
			Reason:  ReasonFor(err),
			Message: message,
		}
	}
	return models.CPFValidationResult{
		Input: input,
		Valid: true,
		CPF:   parsed.String(),
		Value: parsed.Value(),
	}
}

func (s *CPFService) record(source string, result models.CPFValidationResult, maskedInput string) {
	outcome := "valid"
	if !result.Valid {
		outcome = result.Reason
	}
	observability.CPFValidations.WithLabelValues(source, outcome).Inc()

	if result.Valid {
		s.logger.Debug("cpf validated",
			zap.String("source", source),
			zap.String("cpf", observability.MaskCPF(result.CPF)),
		)
		return
	}
	s.logger.Debug("cpf rejected",
		zap.String("source", source),
		zap.String("input", maskedInput),
		zap.String("reason", result.Reason),
	)
}
