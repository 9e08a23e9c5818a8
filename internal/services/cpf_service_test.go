package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prefeitura-rio/app-cpf/internal/logging"
	"github.com/prefeitura-rio/app-cpf/internal/models"
	"github.com/prefeitura-rio/app-cpf/internal/observability"
	"github.com/prefeitura-rio/app-cpf/pkg/cpf"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ CPFValidator = (*CPFService)(nil)

func newTestService(t *testing.T, maxBatch int) (*CPFService, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewCPFService(logging.NewSafeLogger(zap.New(core)), maxBatch), logs
}

func TestNewCPFService(t *testing.T) {
	service := NewCPFService(logging.Logger, 10)
	require.NotNil(t, service)
	assert.NotNil(t, service.logger)
	assert.Equal(t, 10, service.maxBatchSize)
}

func TestValidateText(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantValid  bool
		wantCPF    string
		wantValue  uint64
		wantReason string
	}{
		{name: "plain digits", input: "01678346063", wantValid: true, wantCPF: "01678346063", wantValue: 1678346063},
		{name: "punctuated", input: "016.783.460-63", wantValid: true, wantCPF: "01678346063", wantValue: 1678346063},
		{name: "altered check digit", input: "01678346064", wantReason: models.ReasonInvalidChecksum},
		{name: "one digit short", input: "0167834606", wantReason: models.ReasonInvalidLength},
		{name: "letter", input: "0167834606a", wantReason: models.ReasonInvalidFormat},
		{name: "repeated digits", input: "11111111111", wantReason: models.ReasonRepeatedDigits},
	}

	service, _ := newTestService(t, 10)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.ValidateText(context.Background(), tt.input)

			assert.Equal(t, tt.input, result.Input)
			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Equal(t, tt.wantCPF, result.CPF)
			assert.Equal(t, tt.wantValue, result.Value)
			assert.Equal(t, tt.wantReason, result.Reason)
			if !tt.wantValid {
				assert.NotEmpty(t, result.Message)
				assert.NotContains(t, result.Message, tt.input, "message should not echo the input")
			}
		})
	}
}

func TestValidateText_RecordsMetric(t *testing.T) {
	service, _ := newTestService(t, 10)
	counter := observability.CPFValidations.WithLabelValues(models.SourceText, models.ReasonInvalidChecksum)
	before := testutil.ToFloat64(counter)

	service.ValidateText(context.Background(), "01678346064")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestValidateText_MasksLoggedInput(t *testing.T) {
	service, logs := newTestService(t, 10)

	service.ValidateText(context.Background(), "01678346063")
	service.ValidateText(context.Background(), "01678346064")

	require.Equal(t, 2, logs.Len())
	for _, entry := range logs.All() {
		for _, value := range entry.ContextMap() {
			s, ok := value.(string)
			if !ok {
				continue
			}
			assert.NotContains(t, s, "01678346063")
			assert.NotContains(t, s, "01678346064")
		}
	}
	assert.Equal(t, "016***460**", logs.All()[0].ContextMap()["cpf"])
}

func TestValidateNumber(t *testing.T) {
	service, _ := newTestService(t, 10)

	result := service.ValidateNumber(context.Background(), 1678346063)
	assert.True(t, result.Valid)
	assert.Equal(t, "1678346063", result.Input)
	assert.Equal(t, "01678346063", result.CPF)

	result = service.ValidateNumber(context.Background(), 100_000_000_000)
	assert.False(t, result.Valid)
	assert.Equal(t, models.ReasonInvalidLength, result.Reason)
}

func TestParseNumeric(t *testing.T) {
	service, _ := newTestService(t, 10)

	tests := []struct {
		input      string
		wantValid  bool
		wantReason string
	}{
		{input: "1678346063", wantValid: true},
		{input: "01678346063", wantValid: true},
		{input: "1678346064", wantReason: models.ReasonInvalidChecksum},
		{input: "100000000000", wantReason: models.ReasonInvalidLength},
		{input: "99999999999999999999999", wantReason: models.ReasonInvalidLength},
		{input: "016.783.460-63", wantReason: models.ReasonInvalidFormat},
		{input: "-1678346063", wantReason: models.ReasonInvalidFormat},
		{input: "", wantReason: models.ReasonInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := service.ParseNumeric(context.Background(), tt.input)
			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Equal(t, tt.wantReason, result.Reason)
		})
	}
}

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	return recorder
}

func TestParseNumeric_OpensOneValidationSpan(t *testing.T) {
	service, _ := newTestService(t, 10)

	tests := []struct {
		input      string
		wantValid  bool
		wantReason string
	}{
		{input: "1678346063", wantValid: true},
		{input: "1678346064"},
		{input: "016.783.460-63", wantReason: models.ReasonInvalidFormat},
		{input: "99999999999999999999999", wantReason: models.ReasonInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			recorder := setupRecorder(t)

			service.ParseNumeric(context.Background(), tt.input)

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			assert.Equal(t, "validation.cpf", spans[0].Name())

			attrs := map[attribute.Key]attribute.Value{}
			for _, kv := range spans[0].Attributes() {
				attrs[kv.Key] = kv.Value
			}
			assert.Equal(t, models.SourceNumeric, attrs["validation.source"].AsString())
			assert.Equal(t, tt.wantValid, attrs["validation.valid"].AsBool())
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, attrs["validation.reason"].AsString())
			}
		})
	}
}

func TestEntryPointsAgree(t *testing.T) {
	service, _ := newTestService(t, 10)
	ctx := context.Background()

	fromNumber := service.ValidateNumber(ctx, 1678346063)
	fromText := service.ValidateText(ctx, "01678346063")
	fromPunctuated := service.ValidateText(ctx, "016.783.460-63")

	assert.Equal(t, fromNumber.CPF, fromText.CPF)
	assert.Equal(t, fromNumber.CPF, fromPunctuated.CPF)
	assert.Equal(t, fromNumber.Value, fromPunctuated.Value)
}

func TestValidateBatch(t *testing.T) {
	service, _ := newTestService(t, 10)

	resp, err := service.ValidateBatch(context.Background(), models.BatchValidationRequest{
		CPFs:    []string{"01678346063", "016.783.460-63", "0167834606a"},
		Numbers: []uint64{1678346063, 1678346064},
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 5)
	assert.Equal(t, models.BatchSummary{Total: 5, Valid: 3, Invalid: 2}, resp.Summary)

	assert.True(t, resp.Results[0].Valid)
	assert.True(t, resp.Results[1].Valid)
	assert.Equal(t, models.ReasonInvalidFormat, resp.Results[2].Reason)
	assert.True(t, resp.Results[3].Valid)
	assert.Equal(t, models.ReasonInvalidChecksum, resp.Results[4].Reason)
}

func TestValidateBatch_Empty(t *testing.T) {
	service, _ := newTestService(t, 10)

	_, err := service.ValidateBatch(context.Background(), models.BatchValidationRequest{})
	assert.ErrorIs(t, err, models.ErrEmptyBatch)
}

func TestValidateBatch_TooLarge(t *testing.T) {
	service, _ := newTestService(t, 2)

	_, err := service.ValidateBatch(context.Background(), models.BatchValidationRequest{
		CPFs:    []string{"01678346063", "12345678909"},
		Numbers: []uint64{1678346063},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrBatchTooLarge)
	assert.True(t, strings.Contains(err.Error(), "limit is 2"))
}

func TestReasonFor(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: ""},
		{err: cpf.ErrInvalidLength, want: models.ReasonInvalidLength},
		{err: cpf.ErrInvalidFormat, want: models.ReasonInvalidFormat},
		{err: cpf.ErrInvalidChecksum, want: models.ReasonInvalidChecksum},
		{err: cpf.ErrRepeatedDigits, want: models.ReasonRepeatedDigits},
		{err: &cpf.ParseError{Input: "x", Err: cpf.ErrInvalidFormat}, want: models.ReasonInvalidFormat},
		{err: fmt.Errorf("wrapped: %w", cpf.ErrInvalidChecksum), want: models.ReasonInvalidChecksum},
		{err: errors.New("something else"), want: models.ReasonUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ReasonFor(tt.err), "ReasonFor(%v)", tt.err)
	}
}
