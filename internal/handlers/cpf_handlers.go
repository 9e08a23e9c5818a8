package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-cpf/internal/logging"
	"github.com/prefeitura-rio/app-cpf/internal/middleware"
	"github.com/prefeitura-rio/app-cpf/internal/models"
	"github.com/prefeitura-rio/app-cpf/internal/services"
	"github.com/prefeitura-rio/app-cpf/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// CPFHandlers handles CPF validation HTTP requests
type CPFHandlers struct {
	service services.CPFValidator
	logger  *logging.SafeLogger
}

// NewCPFHandlers creates a new CPF handlers instance
func NewCPFHandlers(service services.CPFValidator, logger *logging.SafeLogger) *CPFHandlers {
	return &CPFHandlers{
		service: service,
		logger:  logger,
	}
}

// ValidateCPF godoc
// @Summary Validar CPF
// @Description Valida um CPF informado como 11 dígitos ou no formato XXX.XXX.XXX-XX. Com numeric=true o parâmetro é interpretado como número inteiro, com zeros à esquerda opcionais.
// @Tags cpf
// @Produce json
// @Param cpf path string true "CPF a validar"
// @Param numeric query bool false "Interpretar o CPF como número inteiro"
// @Success 200 {object} models.CPFValidationResult "CPF válido"
// @Failure 400 {object} models.CPFValidationResult "CPF inválido"
// @Router /cpf/{cpf} [get]
func (h *CPFHandlers) ValidateCPF(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ValidateCPF")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "validate_cpf"),
		attribute.String("service", "cpf"),
	)

	logger := h.requestLogger(c)
	input := c.Param("cpf")

	ctx, parseSpan := utils.TraceInputParsing(ctx, "path_parameter")
	numeric, err := parseBoolQuery(c.Query("numeric"))
	if err != nil {
		utils.RecordErrorInSpan(parseSpan, err, map[string]interface{}{"numeric_param": c.Query("numeric")})
		parseSpan.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "numeric must be a boolean"})
		return
	}
	utils.AddSpanAttribute(parseSpan, "numeric", numeric)
	parseSpan.End()

	logicCtx, logicSpan := utils.TraceBusinessLogic(ctx, "cpf_validation")
	var result models.CPFValidationResult
	if numeric {
		result = h.service.ParseNumeric(logicCtx, input)
	} else {
		result = h.service.ValidateText(logicCtx, input)
	}
	logicSpan.End()
	span.SetAttributes(attribute.Bool("cpf.valid", result.Valid))

	_, responseSpan := utils.TraceResponseSerialization(ctx, "validation_result")
	if result.Valid {
		c.JSON(http.StatusOK, result)
	} else {
		c.JSON(http.StatusBadRequest, result)
	}
	responseSpan.End()

	logger.Debug("ValidateCPF completed",
		zap.Bool("valid", result.Valid),
		zap.String("reason", result.Reason),
		zap.Duration("total_duration", time.Since(startTime)),
	)
}

// ValidateBatch godoc
// @Summary Validar lote de CPFs
// @Description Valida vários CPFs de uma vez. Entradas textuais vão em "cpfs" e numéricas em "numbers"; os resultados seguem a ordem do pedido, textuais primeiro.
// @Tags cpf
// @Accept json
// @Produce json
// @Param request body models.BatchValidationRequest true "CPFs a validar"
// @Success 200 {object} models.BatchValidationResponse "Resultado por CPF"
// @Failure 400 {object} ErrorResponse "Corpo inválido, lote vazio ou acima do limite"
// @Router /cpf/validate [post]
func (h *CPFHandlers) ValidateBatch(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ValidateBatch")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "validate_cpf_batch"),
		attribute.String("service", "cpf"),
	)

	logger := h.requestLogger(c)

	ctx, parseSpan := utils.TraceInputParsing(ctx, "request_body")
	var req models.BatchValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RecordErrorInSpan(parseSpan, err, nil)
		parseSpan.End()
		logger.Warn("invalid batch request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	utils.AddSpanAttribute(parseSpan, "batch.size", req.Size())
	parseSpan.End()

	logicCtx, logicSpan := utils.TraceBusinessLogic(ctx, "cpf_batch_validation")
	resp, err := h.service.ValidateBatch(logicCtx, req)
	logicSpan.End()
	if err != nil {
		if errors.Is(err, models.ErrEmptyBatch) || errors.Is(err, models.ErrBatchTooLarge) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("batch validation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to validate batch"})
		return
	}

	_, responseSpan := utils.TraceResponseSerialization(ctx, "batch_result")
	c.JSON(http.StatusOK, resp)
	responseSpan.End()

	logger.Debug("ValidateBatch completed",
		zap.Int("total", resp.Summary.Total),
		zap.Int("invalid", resp.Summary.Invalid),
		zap.Duration("total_duration", time.Since(startTime)),
	)
}

// requestLogger scopes the handler logger to the current request id
func (h *CPFHandlers) requestLogger(c *gin.Context) *logging.SafeLogger {
	return h.logger.With(zap.String("request_id", c.GetString(middleware.RequestIDKey)))
}

func parseBoolQuery(value string) (bool, error) {
	if value == "" {
		return false, nil
	}
	return strconv.ParseBool(value)
}
