package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-cpf/pkg/cpf"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// healthProbe is a known valid CPF parsed on every health check
const healthProbe = "016.783.460-63"

// ErrorResponse is the body returned for request errors
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body returned by the health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// HealthCheck godoc
// @Summary Verificação de saúde
// @Description Verifica a saúde da API executando uma validação de CPF conhecida.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Serviço saudável"
// @Failure 503 {object} HealthResponse "Validador indisponível"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	_, span := otel.Tracer("").Start(c.Request.Context(), "HealthCheck")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "health_check"),
		attribute.String("service", "health"),
	)

	health := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  map[string]string{"validator": "healthy"},
	}

	if !cpf.IsValid(healthProbe) {
		health.Status = "unhealthy"
		health.Services["validator"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	c.JSON(http.StatusOK, health)
}
