package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-cpf/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
)

// RequestTiming wraps each request in a span, extracting any incoming trace
// context, and records its duration in logs and metrics
func RequestTiming() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// Add start time to context for handlers to use
		c.Set("request_start_time", start)

		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx, span := otel.Tracer("http").Start(ctx, "http.request")
		defer span.End()

		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", routeOf(c)),
			attribute.String("http.user_agent", c.Request.UserAgent()),
			attribute.String("http.client_ip", c.ClientIP()),
		)

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		span.SetAttributes(
			attribute.Int("http.status_code", status),
			attribute.Int64("http.duration_ms", latency.Milliseconds()),
			attribute.String("http.duration", latency.String()),
		)
		if status >= 500 {
			span.SetStatus(codes.Error, strconv.Itoa(status))
		}
		if status >= 400 {
			span.SetAttributes(attribute.String("http.error", "true"))
		}

		observability.Logger().Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("route", routeOf(c)),
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)

		observability.RequestDuration.WithLabelValues(
			routeOf(c),
			c.Request.Method,
			strconv.Itoa(status),
		).Observe(latency.Seconds())
	}
}
