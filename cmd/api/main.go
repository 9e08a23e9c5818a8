package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-cpf/internal/config"
	"github.com/prefeitura-rio/app-cpf/internal/handlers"
	"github.com/prefeitura-rio/app-cpf/internal/logging"
	"github.com/prefeitura-rio/app-cpf/internal/middleware"
	"github.com/prefeitura-rio/app-cpf/internal/observability"
	"github.com/prefeitura-rio/app-cpf/internal/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/prefeitura-rio/app-cpf/docs"
)

// @title           CPF API
// @version         1.0
// @description     API para validação de CPF (Cadastro de Pessoas Físicas). Aceita CPFs como 11 dígitos, no formato XXX.XXX.XXX-XX ou como número inteiro, e informa o motivo de cada rejeição.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

// @tag.name cpf
// @tag.description CPF validation

// @tag.name health
// @tag.description Health check operations

func main() {
	if err := bootstrap(); err != nil {
		panic(err)
	}
	defer func() { _ = logging.Logger.Sync() }()

	if err := observability.InitTracer(config.AppConfig); err != nil {
		logging.Logger.Warn("tracing disabled", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := observability.ShutdownTracer(ctx); err != nil {
			logging.Logger.Error("failed to shutdown tracer", zap.Error(err))
		}
	}()

	if config.AppConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := newRouter(config.AppConfig)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     zap.NewStdLog(logging.Logger.Zap()),
	}

	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Error("server forced to shutdown", zap.Error(err))
		return
	}

	logging.Logger.Info("server exited gracefully")
}

// bootstrap loads the configuration, including any .env file, and builds
// the global logger from it
func bootstrap() error {
	if err := config.LoadConfig(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logging.InitLogger(config.AppConfig.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func newRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestTiming(),
		middleware.RequestTracker(),
		cors.New(corsConfig(cfg)),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cpfService := services.NewCPFService(logging.Logger, cfg.MaxBatchSize)
	cpfHandlers := handlers.NewCPFHandlers(cpfService, logging.Logger)

	v1 := router.Group("/v1")
	{
		v1.GET("/health", handlers.HealthCheck)

		v1.GET("/cpf/:cpf", cpfHandlers.ValidateCPF)
		v1.POST("/cpf/validate", cpfHandlers.ValidateBatch)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if cfg.AllowsAllOrigins() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Request-ID")
	corsCfg.ExposeHeaders = []string{"X-Request-ID"}
	return corsCfg
}
