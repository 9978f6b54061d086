// Package fx wires the optional HTTP server together with Uber FX:
// config, logger and Redis client as core providers, the httpapi module
// on top, and a lifecycle-managed http.Server. Trimmed from the
// teacher's internal/fx down to this engine's single module.
package fx

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"groupahpdss/internal/config"
	"groupahpdss/internal/logger"
	"groupahpdss/internal/middleware"
)

// CoreModule provides the ambient dependencies every other module
// builds on: config, logger, Redis client and the bare Gin router.
var CoreModule = fx.Module("core",
	fx.Provide(
		config.Load,
		NewLogger,
		config.NewRedisClient,
		NewGinRouter,
	),
)

// NewLogger creates the zap logger the whole application shares.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.Info("logger initialized", zap.String("level", cfg.Logging.Level), zap.String("format", cfg.Logging.Format))
	return log, nil
}

// NewGinRouter builds the Gin engine with the ambient middleware stack
// (request logging, CORS, rate limiting) plus the Swagger UI route,
// before any module registers its own routes.
func NewGinRouter(cfg *config.Config, log *zap.Logger) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(gin.Recovery())
	r.Use(middleware.NewCORS(cfg.CORS.Origins))
	r.Use(middleware.IPRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Requests*2))

	if config.IsDevelopment() {
		r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("[%s] %s %s %d %s \"%s\" %s\n",
				param.TimeStamp.Format("2006/01/02 - 15:04:05"),
				param.ClientIP,
				param.Method,
				param.StatusCode,
				param.Latency,
				param.Path,
				param.ErrorMessage,
			)
		}))
	}

	r.StaticFile("/openapi/swagger.json", "./docs/swagger.json")

	url := ginSwagger.URL("/openapi/swagger.json")
	swaggerHandler := ginSwagger.WrapHandler(swaggerFiles.Handler, url,
		ginSwagger.PersistAuthorization(true),
		ginSwagger.DocExpansion("list"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	)
	r.GET("/swagger/*any", swaggerHandler)

	return r
}
