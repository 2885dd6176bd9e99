package routes

import (
	"fmt"

	_ "ecommerce_dashboard/docs" // This will be auto-generated
	"ecommerce_dashboard/internal/adapter/http/handlers"
	"ecommerce_dashboard/internal/adapter/http/middleware"
	"ecommerce_dashboard/internal/infrastructure/config"
	"ecommerce_dashboard/internal/infrastructure/logger"
	"ecommerce_dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires middlewares, swagger and the /v1 routes.
func NewRouter(cfg config.Config, log *logger.Logger, dashboard usecase.IDashboardUseCase) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, cfg, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	dashboardHandler := handlers.NewDashboardHandler(dashboard, log)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDashboardRoutes(v1, dashboardHandler)
	return router
}

// Run will start the server
func Run(cfg config.Config, log *logger.Logger, dashboard usecase.IDashboardUseCase) error {
	router := NewRouter(cfg, log, dashboard)
	log.Info("starting http server", "port", cfg.Port, "env", cfg.Env)
	if err := router.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

func setMiddlewares(router *gin.Engine, cfg config.Config, log *logger.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	if len(cfg.CORSAllowedOrigins) > 0 {
		router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	}
}
