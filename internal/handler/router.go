package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"payment-intention-service/internal/handler/api"
	"payment-intention-service/internal/handler/middleware"
	"payment-intention-service/internal/pkg/config"
	"payment-intention-service/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	m *metrics.Metrics,
	reg *prometheus.Registry,
	paymentHandler *api.PaymentIntentionHandler,
) {
	gin.EnableJsonDecoderDisallowUnknownFields()
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, reg, paymentHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, reg *prometheus.Registry, paymentHandler *api.PaymentIntentionHandler) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		payments := apiGroup.Group("/payments")
		addRoutes(payments, []route{
			{Method: http.MethodPost, Path: "", Handler: paymentHandler.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: paymentHandler.Get},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		default:
			g.Handle(r.Method, r.Path, r.Handler)
		}
	}
}
