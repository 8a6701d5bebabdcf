// Package router wires the Gin engine with every API route and middleware.
package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ceomapp/ceom/internal/domain/models"
	"github.com/ceomapp/ceom/internal/metrics"
	"github.com/ceomapp/ceom/internal/server/handlers"
	"github.com/ceomapp/ceom/internal/server/middleware"
	"github.com/ceomapp/ceom/pkg/jwtutil"
)

// Handlers groups the HTTP adapters the router mounts.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Business   *handlers.BusinessHandler
	Product    *handlers.ProductHandler
	Production *handlers.ProductionHandler
	FixedCost  *handlers.FixedCostHandler
	Sales      *handlers.SalesHandler
	Finance    *handlers.FinanceHandler
	Simulation *handlers.SimulationHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, tokens *jwtutil.JWTUtil, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))
	r.Use(metricsMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	authed := api.Group("", middleware.Auth(tokens, logger))

	admin := authed.Group("", middleware.RequireRole(models.RoleAdmin))
	admin.POST("/users", h.Auth.CreateUser)
	admin.GET("/users", h.Auth.ListUsers)
	admin.POST("/businesses", h.Business.Create)

	authed.GET("/businesses", h.Business.List)

	business := authed.Group("/businesses/:id")
	business.GET("", h.Business.Get)

	business.GET("/products", h.Product.List)
	business.POST("/products", h.Product.Create)
	business.POST("/pricing", h.Product.Quote)

	business.POST("/production", h.Production.Register)
	business.GET("/production", h.Production.History)
	business.GET("/production/export", h.Production.ExportCSV)

	business.GET("/fixed-costs", h.FixedCost.List)
	business.POST("/fixed-costs", h.FixedCost.Create)

	business.GET("/sales", h.Sales.List)
	business.POST("/sales", h.Sales.Create)
	business.GET("/events", h.Sales.ListEvents)
	business.POST("/events", h.Sales.CreateEvent)

	business.GET("/finance/weekly", h.Finance.Weekly)
	business.GET("/finance/weekly/export", h.Finance.ExportWeeklyCSV)
	business.GET("/finance/weeks/:week", h.Finance.Week)
	business.GET("/finance/break-even", h.Finance.BreakEven)
	business.GET("/finance/break-even/export", h.Finance.ExportBreakEvenCSV)

	authed.PUT("/products/:id", h.Product.Update)
	authed.DELETE("/products/:id", h.Product.Delete)

	authed.PATCH("/production/:id", h.Production.UpdateQuantity)
	authed.DELETE("/production/:id", h.Production.Delete)

	authed.PUT("/fixed-costs/:id", h.FixedCost.Update)
	authed.DELETE("/fixed-costs/:id", h.FixedCost.Delete)

	authed.POST("/simulation/capacity", h.Simulation.Estimate)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
