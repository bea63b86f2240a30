// Package api wires the HTTP routes of the IS-LM service.
package api

import (
	"net/http"
	"strings"

	"islm-sim/internal/api/handlers"
	"islm-sim/internal/api/middleware"
	"islm-sim/internal/api/models"
	"islm-sim/internal/chart"
	"islm-sim/internal/config"
	"islm-sim/internal/scenario"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine for cfg.
func NewRouter(cfg *config.Config, engine *scenario.Engine) (*gin.Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if engine == nil {
		var err error
		if engine, err = cfg.Engine(); err != nil {
			return nil, err
		}
	}
	format, err := chart.ParseFormat(cfg.Chart.Format)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins...))
	router.Use(middleware.ErrorHandler())

	equilibriumHandler := handlers.NewEquilibriumHandler(engine)
	chartHandler := handlers.NewChartHandler(engine, chart.Options{
		Width:  cfg.Chart.Width,
		Height: cfg.Chart.Height,
		Format: format,
	})
	parametersHandler := handlers.NewParametersHandler(engine)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/", handlers.Dashboard)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/parameters", parametersHandler.ListParameters)

		v1.GET("/equilibrium", equilibriumHandler.Solve)
		v1.POST("/equilibrium", equilibriumHandler.Solve)
		v1.POST("/equilibrium/compare", equilibriumHandler.Compare)
		v1.GET("/multipliers", equilibriumHandler.Multipliers)

		v1.GET("/chart", chartHandler.Render)
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{Code: "NOT_FOUND", Message: "Not found"},
			})
			return
		}
		c.Redirect(http.StatusFound, "/")
	})

	return router, nil
}
