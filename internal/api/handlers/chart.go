package handlers

import (
	"bytes"
	"net/http"

	"islm-sim/internal/api/middleware"
	"islm-sim/internal/api/models"
	"islm-sim/internal/chart"
	"islm-sim/internal/logger"
	"islm-sim/internal/model"
	"islm-sim/internal/scenario"

	"github.com/gin-gonic/gin"
)

const maxChartSide = 4000

// ChartHandler renders the IS-LM chart as an image.
type ChartHandler struct {
	engine   *scenario.Engine
	defaults chart.Options
}

// NewChartHandler creates a chart handler; zero fields of defaults fall back to chart.DefaultOptions.
func NewChartHandler(engine *scenario.Engine, defaults chart.Options) *ChartHandler {
	if engine == nil {
		engine = scenario.Default()
	}
	return &ChartHandler{engine: engine, defaults: defaults}
}

// Render handles GET /api/v1/chart
func (h *ChartHandler) Render(c *gin.Context) {
	var req models.ChartRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	opts := h.defaults
	if req.Format != "" {
		f, err := chart.ParseFormat(req.Format)
		if err != nil {
			writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
			return
		}
		opts.Format = f
	}
	if req.Width < 0 || req.Height < 0 || req.Width > maxChartSide || req.Height > maxChartSide {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "width and height must be within [0, 4000] points")
		return
	}
	if req.Width > 0 {
		opts.Width = req.Width
	}
	if req.Height > 0 {
		opts.Height = req.Height
	}
	if opts.Format == "" {
		opts.Format = chart.PNG
	}

	res, err := h.engine.Run(req.Apply(model.DefaultPolicyInputs()))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := chart.Render(&buf, res, opts); err != nil {
		logger.Error("chart render failed", "request_id", middleware.RequestID(c), "error", err)
		writeError(c, http.StatusInternalServerError, "RENDER_ERROR", err.Error())
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, opts.Format.ContentType(), buf.Bytes())
}
