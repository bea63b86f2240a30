package handlers

import (
	"net/http"

	"islm-sim/internal/api/models"
	"islm-sim/internal/model"
	"islm-sim/internal/scenario"

	"github.com/gin-gonic/gin"
)

// ParametersHandler describes the inputs the dashboard exposes.
type ParametersHandler struct {
	engine *scenario.Engine
}

func NewParametersHandler(engine *scenario.Engine) *ParametersHandler {
	if engine == nil {
		engine = scenario.Default()
	}
	return &ParametersHandler{engine: engine}
}

// ListParameters handles GET /api/v1/parameters
func (h *ParametersHandler) ListParameters(c *gin.Context) {
	c.JSON(http.StatusOK, models.ParametersResponse{
		Controls: controlInfos(),
		Params:   paramsValues(h.engine.Params),
		Domain: models.DomainInfo{
			Min:    h.engine.Domain.Min,
			Max:    h.engine.Domain.Max,
			Points: h.engine.Domain.Points,
		},
	})
}

func controlInfos() []models.ControlInfo {
	out := make([]models.ControlInfo, 0, len(model.PolicyControls))
	for _, ctl := range model.PolicyControls {
		out = append(out, models.ControlInfo{
			Key:     ctl.Key,
			Label:   ctl.Label,
			Min:     ctl.Min,
			Max:     ctl.Max,
			Step:    ctl.Step,
			Default: ctl.Default,
		})
	}
	return out
}
