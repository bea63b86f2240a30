package handlers

import (
	"net/http"

	"islm-sim/internal/analysis"
	"islm-sim/internal/api/middleware"
	"islm-sim/internal/api/models"
	"islm-sim/internal/logger"
	"islm-sim/internal/model"
	"islm-sim/internal/scenario"

	"github.com/gin-gonic/gin"
)

// EquilibriumHandler serves solves, comparisons and multipliers.
type EquilibriumHandler struct {
	engine *scenario.Engine
}

// NewEquilibriumHandler creates a handler bound to the configured engine.
func NewEquilibriumHandler(engine *scenario.Engine) *EquilibriumHandler {
	if engine == nil {
		engine = scenario.Default()
	}
	return &EquilibriumHandler{engine: engine}
}

// engineFor applies a per-request parameter override, if any.
func (h *EquilibriumHandler) engineFor(o *models.ParamsOverride) (*scenario.Engine, error) {
	if o.IsEmpty() {
		return h.engine, nil
	}
	return h.engine.WithParams(o.Apply(h.engine.Params))
}

// Solve handles GET and POST /api/v1/equilibrium
func (h *EquilibriumHandler) Solve(c *gin.Context) {
	var req models.EquilibriumRequest
	var err error
	if c.Request.Method == http.MethodPost {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBindQuery(&req)
	}
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	engine, err := h.engineFor(req.Params)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	in := req.Apply(model.DefaultPolicyInputs())
	res, err := engine.Run(in)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	logger.Debug("equilibrium solved",
		"request_id", middleware.RequestID(c),
		"y_star", res.Solution.Equilibrium.YStar,
		"i_star", res.Solution.Equilibrium.IStar,
		"warnings", len(res.Warnings),
	)
	c.JSON(http.StatusOK, buildResponse(res, req.IncludeCurves))
}

// Compare handles POST /api/v1/equilibrium/compare
func (h *EquilibriumHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	engine, err := h.engineFor(req.Params)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	base := req.Base.Apply(model.DefaultPolicyInputs())
	variations := make([]analysis.NamedInputs, 0, len(req.Variations))
	for _, v := range req.Variations {
		variations = append(variations, analysis.NamedInputs{
			Name:   v.Name,
			Inputs: v.Inputs.Apply(base),
		})
	}

	baseRes, comparisons, err := analysis.Compare(engine, base, variations)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	ranked := analysis.RankByOutput(comparisons)
	out := make([]models.ComparisonResult, 0, len(ranked))
	rank := 0
	for _, cmp := range ranked {
		r := comparisonResult(cmp)
		if cmp.Err == nil {
			rank++
			r.Rank = rank
		}
		out = append(out, r)
	}

	c.JSON(http.StatusOK, models.CompareResponse{
		Base:       equilibriumInfo(baseRes),
		Comparison: out,
	})
}

// Multipliers handles GET /api/v1/multipliers
func (h *EquilibriumHandler) Multipliers(c *gin.Context) {
	var req models.PolicyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	in := req.Apply(model.DefaultPolicyInputs())
	if err := in.Validate(); err != nil {
		writeDomainError(c, err)
		return
	}
	s, err := analysis.Multipliers(in, h.engine.Params)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	effect := func(e analysis.Effect) models.EffectInfo {
		return models.EffectInfo{DYStar: e.DYStar, DIStar: e.DIStar}
	}
	c.JSON(http.StatusOK, models.MultipliersResponse{
		Inputs: policyValues(in),
		Effects: map[string]models.EffectInfo{
			model.KeyGovernmentSpending: effect(s.GovernmentSpending),
			model.KeyTaxes:              effect(s.Taxes),
			model.KeyMoneySupply:        effect(s.MoneySupply),
			model.KeyPriceLevel:         effect(s.PriceLevel),
		},
	})
}
