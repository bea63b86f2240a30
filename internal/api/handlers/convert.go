package handlers

import (
	"errors"
	"net/http"

	"islm-sim/internal/analysis"
	"islm-sim/internal/api/models"
	"islm-sim/internal/model"
	"islm-sim/internal/scenario"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// errorDetail maps domain errors onto API status codes and error codes.
func errorDetail(err error) (int, models.ErrorDetail) {
	switch {
	case errors.Is(err, model.ErrInvalidInputs):
		return http.StatusBadRequest, models.ErrorDetail{Code: "INVALID_INPUTS", Message: err.Error()}
	case errors.Is(err, model.ErrDegenerateModel):
		return http.StatusUnprocessableEntity, models.ErrorDetail{Code: "DEGENERATE_MODEL", Message: err.Error()}
	default:
		return http.StatusInternalServerError, models.ErrorDetail{Code: "INTERNAL_ERROR", Message: err.Error()}
	}
}

func writeDomainError(c *gin.Context, err error) {
	status, detail := errorDetail(err)
	_ = c.Error(err)
	c.JSON(status, models.ErrorResponse{Error: detail})
}

func policyValues(in model.PolicyInputs) models.PolicyValues {
	return models.PolicyValues{
		G:               in.GovernmentSpending,
		T:               in.Taxes,
		M:               in.MoneySupply,
		P:               in.PriceLevel,
		RealMoneySupply: in.RealMoneySupply(),
	}
}

func paramsValues(p model.StructuralParams) models.ParamsValues {
	return models.ParamsValues{
		C0: p.AutonomousBase,
		C1: p.MPC,
		B1: p.InvestmentIncomeSensitivity,
		B2: p.InvestmentInterestSensitivity,
		K:  p.MoneyDemandIncomeSensitivity,
		H:  p.MoneyDemandInterestSensitivity,
	}
}

func equilibriumInfo(res *scenario.Result) models.EquilibriumInfo {
	eq := res.Solution.Equilibrium
	return models.EquilibriumInfo{
		YStar:  eq.YStar,
		IStar:  eq.IStar,
		Marked: res.MarkEquilibrium,
	}
}

func buildResponse(res *scenario.Result, includeCurves bool) models.EquilibriumResponse {
	sol := res.Solution
	warnings := make([]models.WarningInfo, 0, len(res.Warnings))
	for _, w := range res.Warnings {
		warnings = append(warnings, models.WarningInfo{Code: string(w.Code), Message: w.Message})
	}

	resp := models.EquilibriumResponse{
		Inputs:      policyValues(res.Inputs),
		Params:      paramsValues(res.Params),
		Autonomous:  sol.Autonomous,
		IS:          models.LineInfo{Intercept: sol.IS.Intercept, Slope: sol.IS.Slope},
		LM:          models.LineInfo{Intercept: sol.LM.Intercept, Slope: sol.LM.Slope},
		Equilibrium: equilibriumInfo(res),
		Metrics: models.MetricsInfo{
			Output:       res.Metrics.Output,
			InterestRate: res.Metrics.InterestRate,
		},
		Window: models.WindowInfo{
			YMin: res.Window.YMin,
			YMax: res.Window.YMax,
			IMin: res.Window.IMin,
			IMax: res.Window.IMax,
		},
		Warnings: warnings,
	}
	if includeCurves {
		curves := &models.CurvesInfo{
			Y:  make([]float64, len(res.IS)),
			IS: make([]float64, len(res.IS)),
			LM: make([]float64, len(res.LM)),
		}
		for k := range res.IS {
			curves.Y[k] = res.IS[k].Y
			curves.IS[k] = res.IS[k].I
		}
		for k := range res.LM {
			curves.LM[k] = res.LM[k].I
		}
		resp.Curves = curves
	}
	return resp
}

func comparisonResult(cmp analysis.Comparison) models.ComparisonResult {
	out := models.ComparisonResult{
		Name:   cmp.Name,
		Inputs: policyValues(cmp.Inputs),
	}
	if cmp.Err != nil {
		_, detail := errorDetail(cmp.Err)
		out.Error = &detail
		return out
	}
	eq := equilibriumInfo(cmp.Result)
	out.Equilibrium = &eq
	out.DeltaYStar = cmp.DeltaYStar
	out.DeltaIStar = cmp.DeltaIStar
	out.OutputShift = string(cmp.OutputDir)
	out.RateShift = string(cmp.RateDir)
	return out
}
