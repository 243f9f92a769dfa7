package handlers

import (
	"log"
	"net/http"

	"platform-projections/internal/analysis"
	"platform-projections/internal/api/models"
	"platform-projections/internal/interp"
	"platform-projections/internal/model"
	"platform-projections/internal/params"
	"platform-projections/internal/projection"

	"github.com/gin-gonic/gin"
)

// ProjectionHandler handles projection-related requests
type ProjectionHandler struct{}

// NewProjectionHandler creates a new projection handler
func NewProjectionHandler() *ProjectionHandler {
	return &ProjectionHandler{}
}

// RunProjection handles POST /api/v1/projection
func (h *ProjectionHandler) RunProjection(c *gin.Context) {
	var req models.ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	store, err := buildStore(req.Parameters, req.DuplicatePolicy)
	if err != nil {
		log.Printf("ProjectionHandler: rejected parameters: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PARAMETERS",
				Message: err.Error(),
			},
		})
		return
	}

	horizon := req.HorizonMonths
	if horizon == 0 {
		horizon = model.DefaultHorizonMonths
	}
	scenarios := resolveScenarios(req.Scenarios, req.CustomMultiplier)

	engine := projection.New(interp.NewCached(interp.New(store)))
	table, err := engine.Run(horizon, scenarios)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "PROJECTION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	log.Printf("ProjectionHandler: projected %d months x %d scenarios", horizon, len(scenarios))

	resp := models.ProjectionResponse{
		Status:        "completed",
		HorizonMonths: horizon,
		Summaries:     convertSummaries(analysis.Summarize(table)),
	}
	if req.Options.IncludeRows {
		resp.Rows = convertRows(table.Rows, req.Options.IncludeChannels)
	}
	c.JSON(http.StatusOK, resp)
}

// CompareScenarios handles POST /api/v1/projection/compare
func (h *ProjectionHandler) CompareScenarios(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	if req.Month < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "month must be >= 1",
			},
		})
		return
	}

	store, err := buildStore(req.Parameters, req.DuplicatePolicy)
	if err != nil {
		log.Printf("ProjectionHandler: rejected parameters: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PARAMETERS",
				Message: err.Error(),
			},
		})
		return
	}

	// Projecting up to the compared month is enough; the deltas read
	// cascade metrics only.
	scenarios := resolveScenarios(req.Scenarios, req.CustomMultiplier)
	engine := projection.New(interp.NewCached(interp.New(store)))
	table, err := engine.Run(req.Month, scenarios)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "PROJECTION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.CompareResponse{
		Month:      req.Month,
		Comparison: convertDeltas(analysis.CompareScenarios(table, req.Month)),
	})
}

// Helper methods

func buildStore(obs []models.Observation, policy string) (*params.Store, error) {
	if policy == "" {
		policy = string(model.DuplicateMax)
	}
	src := make(params.StaticSource, 0, len(obs))
	for _, o := range obs {
		src = append(src, model.Observation{Input: o.Input, Month: o.Month, Value: o.Value})
	}
	return params.Load(src, model.DuplicatePolicy(policy))
}

func resolveScenarios(names []string, customMultiplier float64) []model.Scenario {
	if len(names) == 0 {
		names = model.ScenarioNames
	}
	out := make([]model.Scenario, 0, len(names))
	for _, n := range names {
		out = append(out, model.ResolveScenario(n, customMultiplier))
	}
	return out
}

func convertSummaries(sums []analysis.ScenarioSummary) []models.ScenarioSummary {
	out := make([]models.ScenarioSummary, 0, len(sums))
	for _, s := range sums {
		out = append(out, models.ScenarioSummary{
			Scenario:             s.Scenario,
			Multiplier:           s.Multiplier,
			Months:               s.Months,
			EndingAccounts:       s.EndingAccounts,
			EndingActiveAccounts: s.EndingActiveAccounts,
			CumulativeRevenue:    s.CumulativeRevenue,
			CumulativeInflows:    s.CumulativeInflows,
			CumulativeOutflows:   s.CumulativeOutflows,
			FinalCheckingBalance: s.FinalCheckingBalance,
			FinalSavingsBalance:  s.FinalSavingsBalance,
			PeakCheckingBalance:  s.PeakCheckingBalance,
			PeakSavingsBalance:   s.PeakSavingsBalance,
		})
	}
	return out
}

func convertRows(rows []model.BalanceRow, includeChannels bool) []models.ProjectionRow {
	out := make([]models.ProjectionRow, 0, len(rows))
	for _, r := range rows {
		row := models.ProjectionRow{
			Month:                   r.Month,
			Scenario:                r.Scenario,
			TotalAccounts:           r.TotalAccounts,
			ActiveAccounts:          r.ActiveAccounts,
			CheckingAccounts:        r.CheckingAccounts,
			SavingAccounts:          r.SavingAccounts,
			TotalInflows:            r.TotalInflows,
			TotalOutflows:           r.TotalOutflows,
			NetRemaining:            r.NetRemaining,
			SavingsTransfer:         r.SavingsTransfer,
			MonthlyChecking:         r.MonthlyChecking,
			MonthlySavings:          r.MonthlySavings,
			TotalRevenue:            r.TotalRevenue,
			RevenuePerAccount:       r.RevenuePerAccount,
			RevenuePerActiveAccount: r.RevenuePerActiveAccount,
			CheckingBalance:         r.CheckingBalance,
			SavingsBalance:          r.SavingsBalance,
		}
		if includeChannels {
			row.Inflows = convertFlows(r.Inflows)
			row.Outflows = convertFlows(r.Outflows)
		}
		out = append(out, row)
	}
	return out
}

func convertFlows(flows []model.ChannelFlow) []models.ChannelFlow {
	out := make([]models.ChannelFlow, 0, len(flows))
	for _, f := range flows {
		out = append(out, models.ChannelFlow{
			Channel:    string(f.Channel),
			Quantity:   f.Quantity,
			Amount:     f.Amount,
			SolvedRate: f.SolvedRate,
		})
	}
	return out
}

func convertDeltas(deltas []analysis.ScenarioDelta) []models.ScenarioDelta {
	out := make([]models.ScenarioDelta, 0, len(deltas))
	for _, d := range deltas {
		out = append(out, models.ScenarioDelta{
			Scenario:          d.Scenario,
			Multiplier:        d.Multiplier,
			TotalAccounts:     d.TotalAccounts,
			ActiveAccounts:    d.ActiveAccounts,
			TotalRevenue:      d.TotalRevenue,
			RevenuePerAccount: d.RevenuePerAccount,
			AccountsVsBase:    d.AccountsVsBase,
			RevenueVsBase:     d.RevenueVsBase,
		})
	}
	return out
}
