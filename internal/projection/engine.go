package projection

import (
	"fmt"
	"sync"

	"platform-projections/internal/cascade"
	"platform-projections/internal/interp"
	"platform-projections/internal/model"
)

// Engine runs the full projection: cascade rows for every (month,
// scenario) plus the two running-balance series per scenario. The engine
// is pure compute; loading parameters and persisting results happen
// strictly before and after a Run.
type Engine struct {
	values interp.Valuer
}

func New(values interp.Valuer) *Engine { return &Engine{values: values} }

// Run projects every scenario over months 1..horizon. Scenarios are
// independent, so each runs on its own goroutine; months within a
// scenario stay sequential because balances recur on the prior month.
func (e *Engine) Run(horizon int, scenarios []model.Scenario) (*Table, error) {
	if e.values == nil {
		return nil, fmt.Errorf("no parameter values")
	}
	if horizon < 1 {
		return nil, fmt.Errorf("horizon must be >= 1, got %d", horizon)
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios")
	}

	ev := cascade.New(e.values)
	perScenario := make([][]model.BalanceRow, len(scenarios))

	var wg sync.WaitGroup
	for i, s := range scenarios {
		wg.Add(1)
		go func(i int, s model.Scenario) {
			defer wg.Done()
			perScenario[i] = e.runScenario(ev, horizon, s)
		}(i, s)
	}
	wg.Wait()

	rows := make([]model.BalanceRow, 0, horizon*len(scenarios))
	for _, sr := range perScenario {
		rows = append(rows, sr...)
	}
	return NewTable(rows, horizon, scenarios), nil
}

func (e *Engine) runScenario(ev *cascade.Evaluator, horizon int, s model.Scenario) []model.BalanceRow {
	cascades := make([]model.CascadeRow, horizon)
	checkingFlows := make([]float64, horizon)
	savingsFlows := make([]float64, horizon)
	checkingUsage := make([]float64, horizon)
	savingsUsage := make([]float64, horizon)

	for m := 1; m <= horizon; m++ {
		row := ev.Evaluate(m, s)
		cascades[m-1] = row
		checkingFlows[m-1] = row.MonthlyChecking
		savingsFlows[m-1] = row.MonthlySavings
		checkingUsage[m-1] = e.values.Value(model.InputCheckingUsageRate, m)
		savingsUsage[m-1] = e.values.Value(model.InputSavingsUsageRate, m)
	}

	checking := balanceSeries(checkingFlows, checkingUsage)
	savings := balanceSeries(savingsFlows, savingsUsage)

	rows := make([]model.BalanceRow, horizon)
	for i := range rows {
		rows[i] = model.BalanceRow{
			CascadeRow:      cascades[i],
			CheckingBalance: checking[i],
			SavingsBalance:  savings[i],
		}
	}
	return rows
}
