package projection

import "platform-projections/internal/model"

// Table is the projection result: one row per (month, scenario), ordered
// scenario-major, months ascending within a scenario.
type Table struct {
	Rows      []model.BalanceRow
	Horizon   int
	Scenarios []model.Scenario

	index map[tableKey]int
}

type tableKey struct {
	month    int
	scenario string
}

func NewTable(rows []model.BalanceRow, horizon int, scenarios []model.Scenario) *Table {
	t := &Table{
		Rows:      rows,
		Horizon:   horizon,
		Scenarios: scenarios,
		index:     make(map[tableKey]int, len(rows)),
	}
	for i, r := range rows {
		t.index[tableKey{month: r.Month, scenario: r.Scenario}] = i
	}
	return t
}

// Row looks up the row for (month, scenario name).
func (t *Table) Row(month int, scenario string) (model.BalanceRow, bool) {
	i, ok := t.index[tableKey{month: month, scenario: scenario}]
	if !ok {
		return model.BalanceRow{}, false
	}
	return t.Rows[i], true
}

// ScenarioRows returns one scenario's rows, months ascending.
func (t *Table) ScenarioRows(scenario string) []model.BalanceRow {
	rows := make([]model.BalanceRow, 0, t.Horizon)
	for m := 1; m <= t.Horizon; m++ {
		if r, ok := t.Row(m, scenario); ok {
			rows = append(rows, r)
		}
	}
	return rows
}

// Sink persists a finished table. Implementations write CSV files or
// SQLite databases; the engine itself never touches I/O.
type Sink interface {
	Write(t *Table) error
}
