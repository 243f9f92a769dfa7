package model

// Scenario scales the projected account base up or down. The multiplier
// applies to the Accounts input only; every other input keeps its base
// interpolated value regardless of scenario.
type Scenario struct {
	Name       string
	Multiplier float64
}

// Fixed scenario names.
const (
	ScenarioBase   = "Base"
	ScenarioHigh10 = "High_10"
	ScenarioLow10  = "Low_10"
	ScenarioHigh25 = "High_25"
	ScenarioLow25  = "Low_25"
	ScenarioCustom = "Custom"
)

// ScenarioNames lists the fixed catalog in presentation order. Custom is
// excluded; it only runs when a caller supplies a multiplier for it.
var ScenarioNames = []string{
	ScenarioBase, ScenarioHigh10, ScenarioLow10, ScenarioHigh25, ScenarioLow25,
}

var scenarioMultipliers = map[string]float64{
	ScenarioBase:   1.0,
	ScenarioHigh10: 1.1,
	ScenarioLow10:  0.9,
	ScenarioHigh25: 1.25,
	ScenarioLow25:  0.75,
}

// ResolveScenario maps a scenario name to its multiplier. Unknown names
// resolve to 1.0 rather than failing. Custom uses customMultiplier, or
// 1.0 when the caller left it 0 (unset).
func ResolveScenario(name string, customMultiplier float64) Scenario {
	if name == ScenarioCustom {
		m := customMultiplier
		if m == 0 {
			m = 1.0
		}
		return Scenario{Name: name, Multiplier: m}
	}
	if m, ok := scenarioMultipliers[name]; ok {
		return Scenario{Name: name, Multiplier: m}
	}
	return Scenario{Name: name, Multiplier: 1.0}
}
