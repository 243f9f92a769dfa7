package handlers

import (
	"net/http"
	"strings"

	"platform-projections/internal/api/models"
	"platform-projections/internal/model"

	"github.com/gin-gonic/gin"
)

// ListScenarios handles GET /api/v1/scenarios
func ListScenarios(c *gin.Context) {
	out := make([]models.ScenarioInfo, 0, len(model.ScenarioNames)+1)
	for _, name := range model.ScenarioNames {
		s := model.ResolveScenario(name, 0)
		out = append(out, models.ScenarioInfo{Name: s.Name, Multiplier: s.Multiplier})
	}
	out = append(out, models.ScenarioInfo{
		Name:       model.ScenarioCustom,
		Multiplier: 1.0,
		External:   true,
	})
	c.JSON(http.StatusOK, gin.H{"scenarios": out})
}

// ListInputs handles GET /api/v1/inputs
func ListInputs(c *gin.Context) {
	names := model.KnownInputs()
	out := make([]models.InputInfo, 0, len(names))
	for _, name := range names {
		out = append(out, models.InputInfo{Name: name, Role: inputRole(name)})
	}
	c.JSON(http.StatusOK, gin.H{"inputs": out})
}

func inputRole(name string) string {
	switch name {
	case model.InputAccounts:
		return "base account count at anchor months"
	case model.InputActiveShare:
		return "share of total accounts that are active"
	case model.InputCheckingShare:
		return "share of active accounts holding checking"
	case model.InputSavingShare:
		return "share of active accounts holding savings"
	case model.InputSavingsTransferRate:
		return "share of net remaining moved to savings"
	case model.InputCheckingUsageRate, model.InputSavingsUsageRate:
		return "monthly balance carryover rate"
	case model.InputGrowthRate:
		return "monthly growth rate beyond month 36"
	}
	switch {
	case strings.HasSuffix(name, "PerActive"):
		return "monthly transactions per active account"
	case strings.HasSuffix(name, "Share"):
		return "share of total inflows"
	case strings.HasSuffix(name, "Rate"):
		return "dollars per transaction"
	}
	return ""
}
