package params

import (
	"encoding/json"
	"os"

	"platform-projections/internal/model"
)

// Document matches the JSON shape of parameter files.
//
// Example:
//
//	{
//	  "observations": [
//	    {"input": "Accounts", "month": 1, "value": 1000}
//	  ]
//	}
type Document struct {
	Observations []model.Observation `json:"observations"`
}

func readJSON(path string) ([]model.Observation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc.Observations, nil
}
