package handlers

import (
	"net/http"

	"platform-projections/internal/api/models"
	"platform-projections/internal/interp"
	"platform-projections/internal/model"

	"github.com/gin-gonic/gin"
)

// InterpolateHandler handles interpolation inspection requests
type InterpolateHandler struct{}

// NewInterpolateHandler creates a new interpolate handler
func NewInterpolateHandler() *InterpolateHandler {
	return &InterpolateHandler{}
}

// Interpolate handles POST /api/v1/interpolate
func (h *InterpolateHandler) Interpolate(c *gin.Context) {
	var req models.InterpolateRequest
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
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PARAMETERS",
				Message: err.Error(),
			},
		})
		return
	}

	months := req.Months
	if len(months) == 0 {
		horizon := req.HorizonMonths
		if horizon == 0 {
			horizon = model.DefaultHorizonMonths
		}
		if horizon < 1 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_REQUEST",
					Message: "horizon_months must be >= 1",
				},
			})
			return
		}
		months = make([]int, horizon)
		for i := range months {
			months[i] = i + 1
		}
	}

	eng := interp.New(store)
	points := make([]models.InterpolatedPoint, 0, len(months))
	for _, m := range months {
		points = append(points, models.InterpolatedPoint{
			Month: m,
			Value: eng.Value(req.Input, m),
		})
	}

	c.JSON(http.StatusOK, models.InterpolateResponse{
		Input:      req.Input,
		GrowthRate: eng.GrowthRate(),
		Points:     points,
	})
}
