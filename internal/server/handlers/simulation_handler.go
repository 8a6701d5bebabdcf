package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ceomapp/ceom/internal/service/simulation"
)

// SimulationHandler serves the production-capacity simulator. The simulator
// is stateless, so the handler only validates input and relays results.
type SimulationHandler struct {
	logger *zap.Logger
}

// NewSimulationHandler constructs the HTTP adapter for the simulator.
func NewSimulationHandler(logger *zap.Logger) *SimulationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulationHandler{logger: logger}
}

// Estimate runs one capacity scenario. Period defaults to weekly.
func (h *SimulationHandler) Estimate(c *gin.Context) {
	var input simulation.CapacityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if input.Period == "" {
		input.Period = simulation.PeriodWeekly
	}

	result, err := simulation.Estimate(input)
	if errors.Is(err, simulation.ErrInvalidPeriod) || errors.Is(err, simulation.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logger.Error("simulation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "simulation failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}
