package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ceomapp/ceom/internal/domain/models"
	"github.com/ceomapp/ceom/internal/repository/mongodb"
)

// FixedCostStore is the persistence surface for fixed-cost tracking.
type FixedCostStore interface {
	BusinessGetter
	CreateFixedCost(ctx context.Context, cost models.FixedCost) error
	GetFixedCost(ctx context.Context, id string) (models.FixedCost, error)
	ListFixedCosts(ctx context.Context, businessID string) ([]models.FixedCost, error)
	UpdateFixedCost(ctx context.Context, id string, name string, amount float64, category string) error
	DeleteFixedCost(ctx context.Context, id string) error
}

// FixedCostHandler serves the recurring-cost register.
type FixedCostHandler struct {
	store  FixedCostStore
	logger *zap.Logger
}

// NewFixedCostHandler constructs the HTTP adapter for fixed costs.
func NewFixedCostHandler(store FixedCostStore, logger *zap.Logger) *FixedCostHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FixedCostHandler{store: store, logger: logger}
}

type fixedCostRequest struct {
	Name     string   `json:"name" binding:"required"`
	Amount   *float64 `json:"amount" binding:"required"`
	Category string   `json:"category"`
}

// Create registers a new fixed cost. Frequency is always stored as weekly;
// the financial summaries never normalize by it.
func (h *FixedCostHandler) Create(c *gin.Context) {
	business, ok := requireBusiness(c, h.store)
	if !ok {
		return
	}

	var req fixedCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if *req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}

	cost := models.FixedCost{
		ID:         uuid.NewString(),
		BusinessID: business.ID,
		UserID:     callerIdentity(c).UserID,
		Name:       req.Name,
		Amount:     *req.Amount,
		Frequency:  models.FrequencyWeekly,
		Category:   req.Category,
		CreatedAt:  time.Now().UTC(),
	}

	if err := h.store.CreateFixedCost(c.Request.Context(), cost); err != nil {
		h.logger.Error("failed creating fixed cost", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create fixed cost"})
		return
	}

	c.JSON(http.StatusCreated, cost)
}

// List returns every fixed cost of one business.
func (h *FixedCostHandler) List(c *gin.Context) {
	business, ok := requireBusiness(c, h.store)
	if !ok {
		return
	}

	costs, err := h.store.ListFixedCosts(c.Request.Context(), business.ID)
	if err != nil {
		h.logger.Error("failed listing fixed costs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list fixed costs"})
		return
	}

	c.JSON(http.StatusOK, costs)
}

// Update overwrites name, amount and category of an existing fixed cost.
func (h *FixedCostHandler) Update(c *gin.Context) {
	cost, ok := h.requireCost(c)
	if !ok {
		return
	}

	var req fixedCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if *req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}

	if err := h.store.UpdateFixedCost(c.Request.Context(), cost.ID, req.Name, *req.Amount, req.Category); err != nil {
		h.logger.Error("failed updating fixed cost", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update fixed cost"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete removes a fixed cost.
func (h *FixedCostHandler) Delete(c *gin.Context) {
	cost, ok := h.requireCost(c)
	if !ok {
		return
	}

	if err := h.store.DeleteFixedCost(c.Request.Context(), cost.ID); err != nil {
		h.logger.Error("failed deleting fixed cost", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete fixed cost"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FixedCostHandler) requireCost(c *gin.Context) (models.FixedCost, bool) {
	cost, err := h.store.GetFixedCost(c.Request.Context(), c.Param("id"))
	if errors.Is(err, mongodb.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "fixed cost not found"})
		return models.FixedCost{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load fixed cost"})
		return models.FixedCost{}, false
	}

	who := callerIdentity(c)
	if who.Role == models.RoleAdmin {
		return cost, true
	}
	business, err := h.store.GetBusiness(c.Request.Context(), cost.BusinessID)
	if err != nil || business.OwnerID != who.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "business does not belong to you"})
		return models.FixedCost{}, false
	}
	return cost, true
}
