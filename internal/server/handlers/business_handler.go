package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ceomapp/ceom/internal/domain/models"
)

// BusinessStore is the persistence surface for business management.
type BusinessStore interface {
	BusinessGetter
	CreateBusiness(ctx context.Context, business models.Business) error
	ListBusinesses(ctx context.Context) ([]models.Business, error)
	ListBusinessesByOwner(ctx context.Context, ownerID string) ([]models.Business, error)
	GetUser(ctx context.Context, id string) (models.User, error)
}

// BusinessHandler serves tenant creation and selection.
type BusinessHandler struct {
	store  BusinessStore
	logger *zap.Logger
}

// NewBusinessHandler constructs the HTTP adapter for businesses.
func NewBusinessHandler(store BusinessStore, logger *zap.Logger) *BusinessHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BusinessHandler{store: store, logger: logger}
}

type createBusinessRequest struct {
	Name        string `json:"name" binding:"required"`
	OwnerID     string `json:"owner_id" binding:"required"`
	Location    string `json:"location"`
	Category    string `json:"category" binding:"required"`
	Subcategory string `json:"subcategory"`
}

// Create registers a new business and assigns it to an owner. Admin only.
func (h *BusinessHandler) Create(c *gin.Context) {
	var req createBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	switch req.Category {
	case models.CategoryAlimentos, models.CategoryServicios, models.CategoryRetail:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	owner, err := h.store.GetUser(c.Request.Context(), req.OwnerID)
	if err != nil || owner.Role != models.RoleEmprendedor {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner must be an emprendedor account"})
		return
	}

	business := models.Business{
		ID:          uuid.NewString(),
		Name:        req.Name,
		OwnerID:     req.OwnerID,
		Location:    req.Location,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.store.CreateBusiness(c.Request.Context(), business); err != nil {
		h.logger.Error("failed creating business", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create business"})
		return
	}

	c.JSON(http.StatusCreated, business)
}

// List returns every business for admins and the caller's own businesses for
// emprendedores.
func (h *BusinessHandler) List(c *gin.Context) {
	who := callerIdentity(c)

	var (
		businesses []models.Business
		err        error
	)
	if who.Role == models.RoleAdmin {
		businesses, err = h.store.ListBusinesses(c.Request.Context())
	} else {
		businesses, err = h.store.ListBusinessesByOwner(c.Request.Context(), who.UserID)
	}
	if err != nil {
		h.logger.Error("failed listing businesses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list businesses"})
		return
	}

	c.JSON(http.StatusOK, businesses)
}

// Get returns one business, enforcing ownership.
func (h *BusinessHandler) Get(c *gin.Context) {
	business, ok := requireBusiness(c, h.store)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, business)
}
