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
	"github.com/ceomapp/ceom/internal/service/pricing"
)

// ProductStore is the persistence surface for catalog management.
type ProductStore interface {
	BusinessGetter
	CreateProduct(ctx context.Context, product models.Product) error
	GetProduct(ctx context.Context, id string) (models.Product, error)
	ListProducts(ctx context.Context, businessID string) ([]models.Product, error)
	UpdateProduct(ctx context.Context, id string, name string, price, cost float64) error
	DeleteProduct(ctx context.Context, id string) error
}

// ProductHandler serves the product catalog and the pricing calculator.
type ProductHandler struct {
	store  ProductStore
	logger *zap.Logger
}

// NewProductHandler constructs the HTTP adapter for products.
func NewProductHandler(store ProductStore, logger *zap.Logger) *ProductHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductHandler{store: store, logger: logger}
}

type productRequest struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
	Cost  *float64 `json:"cost" binding:"required"`
}

func (r productRequest) validate() error {
	if *r.Price < 0 || *r.Cost < 0 {
		return errors.New("price and cost must be non-negative")
	}
	return nil
}

// Create adds a product to the business catalog.
func (h *ProductHandler) Create(c *gin.Context) {
	business, ok := requireBusiness(c, h.store)
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := models.Product{
		ID:         uuid.NewString(),
		BusinessID: business.ID,
		UserID:     callerIdentity(c).UserID,
		Name:       req.Name,
		Price:      *req.Price,
		Cost:       *req.Cost,
		CreatedAt:  time.Now().UTC(),
	}

	if err := h.store.CreateProduct(c.Request.Context(), product); err != nil {
		h.logger.Error("failed creating product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// List returns the catalog of one business.
func (h *ProductHandler) List(c *gin.Context) {
	business, ok := requireBusiness(c, h.store)
	if !ok {
		return
	}

	products, err := h.store.ListProducts(c.Request.Context(), business.ID)
	if err != nil {
		h.logger.Error("failed listing products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// Update overwrites name, price and cost of an existing product.
func (h *ProductHandler) Update(c *gin.Context) {
	product, ok := h.requireProduct(c)
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.UpdateProduct(c.Request.Context(), product.ID, req.Name, *req.Price, *req.Cost); err != nil {
		h.logger.Error("failed updating product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete removes a product from the catalog.
func (h *ProductHandler) Delete(c *gin.Context) {
	product, ok := h.requireProduct(c)
	if !ok {
		return
	}

	if err := h.store.DeleteProduct(c.Request.Context(), product.ID); err != nil {
		h.logger.Error("failed deleting product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}

	c.Status(http.StatusNoContent)
}

type pricingRequest struct {
	Items         []pricing.CostItem `json:"items" binding:"required"`
	LaborPercent  float64            `json:"labor_percent"`
	BatchQuantity int                `json:"batch_quantity"`
	ProductName   string             `json:"product_name"`
	Save          bool               `json:"save"`
}

// Quote runs the suggested-price calculator for the business's category and
// optionally saves the outcome as a catalog product.
func (h *ProductHandler) Quote(c *gin.Context) {
	business, ok := requireBusiness(c, h.store)
	if !ok {
		return
	}

	var req pricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	quote := pricing.Suggest(business.Category, req.Items, req.LaborPercent, req.BatchQuantity)

	if !req.Save {
		c.JSON(http.StatusOK, quote)
		return
	}

	if req.ProductName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_name is required to save"})
		return
	}

	product := models.Product{
		ID:         uuid.NewString(),
		BusinessID: business.ID,
		UserID:     callerIdentity(c).UserID,
		Name:       req.ProductName,
		Price:      quote.SuggestedPrice,
		Cost:       quote.UnitCost,
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.store.CreateProduct(c.Request.Context(), product); err != nil {
		h.logger.Error("failed saving quoted product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"quote": quote, "product": product})
}

// requireProduct loads the product from the :id route param and checks the
// caller owns the business it belongs to.
func (h *ProductHandler) requireProduct(c *gin.Context) (models.Product, bool) {
	product, err := h.store.GetProduct(c.Request.Context(), c.Param("id"))
	if errors.Is(err, mongodb.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return models.Product{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
		return models.Product{}, false
	}

	if !h.authorizeBusiness(c, product.BusinessID) {
		return models.Product{}, false
	}
	return product, true
}

func (h *ProductHandler) authorizeBusiness(c *gin.Context, businessID string) bool {
	who := callerIdentity(c)
	if who.Role == models.RoleAdmin {
		return true
	}

	business, err := h.store.GetBusiness(c.Request.Context(), businessID)
	if err != nil || business.OwnerID != who.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "business does not belong to you"})
		return false
	}
	return true
}
