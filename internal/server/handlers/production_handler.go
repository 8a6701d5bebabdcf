package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ceomapp/ceom/internal/domain/models"
	"github.com/ceomapp/ceom/internal/export"
	"github.com/ceomapp/ceom/internal/repository/mongodb"
)

// ProductionStore is the persistence surface for production logging.
type ProductionStore interface {
	BusinessGetter
	CreateProductionRecord(ctx context.Context, record models.ProductionRecord) error
	GetProductionRecord(ctx context.Context, id string) (models.ProductionRecord, error)
	ListProduction(ctx context.Context, businessID string) ([]models.ProductionRecord, error)
	UpdateProductionQuantity(ctx context.Context, id string, quantity int) error
	DeleteProductionRecord(ctx context.Context, id string) error
	GetProduct(ctx context.Context, id string) (models.Product, error)
	ListProducts(ctx context.Context, businessID string) ([]models.Product, error)
}

// ProductionHandler serves the production log.
type ProductionHandler struct {
	store  ProductionStore
	logger *zap.Logger
}

// NewProductionHandler constructs the HTTP adapter for production records.
func NewProductionHandler(store ProductionStore, logger *zap.Logger) *ProductionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductionHandler{store: store, logger: logger}
}

type productionLine struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type productionRequest struct {
	Date  string           `json:"date" binding:"required"`
	Lines []productionLine `json:"lines" binding:"required,min=1"`
}

// Register stores one production record per line, all under the same date.
// Lines with a negative quantity are dropped and the rest persisted; every
// referenced product must exist and belong to the business.
func (h *ProductionHandler) Register(c *gin.Context) {
	business, ok := requireBusiness(c, h.store)
	if !ok {
		return
	}

	var req productionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	lines := req.Lines[:0]
	for _, line := range req.Lines {
		if line.Quantity >= 0 {
			lines = append(lines, line)
		}
	}

	ctx := c.Request.Context()
	for _, line := range lines {
		product, err := h.store.GetProduct(ctx, line.ProductID)
		if errors.Is(err, mongodb.ErrNotFound) || (err == nil && product.BusinessID != business.ID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown product: " + line.ProductID})
			return
		}
		if err != nil {
			h.logger.Error("failed resolving product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register production"})
			return
		}
	}

	who := callerIdentity(c)
	records := make([]models.ProductionRecord, 0, len(lines))
	for _, line := range lines {
		record := models.ProductionRecord{
			ID:           uuid.NewString(),
			BusinessID:   business.ID,
			ProductID:    line.ProductID,
			UserID:       who.UserID,
			Date:         req.Date,
			Quantity:     line.Quantity,
			RegisteredAt: time.Now().UTC(),
		}
		if err := h.store.CreateProductionRecord(ctx, record); err != nil {
			h.logger.Error("failed creating production record", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register production"})
			return
		}
		records = append(records, record)
	}

	c.JSON(http.StatusCreated, records)
}

// History returns production records newest-first, optionally bounded by
// from/to date query params (inclusive, on the production date).
func (h *ProductionHandler) History(c *gin.Context) {
	business, ok := requireBusiness(c, h.store)
	if !ok {
		return
	}

	from, okFrom := parseDateParam(c.Query("from"))
	to, okTo := parseDateParam(c.Query("to"))
	if !okFrom || !okTo {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from/to must be YYYY-MM-DD"})
		return
	}

	records, err := h.store.ListProduction(c.Request.Context(), business.ID)
	if err != nil {
		h.logger.Error("failed listing production", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list production"})
		return
	}

	filtered := records[:0]
	for _, record := range records {
		date, err := time.Parse(dateLayout, record.Date)
		if err != nil {
			// Keep unparseable rows visible in the history view.
			filtered = append(filtered, record)
			continue
		}
		if !from.IsZero() && date.Before(from) {
			continue
		}
		if !to.IsZero() && date.After(to) {
			continue
		}
		filtered = append(filtered, record)
	}

	c.JSON(http.StatusOK, filtered)
}

type quantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// UpdateQuantity patches the quantity of one production record.
func (h *ProductionHandler) UpdateQuantity(c *gin.Context) {
	record, ok := h.requireRecord(c)
	if !ok {
		return
	}

	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		return
	}

	if err := h.store.UpdateProductionQuantity(c.Request.Context(), record.ID, req.Quantity); err != nil {
		h.logger.Error("failed updating production quantity", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update record"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete removes one production record.
func (h *ProductionHandler) Delete(c *gin.Context) {
	record, ok := h.requireRecord(c)
	if !ok {
		return
	}

	if err := h.store.DeleteProductionRecord(c.Request.Context(), record.ID); err != nil {
		h.logger.Error("failed deleting production record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete record"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportCSV downloads the production history as CSV. Records pointing at
// deleted products are exported with the name "Producto desconocido".
func (h *ProductionHandler) ExportCSV(c *gin.Context) {
	business, ok := requireBusiness(c, h.store)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	records, err := h.store.ListProduction(ctx, business.ID)
	if err != nil {
		h.logger.Error("failed listing production", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export production"})
		return
	}
	products, err := h.store.ListProducts(ctx, business.ID)
	if err != nil {
		h.logger.Error("failed listing products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export production"})
		return
	}

	names := make(map[string]string, len(products))
	for _, product := range products {
		names[product.ID] = product.Name
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		name, found := names[record.ProductID]
		if !found {
			name = "Producto desconocido"
		}
		rows = append(rows, []string{
			name,
			record.Date,
			strconv.Itoa(record.Quantity),
			record.RegisteredAt.Format("2006-01-02 15:04"),
		})
	}

	body, err := export.CSV([]string{"Producto", "Fecha", "Cantidad", "Registrado"}, rows)
	if err != nil {
		h.logger.Error("failed building csv", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export production"})
		return
	}

	writeCSV(c, "produccion.csv", body)
}

func (h *ProductionHandler) requireRecord(c *gin.Context) (models.ProductionRecord, bool) {
	record, err := h.store.GetProductionRecord(c.Request.Context(), c.Param("id"))
	if errors.Is(err, mongodb.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "production record not found"})
		return models.ProductionRecord{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load record"})
		return models.ProductionRecord{}, false
	}

	who := callerIdentity(c)
	if who.Role == models.RoleAdmin {
		return record, true
	}
	business, err := h.store.GetBusiness(c.Request.Context(), record.BusinessID)
	if err != nil || business.OwnerID != who.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "business does not belong to you"})
		return models.ProductionRecord{}, false
	}
	return record, true
}
