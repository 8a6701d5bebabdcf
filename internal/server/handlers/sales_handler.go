package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ceomapp/ceom/internal/domain/models"
)

// SalesStore is the persistence surface for sale and event registration.
type SalesStore interface {
	BusinessGetter
	CreateSale(ctx context.Context, sale models.Sale) error
	ListSales(ctx context.Context, businessID string) ([]models.Sale, error)
	CreateEvent(ctx context.Context, event models.Event) error
	ListEvents(ctx context.Context, businessID string) ([]models.Event, error)
}

// SalesHandler serves sale registration and the sales history.
type SalesHandler struct {
	store  SalesStore
	logger *zap.Logger
}

// NewSalesHandler constructs the HTTP adapter for sales.
func NewSalesHandler(store SalesStore, logger *zap.Logger) *SalesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SalesHandler{store: store, logger: logger}
}

var validPaymentMethods = map[string]bool{
	models.PaymentCash:     true,
	models.PaymentQR:       true,
	models.PaymentTransfer: true,
	models.PaymentCard:     true,
}

type saleRequest struct {
	Date          string   `json:"date" binding:"required"`
	Product       string   `json:"product" binding:"required"`
	Quantity      int      `json:"quantity" binding:"required"`
	UnitPrice     *float64 `json:"unit_price" binding:"required"`
	PaymentMethod string   `json:"payment_method" binding:"required"`
	Event         string   `json:"event"`
}

// Create registers one sale. Total is computed server-side.
func (h *SalesHandler) Create(c *gin.Context) {
	business, ok := requireBusiness(c, h.store)
	if !ok {
		return
	}

	var req saleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	if req.Quantity <= 0 || *req.UnitPrice < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive and unit_price non-negative"})
		return
	}
	if !validPaymentMethods[req.PaymentMethod] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown payment method"})
		return
	}

	sale := models.Sale{
		ID:            uuid.NewString(),
		BusinessID:    business.ID,
		UserID:        callerIdentity(c).UserID,
		Date:          req.Date,
		Product:       req.Product,
		Quantity:      req.Quantity,
		UnitPrice:     *req.UnitPrice,
		Total:         float64(req.Quantity) * *req.UnitPrice,
		PaymentMethod: req.PaymentMethod,
		Event:         req.Event,
		CreatedAt:     time.Now().UTC(),
	}

	if err := h.store.CreateSale(c.Request.Context(), sale); err != nil {
		h.logger.Error("failed creating sale", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register sale"})
		return
	}

	c.JSON(http.StatusCreated, sale)
}

// List returns sales newest-first, filterable by from/to date, product name
// substring and payment method.
func (h *SalesHandler) List(c *gin.Context) {
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
	productFilter := strings.ToLower(c.Query("product"))
	paymentFilter := c.Query("paymentMethod")

	sales, err := h.store.ListSales(c.Request.Context(), business.ID)
	if err != nil {
		h.logger.Error("failed listing sales", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sales"})
		return
	}

	filtered := sales[:0]
	for _, sale := range sales {
		if paymentFilter != "" && sale.PaymentMethod != paymentFilter {
			continue
		}
		if productFilter != "" && !strings.Contains(strings.ToLower(sale.Product), productFilter) {
			continue
		}
		if !from.IsZero() || !to.IsZero() {
			date, err := time.Parse(dateLayout, sale.Date)
			if err != nil {
				continue
			}
			if !from.IsZero() && date.Before(from) {
				continue
			}
			if !to.IsZero() && date.After(to) {
				continue
			}
		}
		filtered = append(filtered, sale)
	}

	c.JSON(http.StatusOK, filtered)
}

type eventRequest struct {
	Name     string `json:"name" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Location string `json:"location"`
	Type     string `json:"type"`
}

// CreateEvent registers a sales event (fair, expo) sales can be tagged with.
func (h *SalesHandler) CreateEvent(c *gin.Context) {
	business, ok := requireBusiness(c, h.store)
	if !ok {
		return
	}

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	event := models.Event{
		ID:         uuid.NewString(),
		BusinessID: business.ID,
		Name:       req.Name,
		Date:       req.Date,
		Location:   req.Location,
		Type:       req.Type,
		CreatedAt:  time.Now().UTC(),
	}

	if err := h.store.CreateEvent(c.Request.Context(), event); err != nil {
		h.logger.Error("failed creating event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, event)
}

// ListEvents returns the events of one business.
func (h *SalesHandler) ListEvents(c *gin.Context) {
	business, ok := requireBusiness(c, h.store)
	if !ok {
		return
	}

	events, err := h.store.ListEvents(c.Request.Context(), business.ID)
	if err != nil {
		h.logger.Error("failed listing events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}

	c.JSON(http.StatusOK, events)
}
