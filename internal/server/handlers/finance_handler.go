package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ceomapp/ceom/internal/domain/models"
	"github.com/ceomapp/ceom/internal/export"
	"github.com/ceomapp/ceom/internal/service/finance"
)

// FinanceStore is the read surface the aggregation endpoints run on.
type FinanceStore interface {
	BusinessGetter
	ListProducts(ctx context.Context, businessID string) ([]models.Product, error)
	ListProduction(ctx context.Context, businessID string) ([]models.ProductionRecord, error)
	ListFixedCosts(ctx context.Context, businessID string) ([]models.FixedCost, error)
}

// FinanceHandler serves the weekly summaries and break-even analysis.
type FinanceHandler struct {
	store  FinanceStore
	logger *zap.Logger
}

// NewFinanceHandler constructs the HTTP adapter for the financial engine.
func NewFinanceHandler(store FinanceStore, logger *zap.Logger) *FinanceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FinanceHandler{store: store, logger: logger}
}

type weeklyResponse struct {
	Weeks          []finance.WeekSummary `json:"weeks"`
	SkippedRecords int                   `json:"skipped_records"`
}

// Weekly returns every week of a business as a full summary, newest first.
// The response carries the count of production records left out of the
// aggregation because their product was deleted or their date is malformed.
func (h *FinanceHandler) Weekly(c *gin.Context) {
	business, ok := requireBusiness(c, h.store)
	if !ok {
		return
	}

	summaries, skipped, ok := h.summarizeWeeks(c, business.ID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, weeklyResponse{Weeks: summaries, SkippedRecords: skipped})
}

// Week returns the summary for a single "YYYY-W##" week key.
func (h *FinanceHandler) Week(c *gin.Context) {
	business, ok := requireBusiness(c, h.store)
	if !ok {
		return
	}

	summaries, _, ok := h.summarizeWeeks(c, business.ID)
	if !ok {
		return
	}

	week := c.Param("week")
	for _, s := range summaries {
		if s.Week == week {
			c.JSON(http.StatusOK, s)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "no production recorded for week " + week})
}

// BreakEven computes per-product and aggregate break-even units over a fixed
// cost pool restricted by the from/to/category query params.
func (h *FinanceHandler) BreakEven(c *gin.Context) {
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

	ctx := c.Request.Context()
	products, err := h.store.ListProducts(ctx, business.ID)
	if err != nil {
		h.logger.Error("failed listing products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to run break-even analysis"})
		return
	}
	costs, err := h.store.ListFixedCosts(ctx, business.ID)
	if err != nil {
		h.logger.Error("failed listing fixed costs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to run break-even analysis"})
		return
	}

	filter := finance.CostFilter{From: from, To: to, Category: c.Query("category")}
	pool := finance.SumFixedCosts(finance.FilterFixedCosts(costs, filter))

	c.JSON(http.StatusOK, finance.BreakEven(pool, products))
}

// ExportWeeklyCSV downloads the weekly summaries as CSV.
func (h *FinanceHandler) ExportWeeklyCSV(c *gin.Context) {
	business, ok := requireBusiness(c, h.store)
	if !ok {
		return
	}

	summaries, _, ok := h.summarizeWeeks(c, business.ID)
	if !ok {
		return
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Week,
			formatAmount(s.Revenue),
			formatAmount(s.VariableCost),
			formatAmount(s.GrossProfit),
			formatAmount(s.FixedCosts),
			formatAmount(s.NetProfit),
		})
	}

	body, err := export.CSV([]string{"Semana", "Ingresos", "Costos Variables", "Utilidad Bruta", "Costos Fijos", "Utilidad Neta"}, rows)
	if err != nil {
		h.logger.Error("failed building csv", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export summary"})
		return
	}

	writeCSV(c, "resumen_semanal.csv", body)
}

// ExportBreakEvenCSV downloads the break-even analysis as CSV. Products that
// cannot break even are exported with "No aplica" in the units column.
func (h *FinanceHandler) ExportBreakEvenCSV(c *gin.Context) {
	business, ok := requireBusiness(c, h.store)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	products, err := h.store.ListProducts(ctx, business.ID)
	if err != nil {
		h.logger.Error("failed listing products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export break-even"})
		return
	}
	costs, err := h.store.ListFixedCosts(ctx, business.ID)
	if err != nil {
		h.logger.Error("failed listing fixed costs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export break-even"})
		return
	}

	report := finance.BreakEven(finance.SumFixedCosts(costs), products)

	rows := make([][]string, 0, len(report.Products))
	for _, p := range report.Products {
		units := "No aplica"
		if p.Applicable {
			units = formatAmount(p.Units)
		}
		rows = append(rows, []string{p.Name, formatAmount(p.Price), formatAmount(p.Cost), units})
	}

	body, err := export.CSV([]string{"Producto", "Precio", "Costo Variable", "Punto de Equilibrio"}, rows)
	if err != nil {
		h.logger.Error("failed building csv", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export break-even"})
		return
	}

	writeCSV(c, "punto_equilibrio.csv", body)
}

// summarizeWeeks loads a business's data and folds it into sorted weekly
// summaries. On failure the HTTP error is already written.
func (h *FinanceHandler) summarizeWeeks(c *gin.Context, businessID string) ([]finance.WeekSummary, int, bool) {
	ctx := c.Request.Context()

	records, err := h.store.ListProduction(ctx, businessID)
	if err != nil {
		h.logger.Error("failed listing production", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return nil, 0, false
	}
	products, err := h.store.ListProducts(ctx, businessID)
	if err != nil {
		h.logger.Error("failed listing products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return nil, 0, false
	}
	costs, err := h.store.ListFixedCosts(ctx, businessID)
	if err != nil {
		h.logger.Error("failed listing fixed costs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return nil, 0, false
	}

	buckets, skipped := finance.GroupByWeek(records, products)
	fixedTotal := finance.SumFixedCosts(costs)

	weeks := finance.SortWeeksDesc(buckets)
	summaries := make([]finance.WeekSummary, 0, len(weeks))
	for _, bucket := range weeks {
		summaries = append(summaries, finance.Summarize(bucket, fixedTotal))
	}
	return summaries, skipped, true
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
