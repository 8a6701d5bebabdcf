package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ceomapp/ceom/internal/domain/models"
	"github.com/ceomapp/ceom/internal/repository/mongodb"
	"github.com/ceomapp/ceom/internal/server/middleware"
)

type fakeFinanceStore struct {
	business models.Business
	products []models.Product
	records  []models.ProductionRecord
	costs    []models.FixedCost
}

func (f *fakeFinanceStore) GetBusiness(_ context.Context, id string) (models.Business, error) {
	if id != f.business.ID {
		return models.Business{}, mongodb.ErrNotFound
	}
	return f.business, nil
}

func (f *fakeFinanceStore) ListProducts(context.Context, string) ([]models.Product, error) {
	return f.products, nil
}

func (f *fakeFinanceStore) ListProduction(context.Context, string) ([]models.ProductionRecord, error) {
	return f.records, nil
}

func (f *fakeFinanceStore) ListFixedCosts(context.Context, string) ([]models.FixedCost, error) {
	return f.costs, nil
}

func newFinanceRouter(store *fakeFinanceStore, userID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxUserID, userID)
		c.Set(middleware.CtxRole, role)
	})

	h := NewFinanceHandler(store, nil)
	r.GET("/api/businesses/:id/finance/weekly", h.Weekly)
	r.GET("/api/businesses/:id/finance/weekly/export", h.ExportWeeklyCSV)
	r.GET("/api/businesses/:id/finance/weeks/:week", h.Week)
	r.GET("/api/businesses/:id/finance/break-even", h.BreakEven)
	return r
}

func testStore() *fakeFinanceStore {
	return &fakeFinanceStore{
		business: models.Business{ID: "biz-1", Name: "Panadería Sol", OwnerID: "user-1"},
		products: []models.Product{
			{ID: "A", Name: "Pan", Price: 20, Cost: 12},
		},
		records: []models.ProductionRecord{
			{ProductID: "A", Quantity: 10, Date: "2024-01-15"},
			{ProductID: "gone", Quantity: 5, Date: "2024-01-16"},
		},
		costs: []models.FixedCost{
			{Name: "Alquiler", Amount: 800, Category: "alquiler", CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func TestWeeklySummaries(t *testing.T) {
	r := newFinanceRouter(testStore(), "user-1", models.RoleEmprendedor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/biz-1/finance/weekly", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Weeks []struct {
			Week      string  `json:"week"`
			Revenue   float64 `json:"revenue"`
			NetProfit float64 `json:"net_profit"`
		} `json:"weeks"`
		SkippedRecords int `json:"skipped_records"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if len(resp.Weeks) != 1 {
		t.Fatalf("got %d weeks, want 1", len(resp.Weeks))
	}
	week := resp.Weeks[0]
	if week.Week != "2024-W03" {
		t.Errorf("week = %q, want 2024-W03", week.Week)
	}
	if week.Revenue != 200 {
		t.Errorf("revenue = %v, want 200", week.Revenue)
	}
	if week.NetProfit != -720 {
		t.Errorf("net profit = %v, want -720", week.NetProfit)
	}
	if resp.SkippedRecords != 1 {
		t.Errorf("skipped = %d, want 1", resp.SkippedRecords)
	}
}

func TestWeeklyOwnershipDenied(t *testing.T) {
	r := newFinanceRouter(testStore(), "intruder", models.RoleEmprendedor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/biz-1/finance/weekly", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestWeeklyAdminBypassesOwnership(t *testing.T) {
	r := newFinanceRouter(testStore(), "admin-1", models.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/biz-1/finance/weekly", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestWeekNotFound(t *testing.T) {
	r := newFinanceRouter(testStore(), "user-1", models.RoleEmprendedor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/biz-1/finance/weeks/2030-W01", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestBreakEvenEndpoint(t *testing.T) {
	store := testStore()
	store.products = []models.Product{
		{ID: "A", Name: "Pan", Price: 50, Cost: 10},
		{ID: "B", Name: "Muestra", Price: 10, Cost: 10},
	}
	store.costs = []models.FixedCost{
		{Name: "Alquiler", Amount: 4000, Category: "alquiler", CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
	}
	r := newFinanceRouter(store, "user-1", models.RoleEmprendedor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/biz-1/finance/break-even", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var report struct {
		Products []struct {
			Name       string  `json:"name"`
			Units      float64 `json:"units"`
			Applicable bool    `json:"applicable"`
		} `json:"products"`
		AggregateUnits float64 `json:"aggregate_units"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if len(report.Products) != 2 {
		t.Fatalf("got %d products, want 2", len(report.Products))
	}
	if !report.Products[0].Applicable || report.Products[0].Units != 100 {
		t.Errorf("pan = %+v, want applicable with 100 units", report.Products[0])
	}
	if report.Products[1].Applicable {
		t.Errorf("zero-margin product flagged applicable")
	}
	if report.AggregateUnits != 100 {
		t.Errorf("aggregate units = %v, want 100", report.AggregateUnits)
	}
}

func TestBreakEvenRejectsBadDates(t *testing.T) {
	r := newFinanceRouter(testStore(), "user-1", models.RoleEmprendedor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/biz-1/finance/break-even?from=15-01-2024", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestWeeklyCSVExport(t *testing.T) {
	r := newFinanceRouter(testStore(), "user-1", models.RoleEmprendedor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/biz-1/finance/weekly/export", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "resumen_semanal.csv") {
		t.Errorf("content disposition = %q", got)
	}
	body := w.Body.String()
	if !strings.HasPrefix(body, "Semana,Ingresos,Costos Variables,Utilidad Bruta,Costos Fijos,Utilidad Neta\n") {
		t.Errorf("unexpected csv header: %q", body)
	}
	if !strings.Contains(body, "2024-W03,200.00,120.00,80.00,800.00,-720.00") {
		t.Errorf("csv missing week row: %q", body)
	}
}
