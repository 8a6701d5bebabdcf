// Package reporting builds weekly financial snapshots for every business and
// fans them out to storage, the report webhook and the Sheets ledger.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ceomapp/ceom/internal/domain/models"
	"github.com/ceomapp/ceom/internal/service/finance"
	"github.com/ceomapp/ceom/pkg/clients/webhook"
)

// Store is the persistence surface the reporting run needs.
type Store interface {
	ListBusinesses(ctx context.Context) ([]models.Business, error)
	ListProducts(ctx context.Context, businessID string) ([]models.Product, error)
	ListProduction(ctx context.Context, businessID string) ([]models.ProductionRecord, error)
	ListFixedCosts(ctx context.Context, businessID string) ([]models.FixedCost, error)
	SaveWeeklyReport(ctx context.Context, report models.WeeklyReport) error
}

// RowAppender pushes one report row to an external spreadsheet.
type RowAppender interface {
	AppendRow(ctx context.Context, values []interface{}) error
}

// Service runs the weekly snapshot pass.
type Service struct {
	store    Store
	notifier webhook.Client
	sheet    RowAppender
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a reporting service. The notifier and sheet appender are
// optional; nil disables that delivery channel.
func NewService(store Store, notifier webhook.Client, sheet RowAppender, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    store,
		notifier: notifier,
		sheet:    sheet,
		logger:   logger,
		now:      time.Now,
	}
}

// RunWeeklySnapshot computes the most recent week's summary for every
// business that has production data, persists the snapshot, and delivers it
// to the configured channels. Per-business failures are logged and do not
// stop the pass.
func (s *Service) RunWeeklySnapshot(ctx context.Context) error {
	businesses, err := s.store.ListBusinesses(ctx)
	if err != nil {
		return fmt.Errorf("list businesses: %w", err)
	}

	for _, business := range businesses {
		if err := s.snapshotBusiness(ctx, business); err != nil {
			s.logger.Error("weekly snapshot failed",
				zap.String("business_id", business.ID),
				zap.Error(err))
		}
	}

	return nil
}

func (s *Service) snapshotBusiness(ctx context.Context, business models.Business) error {
	products, err := s.store.ListProducts(ctx, business.ID)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	records, err := s.store.ListProduction(ctx, business.ID)
	if err != nil {
		return fmt.Errorf("load production: %w", err)
	}
	costs, err := s.store.ListFixedCosts(ctx, business.ID)
	if err != nil {
		return fmt.Errorf("load fixed costs: %w", err)
	}

	buckets, skipped := finance.GroupByWeek(records, products)
	ordered := finance.SortWeeksDesc(buckets)
	if len(ordered) == 0 {
		s.logger.Debug("no production data, snapshot skipped", zap.String("business_id", business.ID))
		return nil
	}

	summary := finance.Summarize(ordered[0], finance.SumFixedCosts(costs))
	report := models.WeeklyReport{
		ID:             uuid.NewString(),
		BusinessID:     business.ID,
		BusinessName:   business.Name,
		Week:           summary.Week,
		Revenue:        summary.Revenue,
		VariableCost:   summary.VariableCost,
		GrossProfit:    summary.GrossProfit,
		FixedCosts:     summary.FixedCosts,
		NetProfit:      summary.NetProfit,
		SkippedRecords: skipped,
		CreatedAt:      s.now().UTC(),
	}

	if err := s.store.SaveWeeklyReport(ctx, report); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	if s.notifier != nil {
		msg := webhook.ReportMessage{
			BusinessID:     report.BusinessID,
			BusinessName:   report.BusinessName,
			Week:           report.Week,
			Revenue:        report.Revenue,
			VariableCost:   report.VariableCost,
			GrossProfit:    report.GrossProfit,
			FixedCosts:     report.FixedCosts,
			NetProfit:      report.NetProfit,
			SkippedRecords: report.SkippedRecords,
		}
		if err := s.notifier.SendReport(ctx, msg); err != nil {
			s.logger.Error("webhook delivery failed", zap.String("business_id", business.ID), zap.Error(err))
		}
	}

	if s.sheet != nil {
		row := []interface{}{
			report.CreatedAt.Format("2006-01-02"),
			report.BusinessName,
			report.Week,
			report.Revenue,
			report.VariableCost,
			report.GrossProfit,
			report.FixedCosts,
			report.NetProfit,
			report.SkippedRecords,
		}
		if err := s.sheet.AppendRow(ctx, row); err != nil {
			s.logger.Error("sheet export failed", zap.String("business_id", business.ID), zap.Error(err))
		}
	}

	s.logger.Info("weekly snapshot stored",
		zap.String("business_id", business.ID),
		zap.String("week", report.Week),
		zap.Float64("net_profit", report.NetProfit))
	return nil
}
