package mongodb

import (
	"context"
	"fmt"

	"github.com/ceomapp/ceom/internal/domain/models"
)

// SaveWeeklyReport persists one weekly financial snapshot.
func (r *Repository) SaveWeeklyReport(ctx context.Context, report models.WeeklyReport) error {
	if _, err := r.db.Collection(collWeeklyReports).InsertOne(ctx, report); err != nil {
		return fmt.Errorf("insert weekly report: %w", err)
	}
	return nil
}
