package finance

import (
	"testing"

	"github.com/ceomapp/ceom/internal/domain/models"
)

func TestNetProfit(t *testing.T) {
	bucket := WeekBucket{Week: "2024-W03", Revenue: 200, VariableCost: 120, GrossProfit: 80}
	costs := []models.FixedCost{{Amount: 500}, {Amount: 300}}

	net := NetProfit(bucket, SumFixedCosts(costs))
	if !almostEqual(net, -720) {
		t.Fatalf("NetProfit = %v, want -720", net)
	}
}

func TestSummarize(t *testing.T) {
	bucket := WeekBucket{Week: "2024-W03", Revenue: 1000, VariableCost: 400, GrossProfit: 600}

	summary := Summarize(bucket, 150)
	if summary.Week != "2024-W03" || !almostEqual(summary.FixedCosts, 150) || !almostEqual(summary.NetProfit, 450) {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
