// Package finance holds the financial aggregation engine: weekly grouping of
// production records, break-even analysis and net profit. Every function is
// pure and operates on slices the caller already loaded, so the same engine
// serves HTTP handlers, CSV exports and the reporting scheduler.
package finance

import (
	"fmt"
	"sort"
	"time"

	"github.com/ceomapp/ceom/internal/domain/models"
)

const dateLayout = "2006-01-02"

// WeekBucket accumulates one calendar week of production economics.
type WeekBucket struct {
	Week         string  `json:"week"`
	Revenue      float64 `json:"revenue"`
	VariableCost float64 `json:"variable_cost"`
	GrossProfit  float64 `json:"gross_profit"`
}

// WeekKey derives the ISO-8601 week key for a date, formatted "YYYY-W##".
// The week number is zero-padded to two digits so that a plain lexicographic
// sort of keys is also a chronological sort.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// GroupByWeek buckets production records into ISO calendar weeks, resolving
// each record's product to price and cost. Records whose product id does not
// resolve, or whose date does not parse, are skipped; the count of skipped
// records is returned so callers can surface the gap instead of hiding it.
func GroupByWeek(records []models.ProductionRecord, products []models.Product) (map[string]WeekBucket, int) {
	index := make(map[string]models.Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}

	buckets := make(map[string]WeekBucket)
	skipped := 0

	for _, rec := range records {
		product, ok := index[rec.ProductID]
		if !ok {
			skipped++
			continue
		}

		day, err := parseDate(rec.Date)
		if err != nil {
			skipped++
			continue
		}

		key := WeekKey(day)
		bucket := buckets[key]
		bucket.Week = key
		bucket.Revenue += product.Price * float64(rec.Quantity)
		bucket.VariableCost += product.Cost * float64(rec.Quantity)
		bucket.GrossProfit = bucket.Revenue - bucket.VariableCost
		buckets[key] = bucket
	}

	return buckets, skipped
}

// SortWeeksDesc returns the buckets ordered most-recent week first.
func SortWeeksDesc(buckets map[string]WeekBucket) []WeekBucket {
	out := make([]WeekBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Week > out[j].Week })
	return out
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if len(value) > len(dateLayout) {
		value = value[:len(dateLayout)]
	}
	return time.Parse(dateLayout, value)
}
