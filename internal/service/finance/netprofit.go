package finance

// WeekSummary pairs a week bucket with the business's fixed costs for the
// same period.
type WeekSummary struct {
	WeekBucket
	FixedCosts float64 `json:"fixed_costs"`
	NetProfit  float64 `json:"net_profit"`
}

// NetProfit subtracts the weekly fixed-cost pool from a week's gross profit.
// All fixed costs are treated as weekly regardless of their stored frequency.
func NetProfit(bucket WeekBucket, fixedCostTotal float64) float64 {
	return bucket.GrossProfit - fixedCostTotal
}

// Summarize builds the full weekly summary for one bucket.
func Summarize(bucket WeekBucket, fixedCostTotal float64) WeekSummary {
	return WeekSummary{
		WeekBucket: bucket,
		FixedCosts: fixedCostTotal,
		NetProfit:  NetProfit(bucket, fixedCostTotal),
	}
}
