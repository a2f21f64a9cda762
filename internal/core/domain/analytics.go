package domain

import "time"

// DailyMetrics is one bucket of a synthesized time series.
type DailyMetrics struct {
	Date        time.Time `json:"date"`
	Label       string    `json:"label"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Conversions int64     `json:"conversions"`
}

// AnalyticsMetrics are the aggregates of a snapshot. Rates are percentages and
// monetary values are in currency units, all rounded to two decimals.
type AnalyticsMetrics struct {
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
	CostPerClick   float64 `json:"cost_per_click"`
	TotalCost      float64 `json:"total_cost"`
	Revenue        float64 `json:"revenue"`
	ROI            float64 `json:"roi"`
}

// AnalyticsSnapshot is a simulated analytics result. It is derived on demand
// and never stored.
type AnalyticsSnapshot struct {
	CampaignID  string           `json:"campaign_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Series      []DailyMetrics   `json:"series"`
	Metrics     AnalyticsMetrics `json:"metrics"`
}
