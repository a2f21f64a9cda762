package usecase

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"campaign-desk/internal/core/domain"
)

// DefaultDaySpan is the number of daily buckets in a snapshot when the caller
// does not ask for a specific span.
const DefaultDaySpan = 14

// Range is a half-open interval [Min, Max) a random parameter is drawn from.
type Range struct {
	Min float64
	Max float64
}

func (r Range) draw(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// AnalyticsModel holds the parameters of the simulated funnel.
type AnalyticsModel struct {
	// BaseImpressions is the daily impression volume before trend and noise.
	BaseImpressions Range
	// ClickThroughRate and ConversionRate are fractions, not percentages.
	ClickThroughRate Range
	ConversionRate   Range
	// DailyVariation scales every metric of every day independently.
	DailyVariation Range
	// Trend is the growth reached by the last day: day i is scaled by
	// 1 + i/daySpan*Trend.
	Trend             float64
	CostPerClick      Range
	AverageOrderValue Range
}

// DefaultAnalyticsModel returns the dashboard's simulation parameters.
func DefaultAnalyticsModel() AnalyticsModel {
	return AnalyticsModel{
		BaseImpressions:   Range{Min: 500, Max: 1500},
		ClickThroughRate:  Range{Min: 0.01, Max: 0.04},
		ConversionRate:    Range{Min: 0.005, Max: 0.025},
		DailyVariation:    Range{Min: 0.8, Max: 1.2},
		Trend:             0.5,
		CostPerClick:      Range{Min: 0.5, Max: 2.0},
		AverageOrderValue: Range{Min: 30, Max: 100},
	}
}

// Synthesizer derives simulated analytics for a campaign. It keeps no state
// between calls: every call draws from a fresh random source.
type Synthesizer struct {
	model   AnalyticsModel
	newRand func() *rand.Rand
}

// NewSynthesizer creates a synthesizer. newRand supplies the random source for
// one call; nil selects a source seeded from crypto/rand on every call. Tests
// pass a seeded factory to pin the output.
func NewSynthesizer(model AnalyticsModel, newRand func() *rand.Rand) *Synthesizer {
	if newRand == nil {
		newRand = randomSource
	}
	return &Synthesizer{model: model, newRand: newRand}
}

// Synthesize builds daySpan consecutive daily buckets ending on the calendar
// day of now, plus aggregate metrics. daySpan <= 0 selects DefaultDaySpan.
//
// Random draws happen in a fixed order: base volume, click-through rate,
// conversion rate, then three independent variations per day (impressions,
// clicks, conversions), then cost per click and average order value.
// Conversions stay below clicks and clicks below impressions in aggregate,
// but nothing forces it per day.
func (s *Synthesizer) Synthesize(campaign domain.Campaign, daySpan int, now time.Time) domain.AnalyticsSnapshot {
	if daySpan <= 0 {
		daySpan = DefaultDaySpan
	}
	rng := s.newRand()
	m := s.model

	base := math.Floor(m.BaseImpressions.draw(rng))
	ctr := m.ClickThroughRate.draw(rng)
	cvr := m.ConversionRate.draw(rng)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	series := make([]domain.DailyMetrics, 0, daySpan)
	var impressions, clicks, conversions int64

	for i := 0; i < daySpan; i++ {
		dayFactor := 1 + float64(i)/float64(daySpan)*m.Trend

		dayImpressions := math.Floor(base * dayFactor * m.DailyVariation.draw(rng))
		dayClicks := math.Floor(dayImpressions * ctr * m.DailyVariation.draw(rng))
		dayConversions := math.Floor(dayClicks * cvr * m.DailyVariation.draw(rng))

		date := today.AddDate(0, 0, -(daySpan - 1 - i))
		bucket := domain.DailyMetrics{
			Date:        date,
			Label:       date.Format("Jan 2"),
			Impressions: int64(dayImpressions),
			Clicks:      int64(dayClicks),
			Conversions: int64(dayConversions),
		}
		series = append(series, bucket)

		impressions += bucket.Impressions
		clicks += bucket.Clicks
		conversions += bucket.Conversions
	}

	costPerClick := m.CostPerClick.draw(rng)
	averageOrderValue := m.AverageOrderValue.draw(rng)
	totalCost := float64(clicks) * costPerClick
	revenue := float64(conversions) * averageOrderValue

	return domain.AnalyticsSnapshot{
		CampaignID:  campaign.ID,
		GeneratedAt: now,
		Series:      series,
		Metrics: domain.AnalyticsMetrics{
			Impressions:    impressions,
			Clicks:         clicks,
			Conversions:    conversions,
			CTR:            round2(percent(float64(clicks), float64(impressions))),
			ConversionRate: round2(percent(float64(conversions), float64(clicks))),
			CostPerClick:   round2(costPerClick),
			TotalCost:      round2(totalCost),
			Revenue:        round2(revenue),
			ROI:            round2(percent(revenue-totalCost, totalCost)),
		},
	}
}

// percent returns num/den*100, or 0 when den is zero.
func percent(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den * 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func randomSource() *rand.Rand {
	var seed int64
	if err := binary.Read(crand.Reader, binary.LittleEndian, &seed); err != nil {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
