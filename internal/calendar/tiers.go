// Package calendar turns a set of price-day records into a paginated,
// tier-coloured calendar and renders it to a terminal.
package calendar

import "github.com/abrshewube/Google-Flights-Clone/internal/domain/models"

const (
	lowShare    = 0.33
	mediumShare = 0.66
)

// Stats are computed over the full record set, never over a single page.
type Stats struct {
	Lowest     float64 `json:"lowest_price"`
	Highest    float64 `json:"highest_price"`
	Threshold1 float64 `json:"low_threshold"`
	Threshold2 float64 `json:"medium_threshold"`
}

func ComputeStats(days []models.PriceDay) (Stats, bool) {
	if len(days) == 0 {
		return Stats{}, false
	}

	lowest, highest := days[0].Price, days[0].Price
	for _, d := range days[1:] {
		if d.Price < lowest {
			lowest = d.Price
		}
		if d.Price > highest {
			highest = d.Price
		}
	}

	spread := highest - lowest
	return Stats{
		Lowest:     lowest,
		Highest:    highest,
		Threshold1: lowest + spread*lowShare,
		Threshold2: lowest + spread*mediumShare,
	}, true
}

// TierOf places a price relative to the thresholds. With equal prices both
// thresholds collapse onto Lowest and every price is low.
func (s Stats) TierOf(price float64) models.Tier {
	switch {
	case price <= s.Threshold1:
		return models.TierLow
	case price <= s.Threshold2:
		return models.TierMedium
	default:
		return models.TierHigh
	}
}

func (s Stats) IsLowest(price float64) bool {
	return price == s.Lowest
}

func (s Stats) IsPeak(price float64) bool {
	return price == s.Highest
}
