package models

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type Tier uint8

const (
	TierUnspecified Tier = iota
	TierLow
	TierMedium
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	default:
		return "unspecified"
	}
}

func ParseTier(value string) Tier {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "low":
		return TierLow
	case "medium":
		return TierMedium
	case "high":
		return TierHigh
	default:
		return TierUnspecified
	}
}

// PriceDay is one calendar day's quoted fare. Group is the tier reported by
// the pricing source; the displayed tier is always recomputed from Price.
type PriceDay struct {
	Day   time.Time
	Group Tier
	Price float64
}

func (p PriceDay) DayString() string {
	return p.Day.Format(DateLayout)
}
