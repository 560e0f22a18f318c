package calendar

import (
	"time"

	"github.com/abrshewube/Google-Flights-Clone/internal/domain/models"
)

type Status uint8

const (
	StatusEmpty Status = iota
	StatusLoading
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	default:
		return "empty"
	}
}

type Cell struct {
	Index  int
	Day    time.Time
	Price  float64
	Tier   models.Tier
	Lowest bool
	Peak   bool
}

type View struct {
	Status     Status
	Currency   string
	Stats      Stats
	Cells      []Cell
	Page       int
	TotalPages int
	Total      int
	HasPrev    bool
	HasNext    bool
	Strip      []StripItem
}

// Build derives the page view. Nothing is computed while loading, and an
// empty record set yields the empty state.
func Build(days []models.PriceDay, loading bool, pager Pager, currency string) View {
	if currency == "" {
		currency = models.DefaultCurrency
	}
	if loading {
		return View{Status: StatusLoading, Currency: currency}
	}

	stats, ok := ComputeStats(days)
	if !ok {
		return View{Status: StatusEmpty, Currency: currency}
	}

	start, end := pager.Bounds()
	if end > len(days) {
		end = len(days)
	}
	if start > end {
		start = end
	}
	cells := make([]Cell, 0, end-start)
	for i := start; i < end; i++ {
		d := days[i]
		cells = append(cells, Cell{
			Index:  i,
			Day:    d.Day,
			Price:  d.Price,
			Tier:   stats.TierOf(d.Price),
			Lowest: stats.IsLowest(d.Price),
			Peak:   stats.IsPeak(d.Price),
		})
	}

	return View{
		Status:     StatusReady,
		Currency:   currency,
		Stats:      stats,
		Cells:      cells,
		Page:       pager.Page(),
		TotalPages: pager.TotalPages(),
		Total:      len(days),
		HasPrev:    pager.HasPrev(),
		HasNext:    pager.HasNext(),
		Strip:      Strip(pager.Page(), pager.TotalPages()),
	}
}
