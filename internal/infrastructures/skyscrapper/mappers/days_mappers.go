package mappers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/abrshewube/Google-Flights-Clone/internal/domain/models"
	"github.com/abrshewube/Google-Flights-Clone/internal/infrastructures/skyscrapper/dto"
)

// ToDomainDays keeps the upstream order. Any unparsable day or price makes
// the whole payload malformed.
func ToDomainDays(days []dto.PriceCalendarDay) ([]models.PriceDay, error) {
	result := make([]models.PriceDay, 0, len(days))
	for i, item := range days {
		day, err := parseDay(item.Day)
		if err != nil {
			return nil, fmt.Errorf("day %d: %w", i, err)
		}
		if math.IsNaN(item.Price) || math.IsInf(item.Price, 0) || item.Price < 0 {
			return nil, fmt.Errorf("day %d: invalid price %v", i, item.Price)
		}
		result = append(result, models.PriceDay{
			Day:   day,
			Group: models.ParseTier(item.Group),
			Price: item.Price,
		})
	}
	return result, nil
}

func FromDomainDays(days []models.PriceDay) []dto.PriceCalendarDay {
	result := make([]dto.PriceCalendarDay, 0, len(days))
	for _, d := range days {
		group := ""
		if d.Group != models.TierUnspecified {
			group = d.Group.String()
		}
		result = append(result, dto.PriceCalendarDay{
			Day:   d.DayString(),
			Group: group,
			Price: d.Price,
		})
	}
	return result
}

func parseDay(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty day")
	}

	layouts := []string{
		models.DateLayout,
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("unparsable day %q", value)
}
