package ports

import (
	"context"

	"github.com/abrshewube/Google-Flights-Clone/internal/domain/models"
)

type PriceSource interface {
	FetchPrices(ctx context.Context, query models.Query) ([]models.PriceDay, error)
}

type AirportRegistry interface {
	Lookup(code string) (string, bool)
	IsValid(code string) bool
	All() []models.Airport
}
