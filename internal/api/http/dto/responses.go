package dto

import (
	"github.com/abrshewube/Google-Flights-Clone/internal/domain/models"
	skydto "github.com/abrshewube/Google-Flights-Clone/internal/infrastructures/skyscrapper/dto"
)

type AirportsResponse struct {
	Airports []models.Airport `json:"airports"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
}

type PriceCalendarResponse struct {
	Origin      string                    `json:"origin"`
	Destination string                    `json:"destination"`
	FromDate    string                    `json:"from_date"`
	Currency    string                    `json:"currency"`
	Days        []skydto.PriceCalendarDay `json:"days"`
	Calendar    *CalendarPage             `json:"calendar,omitempty"`
}

type CalendarCell struct {
	Day    string  `json:"day"`
	Price  float64 `json:"price"`
	Tier   string  `json:"tier"`
	Lowest bool    `json:"lowest"`
	Peak   bool    `json:"peak"`
}

type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

type StripItem struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Current  bool `json:"current,omitempty"`
}

type CalendarPage struct {
	LowestPrice  float64        `json:"lowest_price"`
	HighestPrice float64        `json:"highest_price"`
	Cells        []CalendarCell `json:"cells"`
	Pagination   Pagination     `json:"pagination"`
	Strip        []StripItem    `json:"strip"`
}
