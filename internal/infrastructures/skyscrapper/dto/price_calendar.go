package dto

type PriceCalendarDay struct {
	Day   string  `json:"day"`
	Group string  `json:"group"`
	Price float64 `json:"price"`
}

type PriceGroup struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type PriceCalendarFlights struct {
	NoPriceLabel string             `json:"noPriceLabel"`
	Groups       []PriceGroup       `json:"groups"`
	Days         []PriceCalendarDay `json:"days"`
}

type PriceCalendarData struct {
	Flights *PriceCalendarFlights `json:"flights"`
}

type PriceCalendarResponse struct {
	Status bool               `json:"status"`
	Data   *PriceCalendarData `json:"data"`
}
