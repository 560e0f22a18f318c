package models

import "time"

const DefaultCurrency = "USD"

type Query struct {
	Origin      IATACode
	Destination IATACode
	Date        time.Time
	Currency    string
}

func (q Query) FromDate() string {
	return q.Date.Format(DateLayout)
}

func (q Query) CurrencyOrDefault() string {
	if q.Currency == "" {
		return DefaultCurrency
	}
	return q.Currency
}
