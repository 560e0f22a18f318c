package skyscrapper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	derr "github.com/abrshewube/Google-Flights-Clone/internal/domain/errors"
	"github.com/abrshewube/Google-Flights-Clone/internal/domain/models"
	"github.com/abrshewube/Google-Flights-Clone/internal/infrastructures/skyscrapper/dto"
	"github.com/abrshewube/Google-Flights-Clone/internal/infrastructures/skyscrapper/mappers"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL = "https://sky-scrapper.p.rapidapi.com/api/v1/flights"
	defaultHost    = "sky-scrapper.p.rapidapi.com"

	headerAPIKey  = "X-RapidAPI-Key"
	headerAPIHost = "X-RapidAPI-Host"
)

type Client struct {
	baseURL    string
	apiKey     string
	apiHost    string
	httpClient *http.Client
}

// NewClient builds the upstream price-calendar client. A zero timeout leaves
// the transport defaults in place.
func NewClient(baseURL, apiKey, apiHost string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if strings.TrimSpace(apiHost) == "" {
		apiHost = defaultHost
	}
	if timeout < 0 {
		timeout = 0
	}

	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  strings.TrimSpace(apiKey),
		apiHost: strings.TrimSpace(apiHost),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// FetchPrices makes exactly one request. Every failure is reported as
// derr.ErrFetchFailed with the cause attached.
func (c *Client) FetchPrices(ctx context.Context, query models.Query) ([]models.PriceDay, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: %w", derr.ErrFetchFailed, derr.ErrEmptyAPIKey)
	}

	reqURL, err := c.buildURL(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", derr.ErrFetchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", derr.ErrFetchFailed, err)
	}
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerAPIHost, c.apiHost)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: skyscrapper request: %v", derr.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: skyscrapper status: %s", derr.ErrFetchFailed, resp.Status)
	}

	var payload dto.PriceCalendarResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode skyscrapper response: %v", derr.ErrFetchFailed, err)
	}
	if !payload.Status {
		return nil, fmt.Errorf("%w: skyscrapper reported status false", derr.ErrFetchFailed)
	}
	if payload.Data == nil || payload.Data.Flights == nil {
		return nil, fmt.Errorf("%w: skyscrapper response has no flights", derr.ErrFetchFailed)
	}

	days, err := mappers.ToDomainDays(payload.Data.Flights.Days)
	if err != nil {
		return nil, fmt.Errorf("%w: map skyscrapper days: %v", derr.ErrFetchFailed, err)
	}

	return days, nil
}

func (c *Client) buildURL(query models.Query) (string, error) {
	u, err := url.Parse(c.baseURL + "/getPriceCalendar")
	if err != nil {
		return "", fmt.Errorf("parse skyscrapper base url: %w", err)
	}

	q := u.Query()
	q.Set("originSkyId", strings.ToUpper(strings.TrimSpace(string(query.Origin))))
	q.Set("destinationSkyId", strings.ToUpper(strings.TrimSpace(string(query.Destination))))
	q.Set("fromDate", query.FromDate())
	q.Set("currency", strings.ToUpper(query.CurrencyOrDefault()))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
