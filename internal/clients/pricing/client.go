package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/abrshewube/Google-Flights-Clone/internal/api/http/dto"
	derr "github.com/abrshewube/Google-Flights-Clone/internal/domain/errors"
	"github.com/abrshewube/Google-Flights-Clone/internal/domain/models"
	"github.com/abrshewube/Google-Flights-Clone/internal/infrastructures/skyscrapper/mappers"
)

// Client talks to the price proxy, which holds the upstream credentials.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "http://localhost:8080"
	}
	if timeout < 0 {
		timeout = 0
	}

	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) FetchPrices(ctx context.Context, query models.Query) ([]models.PriceDay, error) {
	reqURL, err := c.buildURL(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", derr.ErrFetchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", derr.ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: price proxy request: %v", derr.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: price proxy status: %s", derr.ErrFetchFailed, resp.Status)
	}

	var payload dto.PriceCalendarResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode price proxy response: %v", derr.ErrFetchFailed, err)
	}

	days, err := mappers.ToDomainDays(payload.Days)
	if err != nil {
		return nil, fmt.Errorf("%w: map price proxy days: %v", derr.ErrFetchFailed, err)
	}
	return days, nil
}

func (c *Client) buildURL(query models.Query) (string, error) {
	u, err := url.Parse(c.baseURL + "/v1/price-calendar")
	if err != nil {
		return "", fmt.Errorf("parse price proxy base url: %w", err)
	}

	q := u.Query()
	q.Set("origin", string(query.Origin))
	q.Set("destination", string(query.Destination))
	q.Set("date", query.FromDate())
	q.Set("currency", query.CurrencyOrDefault())
	u.RawQuery = q.Encode()
	return u.String(), nil
}
