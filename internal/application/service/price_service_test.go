package service

import (
	"context"
	"errors"
	"testing"
	"time"

	derr "github.com/abrshewube/Google-Flights-Clone/internal/domain/errors"
	"github.com/abrshewube/Google-Flights-Clone/internal/domain/models"
	"github.com/abrshewube/Google-Flights-Clone/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
)

type testPriceSource struct {
	days    []models.PriceDay
	err     error
	queries []models.Query
}

func (f *testPriceSource) FetchPrices(ctx context.Context, query models.Query) ([]models.PriceDay, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.days, nil
}

func testQuery(origin, destination string) models.Query {
	return models.Query{
		Origin:      models.IATACode(origin),
		Destination: models.IATACode(destination),
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetPriceCalendar_ForwardsNormalizedQuery(t *testing.T) {
	source := &testPriceSource{days: []models.PriceDay{{Price: 10}, {Price: 20}}}
	svc := NewPriceService(zap.NewNop(), source, nil)

	got, err := svc.GetPriceCalendar(context.Background(), testQuery("jfk", " lax"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected days: %v", got)
	}
	if len(source.queries) != 1 {
		t.Fatalf("expected one source call, got %d", len(source.queries))
	}
	q := source.queries[0]
	if q.Origin != "JFK" || q.Destination != "LAX" || q.Currency != "USD" {
		t.Fatalf("unexpected forwarded query: %+v", q)
	}
}

func TestGetPriceCalendar_SameAirportSkipsSource(t *testing.T) {
	source := &testPriceSource{}
	svc := NewPriceService(nil, source, nil)

	_, err := svc.GetPriceCalendar(context.Background(), testQuery("JFK", "jfk"))
	if !errors.Is(err, derr.ErrSameAirport) {
		t.Fatalf("unexpected error: got %v want %v", err, derr.ErrSameAirport)
	}
	if len(source.queries) != 0 {
		t.Fatalf("pricing source must not be called, calls=%d", len(source.queries))
	}
}

func TestGetPriceCalendar_MissingFields(t *testing.T) {
	source := &testPriceSource{}
	svc := NewPriceService(nil, source, nil)

	_, err := svc.GetPriceCalendar(context.Background(), models.Query{Origin: "JFK", Destination: "LAX"})
	if !errors.Is(err, derr.ErrMissingFields) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetPriceCalendar_SourceErrorBecomesFetchFailed(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics("test", reg)
	source := &testPriceSource{err: errors.New("connection reset")}
	svc := NewPriceService(zap.NewNop(), source, m)

	_, err := svc.GetPriceCalendar(context.Background(), testQuery("JFK", "LAX"))
	if !errors.Is(err, derr.ErrFetchFailed) {
		t.Fatalf("unexpected error: got %v want %v", err, derr.ErrFetchFailed)
	}
	if len(source.queries) != 1 {
		t.Fatalf("expected a single attempt, got %d", len(source.queries))
	}
	if got := testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("error")); got != 1 {
		t.Fatalf("unexpected upstream error count: %v", got)
	}
	if got := testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("ok")); got != 0 {
		t.Fatalf("unexpected upstream ok count: %v", got)
	}
}
