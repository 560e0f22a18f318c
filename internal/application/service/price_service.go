package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	derr "github.com/abrshewube/Google-Flights-Clone/internal/domain/errors"
	"github.com/abrshewube/Google-Flights-Clone/internal/domain/models"
	"github.com/abrshewube/Google-Flights-Clone/internal/domain/ports"
	"github.com/abrshewube/Google-Flights-Clone/internal/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

type PriceService struct {
	log     *zap.Logger
	source  ports.PriceSource
	metrics *metrics.Metrics
}

func NewPriceService(log *zap.Logger, source ports.PriceSource, m *metrics.Metrics) *PriceService {
	if log == nil {
		log = zap.NewNop()
	}

	return &PriceService{
		log:     log,
		source:  source,
		metrics: m,
	}
}

// GetPriceCalendar forwards an already validated query to the pricing source
// exactly once.
func (s *PriceService) GetPriceCalendar(ctx context.Context, query models.Query) ([]models.PriceDay, error) {
	const op = "service.GetPriceCalendar"
	tracer := otel.Tracer("price-proxy/service")
	ctx, span := tracer.Start(ctx, op)
	defer span.End()

	origin := strings.ToUpper(strings.TrimSpace(string(query.Origin)))
	destination := strings.ToUpper(strings.TrimSpace(string(query.Destination)))
	span.SetAttributes(
		attribute.String("price.origin_iata", origin),
		attribute.String("price.destination_iata", destination),
		attribute.String("price.from_date", query.FromDate()),
		attribute.String("price.currency", query.CurrencyOrDefault()),
	)

	logger := s.log.With(
		zap.String("op", op),
		zap.String("origin_iata", origin),
		zap.String("destination_iata", destination),
		zap.String("from_date", query.FromDate()),
	)

	if origin == "" || destination == "" || query.Date.IsZero() {
		logger.Warn("incomplete query")
		span.SetStatus(otelcodes.Error, "incomplete query")
		return nil, derr.ErrMissingFields
	}
	if origin == destination {
		logger.Warn("invalid route: origin equals destination")
		span.SetStatus(otelcodes.Error, "invalid route")
		return nil, derr.ErrSameAirport
	}

	query.Origin = models.IATACode(origin)
	query.Destination = models.IATACode(destination)
	query.Currency = strings.ToUpper(query.CurrencyOrDefault())

	start := time.Now()
	days, err := s.source.FetchPrices(ctx, query)
	s.observeUpstream(time.Since(start), err)
	if err != nil {
		logger.Warn("failed to fetch price calendar", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "pricing source failed")
		if !errors.Is(err, derr.ErrFetchFailed) {
			err = fmt.Errorf("%w: %v", derr.ErrFetchFailed, err)
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("price.days_count", len(days)))
	span.SetStatus(otelcodes.Ok, "ok")
	logger.Info("price calendar fetched", zap.Int("days_count", len(days)))
	return days, nil
}

func (s *PriceService) observeUpstream(elapsed time.Duration, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.UpstreamDuration.Observe(elapsed.Seconds())
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.metrics.UpstreamRequests.WithLabelValues(result).Inc()
}
