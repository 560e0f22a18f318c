package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/abrshewube/Google-Flights-Clone/internal/api/http/dto"
	"github.com/abrshewube/Google-Flights-Clone/internal/calendar"
	derr "github.com/abrshewube/Google-Flights-Clone/internal/domain/errors"
	"github.com/abrshewube/Google-Flights-Clone/internal/domain/models"
	"github.com/abrshewube/Google-Flights-Clone/internal/infrastructures/skyscrapper/mappers"
	"github.com/abrshewube/Google-Flights-Clone/internal/metrics"
	"github.com/abrshewube/Google-Flights-Clone/internal/search"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PriceCalendarService interface {
	GetPriceCalendar(ctx context.Context, query models.Query) ([]models.PriceDay, error)
}

type CalendarHandler struct {
	log      *zap.Logger
	service  PriceCalendarService
	registry search.CodeValidator
	metrics  *metrics.Metrics
}

func NewCalendarHandler(log *zap.Logger, service PriceCalendarService, registry search.CodeValidator, m *metrics.Metrics) *CalendarHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CalendarHandler{
		log:      log,
		service:  service,
		registry: registry,
		metrics:  m,
	}
}

func (h *CalendarHandler) Register(router *gin.RouterGroup) {
	router.GET("/price-calendar", h.GetPriceCalendar)
}

func (h *CalendarHandler) GetPriceCalendar(c *gin.Context) {
	var date *time.Time
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		parsed, err := time.Parse(models.DateLayout, raw)
		if err != nil {
			h.reject(c, derr.ErrInvalidDate)
			return
		}
		date = &parsed
	}

	currency := strings.TrimSpace(c.Query("currency"))
	if currency == "" {
		currency = models.DefaultCurrency
	}
	if !isValidCurrency(currency) {
		writeError(c, http.StatusBadRequest, "invalid_currency", "currency must be 3 latin letters")
		return
	}

	page, pagePresent, pageErr := parsePositiveIntQuery(c, "page")
	if pageErr != "" {
		writeError(c, http.StatusBadRequest, "invalid_page", "page must be a positive integer")
		return
	}

	query, err := search.Validate(h.registry, c.Query("origin"), c.Query("destination"), date)
	if err != nil {
		h.reject(c, err)
		return
	}
	query.Currency = strings.ToUpper(currency)

	days, err := h.service.GetPriceCalendar(c.Request.Context(), query)
	if err != nil {
		if derr.IsValidation(err) {
			h.reject(c, err)
			return
		}
		h.log.Error("get price calendar failed",
			zap.Error(err),
			zap.String("origin_iata", string(query.Origin)),
			zap.String("destination_iata", string(query.Destination)),
		)
		n := search.FetchFailedNotification
		writeJSON(c, http.StatusBadGateway, dto.ErrorResponse{Error: search.Code(derr.ErrFetchFailed), Title: n.Title, Message: n.Message})
		return
	}

	resp := dto.PriceCalendarResponse{
		Origin:      string(query.Origin),
		Destination: string(query.Destination),
		FromDate:    query.FromDate(),
		Currency:    query.Currency,
		Days:        mappers.FromDomainDays(days),
	}
	if pagePresent {
		pager := calendar.NewPager(len(days))
		pager.SetPage(page)
		resp.Calendar = mapCalendarPage(calendar.Build(days, false, pager, query.Currency), pager.PageSize())
	}

	writeJSON(c, http.StatusOK, resp)
}

func (h *CalendarHandler) reject(c *gin.Context, err error) {
	code := search.Code(err)
	if h.metrics != nil {
		h.metrics.SearchRejected.WithLabelValues(code).Inc()
	}
	n := search.NotificationFor(err)
	writeJSON(c, http.StatusBadRequest, dto.ErrorResponse{Error: code, Title: n.Title, Message: n.Message})
}

func mapCalendarPage(v calendar.View, pageSize int) *dto.CalendarPage {
	out := &dto.CalendarPage{
		LowestPrice:  v.Stats.Lowest,
		HighestPrice: v.Stats.Highest,
		Cells:        make([]dto.CalendarCell, 0, len(v.Cells)),
		Pagination: dto.Pagination{
			Page:       v.Page,
			PageSize:   pageSize,
			Total:      v.Total,
			TotalPages: v.TotalPages,
			HasPrev:    v.HasPrev,
			HasNext:    v.HasNext,
		},
		Strip: make([]dto.StripItem, 0, len(v.Strip)),
	}
	if v.Status == calendar.StatusEmpty {
		out.Pagination.Page = 1
	}
	for _, cell := range v.Cells {
		out.Cells = append(out.Cells, dto.CalendarCell{
			Day:    cell.Day.Format(models.DateLayout),
			Price:  cell.Price,
			Tier:   cell.Tier.String(),
			Lowest: cell.Lowest,
			Peak:   cell.Peak,
		})
	}
	for _, item := range v.Strip {
		out.Strip = append(out.Strip, dto.StripItem{Page: item.Page, Ellipsis: item.Ellipsis, Current: item.Current})
	}
	return out
}
