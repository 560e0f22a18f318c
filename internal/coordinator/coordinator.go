package coordinator

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/abrshewube/Google-Flights-Clone/internal/calendar"
	"github.com/abrshewube/Google-Flights-Clone/internal/domain/models"
	"github.com/abrshewube/Google-Flights-Clone/internal/domain/ports"
	"github.com/abrshewube/Google-Flights-Clone/internal/search"
	"go.uber.org/zap"
)

// State is everything the calendar screen shows.
type State struct {
	Query   *models.Query
	Days    []models.PriceDay
	Loading bool
	Notice  *search.Notification
	Pager   calendar.Pager

	latest uint64
}

type Coordinator struct {
	log    *zap.Logger
	source ports.PriceSource
	notify search.NotifyFunc

	seq   atomic.Uint64
	mu    sync.Mutex
	state State
}

type Option func(*Coordinator)

// WithNotifier receives every notification the coordinator raises.
func WithNotifier(notify search.NotifyFunc) Option {
	return func(c *Coordinator) {
		c.notify = notify
	}
}

func New(log *zap.Logger, source ports.PriceSource, opts ...Option) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}

	c := &Coordinator{
		log:    log,
		source: source,
		notify: func(search.Notification) {},
		state:  State{Pager: calendar.NewPager(0)},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the current state.
func (c *Coordinator) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// View projects the current state onto the calendar page.
func (c *Coordinator) View() calendar.View {
	st := c.Snapshot()
	currency := models.DefaultCurrency
	if st.Query != nil {
		currency = st.Query.CurrencyOrDefault()
	}
	return calendar.Build(st.Days, st.Loading, st.Pager, currency)
}

// Dispatch applies ev and reports whether the state changed. Results of a
// search that is no longer the latest are dropped.
func (c *Coordinator) Dispatch(ev Event) bool {
	c.mu.Lock()
	applied, notice := c.apply(ev)
	c.mu.Unlock()

	if notice != nil {
		c.notify(*notice)
	}
	return applied
}

func (c *Coordinator) apply(ev Event) (bool, *search.Notification) {
	st := &c.state

	switch e := ev.(type) {
	case SearchStarted:
		if e.Seq <= st.latest {
			return false, nil
		}
		q := e.Query
		st.latest = e.Seq
		st.Query = &q
		st.Loading = true
		st.Notice = nil
		return true, nil

	case SearchSucceeded:
		if e.Seq != st.latest {
			return false, nil
		}
		st.Days = e.Days
		st.Loading = false
		st.Pager = calendar.NewPager(len(e.Days))
		return true, nil

	case SearchFailed:
		if e.Seq != st.latest {
			return false, nil
		}
		notice := search.FetchFailedNotification
		st.Loading = false
		st.Notice = &notice
		return true, &notice

	case PageRequested:
		if st.Loading {
			return false, nil
		}
		return st.Pager.SetPage(e.Page), nil
	}

	return false, nil
}

// Search runs one fetch for query and resolves it through Dispatch. It returns
// the fetch error, if any, even when a newer search made the result stale.
func (c *Coordinator) Search(ctx context.Context, query models.Query) error {
	const op = "coordinator.Search"

	seq := c.seq.Add(1)
	logger := c.log.With(
		zap.String("op", op),
		zap.Uint64("seq", seq),
		zap.String("origin_iata", string(query.Origin)),
		zap.String("destination_iata", string(query.Destination)),
		zap.String("from_date", query.FromDate()),
	)

	if !c.Dispatch(SearchStarted{Seq: seq, Query: query}) {
		logger.Debug("search superseded before start")
	}

	days, err := c.source.FetchPrices(ctx, query)
	if err != nil {
		if !c.Dispatch(SearchFailed{Seq: seq, Err: err}) {
			logger.Debug("stale search failure dropped", zap.Error(err))
		} else {
			logger.Warn("price fetch failed", zap.Error(err))
		}
		return err
	}

	if !c.Dispatch(SearchSucceeded{Seq: seq, Days: days}) {
		logger.Debug("stale search result dropped", zap.Int("days", len(days)))
		return nil
	}
	logger.Info("price calendar loaded", zap.Int("days", len(days)))
	return nil
}

func (c *Coordinator) GoToPage(page int) bool {
	return c.Dispatch(PageRequested{Page: page})
}

func (c *Coordinator) NextPage() bool {
	return c.GoToPage(c.Snapshot().Pager.Page() + 1)
}

func (c *Coordinator) PrevPage() bool {
	return c.GoToPage(c.Snapshot().Pager.Page() - 1)
}
