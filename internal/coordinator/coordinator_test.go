package coordinator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/abrshewube/Google-Flights-Clone/internal/airports"
	"github.com/abrshewube/Google-Flights-Clone/internal/calendar"
	derr "github.com/abrshewube/Google-Flights-Clone/internal/domain/errors"
	"github.com/abrshewube/Google-Flights-Clone/internal/domain/models"
	skyclient "github.com/abrshewube/Google-Flights-Clone/internal/infrastructures/skyscrapper/http/client"
	"github.com/abrshewube/Google-Flights-Clone/internal/search"
)

type fakeSource struct {
	mu    sync.Mutex
	calls int
	fn    func(call int, query models.Query) ([]models.PriceDay, error)
}

func (f *fakeSource) FetchPrices(_ context.Context, query models.Query) ([]models.PriceDay, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	f.mu.Unlock()
	return f.fn(call, query)
}

func (f *fakeSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func makeDays(n int) []models.PriceDay {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out := make([]models.PriceDay, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.PriceDay{Day: start.AddDate(0, 0, i), Price: float64(100 + i)})
	}
	return out
}

func jfkLax() models.Query {
	return models.Query{
		Origin:      "JFK",
		Destination: "LAX",
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Currency:    models.DefaultCurrency,
	}
}

func TestSearch_SuccessResetsPage(t *testing.T) {
	src := &fakeSource{fn: func(int, models.Query) ([]models.PriceDay, error) { return makeDays(45), nil }}
	c := New(nil, src)

	if err := c.Search(context.Background(), jfkLax()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.GoToPage(3) {
		t.Fatalf("expected page 3 to be accepted")
	}

	if err := c.Search(context.Background(), jfkLax()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := c.Snapshot()
	if st.Loading {
		t.Fatalf("loading must be cleared")
	}
	if st.Pager.Page() != 1 {
		t.Fatalf("expected page reset to 1, got %d", st.Pager.Page())
	}
	if st.Query == nil || st.Query.Origin != "JFK" {
		t.Fatalf("unexpected query: %+v", st.Query)
	}
	if src.Calls() != 2 {
		t.Fatalf("expected 2 fetches, got %d", src.Calls())
	}
}

func TestSearch_FailureKeepsPriorResults(t *testing.T) {
	src := &fakeSource{fn: func(call int, _ models.Query) ([]models.PriceDay, error) {
		if call == 1 {
			return makeDays(5), nil
		}
		return nil, derr.ErrFetchFailed
	}}
	var notices []search.Notification
	c := New(nil, src, WithNotifier(func(n search.Notification) { notices = append(notices, n) }))

	_ = c.Search(context.Background(), jfkLax())
	err := c.Search(context.Background(), jfkLax())
	if !errors.Is(err, derr.ErrFetchFailed) {
		t.Fatalf("expected fetch failure, got %v", err)
	}

	st := c.Snapshot()
	if st.Loading {
		t.Fatalf("loading must be cleared on failure")
	}
	if len(st.Days) != 5 {
		t.Fatalf("expected prior 5 days to stay, got %d", len(st.Days))
	}
	if len(notices) != 1 || notices[0] != search.FetchFailedNotification {
		t.Fatalf("unexpected notices: %+v", notices)
	}
	if st.Notice == nil || *st.Notice != search.FetchFailedNotification {
		t.Fatalf("expected failure notice in state, got %+v", st.Notice)
	}
}

func TestSearch_LatestWins(t *testing.T) {
	release := make(chan struct{})
	src := &fakeSource{fn: func(call int, _ models.Query) ([]models.PriceDay, error) {
		if call == 1 {
			<-release
			return makeDays(3), nil
		}
		return makeDays(30), nil
	}}
	c := New(nil, src)

	firstDone := make(chan struct{})
	go func() {
		_ = c.Search(context.Background(), jfkLax())
		close(firstDone)
	}()

	for src.Calls() < 1 {
		time.Sleep(time.Millisecond)
	}
	if err := c.Search(context.Background(), jfkLax()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	close(release)
	<-firstDone

	st := c.Snapshot()
	if len(st.Days) != 30 {
		t.Fatalf("expected latest search result (30 days), got %d", len(st.Days))
	}
	if st.Loading {
		t.Fatalf("loading must be cleared")
	}
}

func TestDispatch_StaleAndOutOfRange(t *testing.T) {
	c := New(nil, nil)

	if !c.Dispatch(SearchStarted{Seq: 2, Query: jfkLax()}) {
		t.Fatalf("expected start to apply")
	}
	if c.Dispatch(SearchStarted{Seq: 1, Query: jfkLax()}) {
		t.Fatalf("older start must be refused")
	}
	if c.Dispatch(PageRequested{Page: 1}) {
		t.Fatalf("paging while loading must be ignored")
	}
	if c.Dispatch(SearchSucceeded{Seq: 1, Days: makeDays(3)}) {
		t.Fatalf("stale result must be dropped")
	}
	if !c.Dispatch(SearchSucceeded{Seq: 2, Days: makeDays(45)}) {
		t.Fatalf("latest result must apply")
	}

	for _, page := range []int{0, 4} {
		if c.GoToPage(page) {
			t.Fatalf("page %d must be ignored", page)
		}
	}
	if got := c.Snapshot().Pager.Page(); got != 1 {
		t.Fatalf("expected page 1, got %d", got)
	}
}

func TestView_LoadingAndEmpty(t *testing.T) {
	c := New(nil, nil)
	if got := c.View().Status; got != calendar.StatusEmpty {
		t.Fatalf("expected empty view, got %s", got)
	}

	c.Dispatch(SearchStarted{Seq: 1, Query: jfkLax()})
	if got := c.View().Status; got != calendar.StatusLoading {
		t.Fatalf("expected loading view, got %s", got)
	}
}

func TestEndToEnd_ThirtyDayCalendar(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		type day struct {
			Day   string  `json:"day"`
			Group string  `json:"group"`
			Price float64 `json:"price"`
		}
		days := make([]day, 0, 30)
		for _, d := range makeDays(30) {
			days = append(days, day{Day: d.DayString(), Group: "low", Price: d.Price})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": true,
			"data":   map[string]any{"flights": map[string]any{"days": days}},
		})
	}))
	defer srv.Close()

	c := New(nil, skyclient.NewClient(srv.URL, "secret", "", time.Second))
	form := search.NewForm(airports.Default(), func(q models.Query) {
		if err := c.Search(context.Background(), q); err != nil {
			t.Errorf("search failed: %v", err)
		}
	}, nil, search.WithClock(func() time.Time { return time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC) }))

	form.SetOrigin("jfk")
	form.SetDestination("lax")
	if !form.SetDateString("2025-06-01") {
		t.Fatalf("date refused")
	}
	if !form.Submit() {
		t.Fatalf("submit rejected")
	}

	v := c.View()
	if len(v.Cells) != 21 || !v.HasNext || v.HasPrev {
		t.Fatalf("unexpected first page: cells=%d next=%v prev=%v", len(v.Cells), v.HasNext, v.HasPrev)
	}
	if !c.NextPage() {
		t.Fatalf("next rejected")
	}
	v = c.View()
	if len(v.Cells) != 9 || v.HasNext || !v.HasPrev {
		t.Fatalf("unexpected second page: cells=%d next=%v prev=%v", len(v.Cells), v.HasNext, v.HasPrev)
	}
	if requests != 1 {
		t.Fatalf("expected a single upstream request, got %d", requests)
	}
}

func TestEndToEnd_SameAirportNeverFetches(t *testing.T) {
	src := &fakeSource{fn: func(int, models.Query) ([]models.PriceDay, error) { return makeDays(1), nil }}
	c := New(nil, src)

	var notices []search.Notification
	form := search.NewForm(airports.Default(), func(q models.Query) {
		_ = c.Search(context.Background(), q)
	}, func(n search.Notification) { notices = append(notices, n) },
		search.WithClock(func() time.Time { return time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC) }))

	form.SetOrigin("JFK")
	form.SetDestination("jfk")
	form.SetDateString("2025-06-01")
	if form.Submit() {
		t.Fatalf("expected rejection")
	}
	if src.Calls() != 0 {
		t.Fatalf("expected no fetch, got %d", src.Calls())
	}
	if len(notices) != 1 || notices[0].Title != "Invalid Route" {
		t.Fatalf("unexpected notices: %+v", notices)
	}
}
