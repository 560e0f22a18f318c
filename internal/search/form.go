package search

import (
	"strings"
	"time"

	derr "github.com/abrshewube/Google-Flights-Clone/internal/domain/errors"
	"github.com/abrshewube/Google-Flights-Clone/internal/domain/models"
)

type State uint8

const (
	StateIncomplete State = iota
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "incomplete"
}

type SearchFunc func(models.Query)

type NotifyFunc func(Notification)

type Form struct {
	registry    CodeValidator
	onSearch    SearchFunc
	notify      NotifyFunc
	now         func() time.Time
	origin      string
	destination string
	date        *time.Time
}

type Option func(*Form)

// WithClock overrides the clock used to refuse past departure dates.
func WithClock(now func() time.Time) Option {
	return func(f *Form) {
		f.now = now
	}
}

func NewForm(registry CodeValidator, onSearch SearchFunc, notify NotifyFunc, opts ...Option) *Form {
	f := &Form{
		registry: registry,
		onSearch: onSearch,
		notify:   notify,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.onSearch == nil {
		f.onSearch = func(models.Query) {}
	}
	if f.notify == nil {
		f.notify = func(Notification) {}
	}
	return f
}

func (f *Form) SetOrigin(code string) {
	f.origin = strings.TrimSpace(code)
}

func (f *Form) SetDestination(code string) {
	f.destination = strings.TrimSpace(code)
}

// SetDate accepts today or any later day. Earlier days are refused and the
// field keeps its previous value.
func (f *Form) SetDate(date time.Time) bool {
	now := f.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		f.notify(NotificationFor(derr.ErrPastDate))
		return false
	}
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	f.date = &d
	return true
}

// SetDateString parses YYYY-MM-DD and delegates to SetDate.
func (f *Form) SetDateString(value string) bool {
	d, err := time.Parse(models.DateLayout, strings.TrimSpace(value))
	if err != nil {
		f.notify(NotificationFor(derr.ErrInvalidDate))
		return false
	}
	return f.SetDate(d)
}

func (f *Form) ClearDate() {
	f.date = nil
}

func (f *Form) Origin() string      { return f.origin }
func (f *Form) Destination() string { return f.destination }

func (f *Form) Date() (time.Time, bool) {
	if f.date == nil {
		return time.Time{}, false
	}
	return *f.date, true
}

func (f *Form) State() State {
	if f.origin != "" && f.destination != "" && f.date != nil {
		return StateReady
	}
	return StateIncomplete
}

// Submit validates the current fields. A valid query is handed to the search
// callback, any failure becomes a notification.
func (f *Form) Submit() bool {
	query, err := Validate(f.registry, f.origin, f.destination, f.date)
	if err != nil {
		f.notify(NotificationFor(err))
		return false
	}
	f.onSearch(query)
	return true
}
