package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/abrshewube/Google-Flights-Clone/internal/calendar"
	"github.com/abrshewube/Google-Flights-Clone/internal/coordinator"
	"github.com/abrshewube/Google-Flights-Clone/internal/domain/models"
	"github.com/abrshewube/Google-Flights-Clone/internal/domain/ports"
	"github.com/abrshewube/Google-Flights-Clone/internal/search"
	"go.uber.org/zap"
)

const prompt = "> "

const helpText = `Commands:
  from <code>                 set the origin airport
  to <code>                   set the destination airport
  date <YYYY-MM-DD>           set the departure date
  search [<from> <to> <date>] look up prices for the route
  next | prev | page <n>      move through the calendar
  airports                    list supported airports
  help                        show this help
  quit                        leave
`

// Session is the line-oriented terminal front end of the price calendar.
type Session struct {
	log      *zap.Logger
	in       io.Reader
	out      io.Writer
	registry ports.AirportRegistry
	coord    *coordinator.Coordinator
	renderer *calendar.Renderer
	form     *search.Form

	ctx context.Context
}

type Option func(*sessionOptions)

type sessionOptions struct {
	now   func() time.Time
	plain bool
}

// WithClock overrides the clock used by the date field.
func WithClock(now func() time.Time) Option {
	return func(o *sessionOptions) { o.now = now }
}

// WithPlainOutput renders without colours.
func WithPlainOutput(plain bool) Option {
	return func(o *sessionOptions) { o.plain = plain }
}

func NewSession(log *zap.Logger, in io.Reader, out io.Writer, registry ports.AirportRegistry, source ports.PriceSource, opts ...Option) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	o := sessionOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		log:      log,
		in:       in,
		out:      out,
		registry: registry,
		renderer: calendar.NewRenderer(out, o.plain),
		ctx:      context.Background(),
	}
	s.coord = coordinator.New(log, source, coordinator.WithNotifier(s.notify))
	s.form = search.NewForm(registry, s.search, s.notify, search.WithClock(o.now))
	return s
}

// Run reads commands until quit, end of input or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	s.ctx = ctx
	s.printf("Flight price calendar. Type 'help' for commands.\n")

	scanner := bufio.NewScanner(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printf(prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("console.Run: %w", err)
			}
			return nil
		}
		if !s.handle(strings.Fields(scanner.Text())) {
			return nil
		}
	}
}

// handle runs one command and reports whether the session continues.
func (s *Session) handle(args []string) bool {
	if len(args) == 0 {
		return true
	}

	cmd, rest := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "quit", "exit":
		return false
	case "help":
		s.printf(helpText)
	case "airports":
		s.listAirports()
	case "from":
		if s.requireArg(cmd, rest) {
			s.form.SetOrigin(rest[0])
			s.printForm()
		}
	case "to":
		if s.requireArg(cmd, rest) {
			s.form.SetDestination(rest[0])
			s.printForm()
		}
	case "date":
		if s.requireArg(cmd, rest) && s.form.SetDateString(rest[0]) {
			s.printForm()
		}
	case "search":
		s.runSearch(rest)
	case "next":
		s.coord.NextPage()
		s.render()
	case "prev":
		s.coord.PrevPage()
		s.render()
	case "page":
		if !s.requireArg(cmd, rest) {
			break
		}
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			s.printf("page expects a number\n")
			break
		}
		s.coord.GoToPage(n)
		s.render()
	default:
		s.printf("unknown command %q, type 'help' for the list\n", cmd)
	}
	return true
}

func (s *Session) runSearch(args []string) {
	switch len(args) {
	case 0:
	case 3:
		s.form.SetOrigin(args[0])
		s.form.SetDestination(args[1])
		if !s.form.SetDateString(args[2]) {
			return
		}
	default:
		s.printf("usage: search [<from> <to> <YYYY-MM-DD>]\n")
		return
	}

	if s.form.Submit() {
		s.render()
	}
}

func (s *Session) search(query models.Query) {
	if err := s.coord.Search(s.ctx, query); err != nil {
		s.log.Debug("search finished with error", zap.Error(err))
	}
}

func (s *Session) notify(n search.Notification) {
	s.printf("%s\n", n)
}

func (s *Session) render() {
	if err := s.renderer.Render(s.coord.View()); err != nil {
		s.log.Warn("render failed", zap.Error(err))
	}
}

func (s *Session) listAirports() {
	for _, a := range s.registry.All() {
		s.printf("  %s  %s\n", a.Code, a.Name)
	}
}

func (s *Session) printForm() {
	date := "-"
	if d, ok := s.form.Date(); ok {
		date = d.Format(models.DateLayout)
	}
	s.printf("from %s  to %s  date %s  (%s)\n", orDash(s.form.Origin()), orDash(s.form.Destination()), date, s.form.State())
}

func (s *Session) requireArg(cmd string, args []string) bool {
	if len(args) != 1 {
		s.printf("usage: %s <value>\n", cmd)
		return false
	}
	return true
}

func (s *Session) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		s.log.Warn("write failed", zap.Error(err))
	}
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return strings.ToUpper(v)
}
