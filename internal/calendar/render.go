package calendar

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abrshewube/Google-Flights-Clone/internal/domain/models"
	"github.com/fatih/color"
)

const (
	columns       = 7
	cellWidth     = 14
	skeletonCells = 14
	emptyMessage  = "Search for flights to see the price calendar"
	lowestLabel   = "Lowest Price"
	peakLabel     = "Peak Price"
)

type Renderer struct {
	out      io.Writer
	tiers    map[models.Tier]*color.Color
	skeleton *color.Color
	title    *color.Color
	current  *color.Color
	disabled *color.Color
}

// NewRenderer writes to out. With plain set no ANSI sequences are emitted,
// regardless of terminal detection.
func NewRenderer(out io.Writer, plain bool) *Renderer {
	r := &Renderer{
		out: out,
		tiers: map[models.Tier]*color.Color{
			models.TierLow:    color.New(color.BgGreen, color.FgBlack),
			models.TierMedium: color.New(color.BgYellow, color.FgBlack),
			models.TierHigh:   color.New(color.BgRed, color.FgWhite),
		},
		skeleton: color.New(color.BgHiBlack),
		title:    color.New(color.Bold),
		current:  color.New(color.BgBlue, color.FgWhite, color.Bold),
		disabled: color.New(color.Faint),
	}
	if plain {
		for _, c := range r.all() {
			c.DisableColor()
		}
	}
	return r
}

func (r *Renderer) all() []*color.Color {
	out := []*color.Color{r.skeleton, r.title, r.current, r.disabled}
	for _, c := range r.tiers {
		out = append(out, c)
	}
	return out
}

func (r *Renderer) Render(v View) error {
	var b strings.Builder
	switch v.Status {
	case StatusLoading:
		r.renderSkeleton(&b)
	case StatusEmpty:
		b.WriteString(emptyMessage)
		b.WriteString("\n")
	default:
		r.renderGrid(&b, v)
		r.renderNavigation(&b, v)
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Renderer) renderSkeleton(b *strings.Builder) {
	b.WriteString(r.skeleton.Sprint(strings.Repeat(" ", cellWidth*2)))
	b.WriteString("\n")
	placeholder := r.skeleton.Sprint(strings.Repeat(" ", cellWidth))
	for row := 0; row < skeletonCells/columns; row++ {
		for line := 0; line < 3; line++ {
			for col := 0; col < columns; col++ {
				b.WriteString(placeholder)
				b.WriteString(" ")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
}

func (r *Renderer) renderGrid(b *strings.Builder, v View) {
	b.WriteString(r.title.Sprint("Price Calendar"))
	b.WriteString("\n\n")

	for start := 0; start < len(v.Cells); start += columns {
		end := start + columns
		if end > len(v.Cells) {
			end = len(v.Cells)
		}
		row := v.Cells[start:end]
		r.writeRowLine(b, row, func(c Cell) string { return c.Day.Format("Jan 2") })
		r.writeRowLine(b, row, func(c Cell) string { return FormatPrice(c.Price, v.Currency) })
		r.writeRowLine(b, row, Label)
		b.WriteString("\n")
	}
}

func (r *Renderer) writeRowLine(b *strings.Builder, row []Cell, text func(Cell) string) {
	for i, c := range row {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(r.tiers[c.Tier].Sprint(pad(text(c))))
	}
	b.WriteString("\n")
}

func (r *Renderer) renderNavigation(b *strings.Builder, v View) {
	b.WriteString(r.button("Previous", v.HasPrev))
	b.WriteString(fmt.Sprintf("  Page %d of %d  ", v.Page, v.TotalPages))
	b.WriteString(r.button("Next", v.HasNext))
	b.WriteString("\n")

	parts := make([]string, 0, len(v.Strip))
	for _, item := range v.Strip {
		switch {
		case item.Ellipsis:
			parts = append(parts, "...")
		case item.Current:
			parts = append(parts, r.current.Sprint("["+strconv.Itoa(item.Page)+"]"))
		default:
			parts = append(parts, strconv.Itoa(item.Page))
		}
	}
	b.WriteString(strings.Join(parts, " "))
	b.WriteString("\n")
}

func (r *Renderer) button(label string, enabled bool) string {
	if enabled {
		return "[" + label + "]"
	}
	return r.disabled.Sprint("(" + label + ")")
}

// Label is the badge line of a cell; a day can be both lowest and peak.
func Label(c Cell) string {
	switch {
	case c.Lowest && c.Peak:
		return "Lowest & Peak"
	case c.Lowest:
		return lowestLabel
	case c.Peak:
		return peakLabel
	default:
		return ""
	}
}

func FormatPrice(price float64, currency string) string {
	if currency == "" || strings.EqualFold(currency, models.DefaultCurrency) {
		return fmt.Sprintf("$%.2f", price)
	}
	return fmt.Sprintf("%s %.2f", strings.ToUpper(currency), price)
}

func pad(s string) string {
	if len(s) >= cellWidth {
		return s[:cellWidth]
	}
	return " " + s + strings.Repeat(" ", cellWidth-len(s)-1)
}
