package calendar

const PageSize = 21

type Pager struct {
	page  int
	size  int
	count int
}

func NewPager(count int) Pager {
	return NewPagerWithSize(count, PageSize)
}

func NewPagerWithSize(count, size int) Pager {
	if size <= 0 {
		size = PageSize
	}
	if count < 0 {
		count = 0
	}
	return Pager{page: 1, size: size, count: count}
}

func (p Pager) Page() int     { return p.page }
func (p Pager) PageSize() int { return p.size }
func (p Pager) Count() int    { return p.count }

func (p Pager) TotalPages() int {
	return (p.count + p.size - 1) / p.size
}

// SetPage moves to page when it lies in [1, TotalPages]. Other requests are
// ignored and reported as false.
func (p *Pager) SetPage(page int) bool {
	if page <= 0 || page > p.TotalPages() {
		return false
	}
	p.page = page
	return true
}

func (p *Pager) Next() bool { return p.SetPage(p.page + 1) }
func (p *Pager) Prev() bool { return p.SetPage(p.page - 1) }

func (p Pager) HasPrev() bool { return p.page > 1 }
func (p Pager) HasNext() bool { return p.page < p.TotalPages() }

// Bounds returns the half-open index range of the current page.
func (p Pager) Bounds() (int, int) {
	start := (p.page - 1) * p.size
	if start > p.count {
		start = p.count
	}
	end := start + p.size
	if end > p.count {
		end = p.count
	}
	return start, end
}

type StripItem struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Current  bool `json:"current,omitempty"`
}

// Strip builds the condensed page-number strip: first page, gap, up to three
// pages starting just before current, gap, last page.
func Strip(current, total int) []StripItem {
	if total <= 0 {
		return nil
	}

	items := make([]StripItem, 0, 7)
	if current > 2 {
		items = append(items, StripItem{Page: 1})
	}
	if current > 3 {
		items = append(items, StripItem{Ellipsis: true})
	}

	start := current - 1
	if start < 1 {
		start = 1
	}
	window := 3
	if total < window {
		window = total
	}
	for page := start; page < start+window && page <= total; page++ {
		items = append(items, StripItem{Page: page, Current: page == current})
	}

	if current < total-2 {
		items = append(items, StripItem{Ellipsis: true})
	}
	if current < total-1 {
		items = append(items, StripItem{Page: total})
	}
	return items
}
