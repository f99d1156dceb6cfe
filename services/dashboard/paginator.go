package dashboard

import "rmadmin/models"

// DefaultPageSize is the number of bookings shown per page.
const DefaultPageSize = 20

// Paginator slices a snapshot into fixed-size pages. Pages are 1-based and
// the current page is kept across snapshot changes, clamped to the new range.
type Paginator struct {
	size    int
	current int
	pages   int
}

func NewPaginator(size int) *Paginator {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Paginator{size: size, current: 1}
}

// PageCount returns ceil(n/size); zero records means zero pages.
func PageCount(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

func (p *Paginator) Size() int    { return p.size }
func (p *Paginator) Current() int { return p.current }
func (p *Paginator) Pages() int   { return p.pages }

// Resize recomputes the page count for n records and clamps the current page.
func (p *Paginator) Resize(n int) {
	p.pages = PageCount(n, p.size)
	p.current = p.clamp(p.current)
}

func (p *Paginator) clamp(n int) int {
	switch {
	case p.pages == 0, n < 1:
		return 1
	case n > p.pages:
		return p.pages
	}
	return n
}

// GoToPage moves to page n, clamped into range, and returns it. An empty
// snapshot yields an empty page whatever n is.
func (p *Paginator) GoToPage(snap models.Snapshot, n int) models.Page {
	p.pages = PageCount(len(snap), p.size)
	p.current = p.clamp(n)

	page := models.Page{
		Number:       p.current,
		Size:         p.size,
		TotalPages:   p.pages,
		TotalRecords: len(snap),
		Records:      []models.Record{},
	}
	if p.pages == 0 {
		page.Empty = true
		return page
	}

	start := (p.current - 1) * p.size
	end := min(start+p.size, len(snap))
	page.Records = append(page.Records, snap[start:end]...)
	return page
}

// Page re-slices snap at the current page.
func (p *Paginator) Page(snap models.Snapshot) models.Page {
	return p.GoToPage(snap, p.current)
}
