// internal/pagination/pagination.go
package pagination

import "math"

// Paginator tracks the current window into a list that is filtered and
// sorted elsewhere. The item offset is always a multiple of the page size.
type Paginator struct {
	perPage int
	offset  int
}

func New(perPage int) *Paginator {
	if perPage < 1 {
		perPage = 1
	}
	return &Paginator{perPage: perPage}
}

func (p *Paginator) PerPage() int { return p.perPage }

// PageCount is ceil(total/perPage), zero for an empty list.
func (p *Paginator) PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(p.perPage)))
}

func (p *Paginator) Current() int {
	return p.offset / p.perPage
}

// SetPage moves to page index within [0, PageCount(total)). Indices outside
// that range are rejected as a no-op so boundary controls can stay disabled
// instead of silently rendering an empty page.
func (p *Paginator) SetPage(page, total int) bool {
	if page < 0 || page >= p.PageCount(total) {
		return false
	}
	p.offset = page * p.perPage
	return true
}

func (p *Paginator) Next(total int) bool {
	return p.SetPage(p.Current()+1, total)
}

func (p *Paginator) Prev(total int) bool {
	return p.SetPage(p.Current()-1, total)
}

// Reset returns to the first page. Called whenever the underlying filtered
// set changes so the user is never stranded past the new end.
func (p *Paginator) Reset() {
	p.offset = 0
}

// Sync guards against an out-of-range offset after the item set changed
// size underneath the paginator.
func (p *Paginator) Sync(total int) {
	if p.offset >= total {
		p.offset = 0
	}
}

// Window reports the [start, end) item range of the current page.
func (p *Paginator) Window(total int) (start, end int) {
	start = p.offset
	if start > total {
		start = total
	}
	end = start + p.perPage
	if end > total {
		end = total
	}
	return start, end
}

// Page slices out one page of items.
func Page[T any](items []T, p *Paginator) []T {
	start, end := p.Window(len(items))
	return items[start:end]
}

// Paginate is the stateless form: one page plus the total page count.
func Paginate[T any](items []T, perPage, pageIndex int) (pageItems []T, pageCount int) {
	p := New(perPage)
	pageCount = p.PageCount(len(items))
	if !p.SetPage(pageIndex, len(items)) {
		return nil, pageCount
	}
	return Page(items, p), pageCount
}
