package store

// Pagination defaults and limits.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageParams is a page-number pagination request.
type PageParams struct {
	Page  int
	Limit int
}

// Normalize clamps the params into their valid ranges. Zero values take
// the defaults so callers can pass params straight from the query string.
func (p *PageParams) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset returns the number of items to skip for this page.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination describes one page of a listing.
type Pagination struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Pages       int  `json:"pages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPagination computes the page metadata for total items under params.
// Pages is always ceil(total/limit); an empty result set has zero pages.
func NewPagination(params PageParams, total int) Pagination {
	pages := (total + params.Limit - 1) / params.Limit
	return Pagination{
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		Pages:       pages,
		HasNextPage: params.Page < pages,
		HasPrevPage: params.Page > 1,
	}
}

// Page slices items down to the requested page. Pages past the end of
// the data return an empty slice, not an error.
func Page[T any](items []T, params PageParams) ([]T, Pagination) {
	meta := NewPagination(params, len(items))

	start := params.Offset()
	if start >= len(items) {
		return []T{}, meta
	}
	end := start + params.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], meta
}
