package models

// Page is one fetched page of list results, fixed-shape: Items is empty
// rather than absent when the page has no results.
type Page struct {
	Items      []Gemstone `json:"items"`
	TotalItems int        `json:"totalItems"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
}

// TotalPages derives the page count: ceil(TotalItems / PageSize).
func (p Page) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.TotalItems + p.PageSize - 1) / p.PageSize
}
