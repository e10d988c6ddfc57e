package models

import (
	"strconv"
	"strings"
)

// SortField names a sortable gemstone attribute.
type SortField string

const (
	SortByName      SortField = "name"
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
	SortByWeight    SortField = "weight"
	SortByValue     SortField = "value"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Filter is the fixed-shape filter/sort descriptor for list queries. Zero
// values mean "not filtered"; fields are never absent. DateFrom/DateTo use
// the YYYY-MM-DD form.
type Filter struct {
	Search    string    `json:"search,omitempty"`
	Category  string    `json:"category,omitempty"`
	DateFrom  string    `json:"dateFrom,omitempty"`
	DateTo    string    `json:"dateTo,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	SortBy    SortField `json:"sortBy,omitempty"`
	SortOrder SortOrder `json:"sortOrder,omitempty"`
}

// Normalize returns a copy of f with the tag set in canonical form.
func (f Filter) Normalize() Filter {
	f.Tags = NormalizeTags(f.Tags)
	return f
}

// Query is a full list query: pagination plus filter criteria.
type Query struct {
	Page     int
	PageSize int
	Filter
}

// Fingerprint derives the canonical cache key for a query. Two semantically
// identical queries always produce the same fingerprint; in particular, tag
// sets are order-independent.
func (q Query) Fingerprint() string {
	var b strings.Builder
	b.WriteString("page=")
	b.WriteString(strconv.Itoa(q.Page))
	b.WriteString("|size=")
	b.WriteString(strconv.Itoa(q.PageSize))
	b.WriteString("|search=")
	b.WriteString(q.Search)
	b.WriteString("|category=")
	b.WriteString(q.Category)
	b.WriteString("|from=")
	b.WriteString(q.DateFrom)
	b.WriteString("|to=")
	b.WriteString(q.DateTo)
	b.WriteString("|tags=")
	b.WriteString(strings.Join(NormalizeTags(q.Tags), ","))
	b.WriteString("|sort=")
	b.WriteString(string(q.SortBy))
	b.WriteString("|order=")
	b.WriteString(string(q.SortOrder))
	return b.String()
}
