package documents

import (
	"net/url"

	"github.com/quillsign/quillsign/pkg/query"
)

// Filters contains optional criteria for filtering document queries.
type Filters struct {
	Title  *string
	Status *string
}

// FiltersFromQuery extracts document filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if t := values.Get("title"); t != "" {
		f.Title = &t
	}

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereContains("Title", f.Title)
	if f.Status != nil {
		b.WhereEquals("Status", *f.Status)
	}
	return b
}
