package data

import (
	"strings"

	"github.com/minato369/bookstack/internal/validator"
)

// PageSize is the fixed number of records returned per page.
const PageSize = 10

// Filters holds the paging and sort criteria for list queries. Sorting is
// accepted but not currently applied to any query; see SortColumn.
type Filters struct {
	Page         int
	Sort         string
	Order        string
	SortSafeList []string
}

// Limit returns the fixed page size.
func (f Filters) Limit() int {
	return PageSize
}

// Offset returns the number of records to skip for the requested page. Pages
// below 1 (including the zero value from unparseable input) are clamped to 1,
// so the offset is always non-negative.
func (f Filters) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}

// SortColumn checks that the client-provided Sort field is present in the
// safelist and returns it. No query interpolates ordering yet, but any column
// name that ever reaches query text must pass through this check first.
func (f Filters) SortColumn() string {
	for _, safeValue := range f.SortSafeList {
		if f.Sort == safeValue {
			return f.Sort
		}
	}
	panic("unsafe sort parameter: " + f.Sort)
}

// SortDirection normalizes the Order field to ASC or DESC. Anything other
// than a case-insensitive "desc" falls back to ASC.
func (f Filters) SortDirection() string {
	if strings.EqualFold(f.Order, "desc") {
		return "DESC"
	}
	return "ASC"
}

// ValidateFilters checks the client-provided sort field against the safelist.
// Paging needs no validation: out-of-range pages are clamped by Offset.
func ValidateFilters(v *validator.Validator, f Filters) {
	if f.Sort != "" {
		v.Check(validator.PermittedValue(f.Sort, f.SortSafeList...), "sort", "invalid sort value")
	}
}
