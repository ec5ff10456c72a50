package pagination

// PageInfo describes a pagination position. It is the payload handed to
// change callbacks and the metadata emitted by structured output.
type PageInfo struct {
	CurrentPage  int `json:"current_page"  yaml:"current_page"`
	TotalPages   int `json:"total_pages"   yaml:"total_pages"`
	PageLimit    int `json:"page_limit"    yaml:"page_limit"`
	TotalRecords int `json:"total_records" yaml:"total_records"`
}

// HasPrevious reports whether a page exists before the current one.
func (i PageInfo) HasPrevious() bool {
	return i.CurrentPage > 1
}

// HasNext reports whether a page exists after the current one.
func (i PageInfo) HasNext() bool {
	return i.CurrentPage < i.TotalPages
}

// TotalPages calculates the number of pages needed for totalRecords records.
// Returns 0 when there are no records or pageLimit is not positive.
func TotalPages(totalRecords, pageLimit int) int {
	if totalRecords <= 0 || pageLimit <= 0 {
		return 0
	}
	pages := totalRecords / pageLimit
	if totalRecords%pageLimit > 0 {
		pages++
	}
	return pages
}

// Bounds returns the half-open record range [start, end) shown on page.
// Pages beyond the last one are capped to the last page.
//
//nolint:nonamedreturns // Named returns document the range ends.
func Bounds(page, pageLimit, totalRecords int) (start, end int) {
	totalPages := TotalPages(totalRecords, pageLimit)
	if totalPages == 0 {
		return 0, 0
	}
	page = ClampPage(page, totalPages)
	start = (page - 1) * pageLimit
	end = min(start+pageLimit, totalRecords)
	return start, end
}

// PageSlice returns the records shown on page. The returned slice shares
// storage with records.
func PageSlice[T any](records []T, page, pageLimit int) []T {
	start, end := Bounds(page, pageLimit, len(records))
	return records[start:end]
}
