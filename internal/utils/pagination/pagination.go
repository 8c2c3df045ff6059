package pagination

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// Page describes a normalized page window for offset-based pagination.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps raw page/pageSize query values to sane bounds:
// page defaults to 1, pageSize defaults to 10 and is capped at 100.
func Normalize(page, pageSize int) Page {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return Page{Number: page, Size: pageSize}
}

// Offset returns the number of rows to skip for this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages returns ceil(total/size) for the page size.
func (p Page) TotalPages(total int64) int64 {
	if total == 0 {
		return 0
	}
	size := int64(p.Size)
	return (total + size - 1) / size
}
