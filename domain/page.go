package domain

const (
	// PageSize is the number of articles on one board page.
	PageSize = 20
	// PageWindow is how many page numbers are shown at a time.
	PageWindow = 10
)

// Page is one page of the board listing together with its navigation window.
type Page struct {
	Articles    []Article
	Keyword     string
	Number      int   // requested page, 1-based
	TotalPages  int   // never less than 1
	TotalCount  int64 // articles matching the keyword
	PageNumbers []int // visible numbers of the current window
	PrevWindow  int   // last page of the previous window, 0 when there is none
	NextWindow  int   // first page of the next window, 0 when there is none
}

// HasPrevWindow reports whether a previous window marker should be shown.
func (p Page) HasPrevWindow() bool { return p.PrevWindow > 0 }

// HasNextWindow reports whether a next window marker should be shown.
func (p Page) HasNextWindow() bool { return p.NextWindow > 0 }

// InRange reports whether Number addresses an existing page.
func (p Page) InRange() bool {
	return p.Number >= 1 && p.Number <= p.TotalPages && p.TotalCount > 0
}

// Offset is the number of rows to skip for the current page.
func (p Page) Offset() int {
	return (p.Number - 1) * PageSize
}

// NewPage computes the pagination window for page number out of total rows.
// A number below 1 is treated as 1; a number past the last page is kept as
// is so the caller renders an empty page.
func NewPage(number int, total int64) Page {
	if number < 1 {
		number = 1
	}
	if total < 0 {
		total = 0
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	if totalPages == 0 {
		totalPages = 1
	}

	// out-of-range pages show the last window
	start := ((min(number, totalPages) - 1) / PageWindow) * PageWindow
	end := min(start+PageWindow, totalPages)

	p := Page{
		Number:     number,
		TotalPages: totalPages,
		TotalCount: total,
	}
	for n := start + 1; n <= end; n++ {
		p.PageNumbers = append(p.PageNumbers, n)
	}
	if start > 0 {
		p.PrevWindow = start
	}
	if start+PageWindow < totalPages {
		p.NextWindow = start + PageWindow + 1
	}
	return p
}
