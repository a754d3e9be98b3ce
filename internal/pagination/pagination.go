// Package pagination computes page windows over a sorted, filtered collection
// and derives the total page count.
package pagination

import "errors"

var (
	ErrInvalidPageSize  = errors.New("pagination: page size must be greater than zero")
	ErrInvalidPageIndex = errors.New("pagination: page index must not be negative")
)

// Window is the slice of results corresponding to one page.
type Window struct {
	Offset int
	Limit  int
}

// NewWindow validates the caller's page parameters and returns the window they
// address. The downstream offset and ceiling arithmetic is undefined for
// non-positive sizes and negative pages, so both are rejected here.
func NewWindow(page, pageSize int) (Window, error) {
	if pageSize <= 0 {
		return Window{}, ErrInvalidPageSize
	}
	if page < 0 {
		return Window{}, ErrInvalidPageIndex
	}
	return Window{Offset: page * pageSize, Limit: pageSize}, nil
}

// TotalPages returns ceil(total/pageSize); zero matches mean zero pages.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Slice applies a window to an in-memory collection. A window past the end of
// the collection yields an empty page, not an error.
func Slice[T any](items []T, w Window) []T {
	if w.Offset >= len(items) {
		return []T{}
	}
	end := w.Offset + w.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[w.Offset:end]
}

// Sort is the injectable sort strategy for a paginated listing. Repositories
// whitelist the fields they can order by and fall back to DefaultSort for
// anything else.
type Sort struct {
	Field string
	Desc  bool
}

// DefaultSort orders by ascending id.
func DefaultSort() Sort { return Sort{Field: "id"} }
