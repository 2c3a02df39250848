package paging

import (
	"net/http"
	"strconv"
)

// DefaultPageSize is the number of rows the console shows per page.
const DefaultPageSize = 5

// MaxPageSize caps the size a client may ask for.
const MaxPageSize = 100

// Page is one window of a filtered result set.
type Page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Number int `json:"page"`
	Size   int `json:"size"`
}

// Pages returns how many pages the full result set spans.
func (p Page[T]) Pages() int {
	return pageCount(p.Total, p.Size)
}

func pageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	n := total / size
	if total%size != 0 {
		n++
	}
	return n
}

// Paginate returns the 1-based page of items. A page past the end is empty,
// never an error. The returned slice aliases items.
func Paginate[T any](items []T, number, size int) Page[T] {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	p := Page[T]{Items: []T{}, Total: len(items), Number: number, Size: size}

	// Compare page numbers first: (number-1)*size overflows for huge pages.
	if number-1 >= pageCount(len(items), size) {
		return p
	}
	start := (number - 1) * size
	end := len(items)
	if size < end-start {
		end = start + size
	}
	p.Items = items[start:end]
	return p
}

// FromQuery reads page and size from a request query, falling back to page 1
// and the given default size on anything unparsable. size is capped at
// MaxPageSize.
func FromQuery(r *http.Request, defSize int) (number, size int) {
	number = intParam(r, "page", 1)
	size = intParam(r, "size", defSize)
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = defSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return number, size
}

func intParam(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
