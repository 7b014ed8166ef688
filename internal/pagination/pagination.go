// Package pagination computes page ranges and page slices for ordered
// sequences. Page numbers are 1-based; page 0 is the "not found" sentinel.
package pagination

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NotFound is the page number returned for a requested page that does not
// exist. Callers answer it with a 404.
const NotFound = 0

// Page is one page of a paginated sequence.
type Page[T any] struct {
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	Entries     []T `json:"entries"`
}

// Found reports whether the requested page exists.
func (p Page[T]) Found() bool { return p.CurrentPage != NotFound }

// PageNumbers returns 1..ceil(total/size). size must be positive; page sizes
// come from validated configuration so a non-positive value is a programming
// error.
func PageNumbers(total, size int) []int {
	mustPositive(size)
	if total <= 0 {
		return []int{}
	}

	count := (total + size - 1) / size
	pages := make([]int, count)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// TotalPages is len(PageNumbers(total, size)) without the allocation.
func TotalPages(total, size int) int {
	mustPositive(size)
	if total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Paginate returns the page of items designated by requested.
//
// When first is set the first size items are returned whatever requested
// says. Otherwise requested must be an integral number within
// 1..TotalPages; anything else yields CurrentPage == NotFound and no
// entries.
func Paginate[T any](items []T, requested string, size int, first bool) Page[T] {
	total := TotalPages(len(items), size)

	current := 1
	if !first {
		current = ParsePage(requested, total)
	}

	out := Page[T]{
		TotalPages:  total,
		CurrentPage: current,
		Entries:     []T{},
	}
	if current == NotFound {
		return out
	}

	start := (current - 1) * size
	end := min(current*size, len(items))
	if start < end {
		out.Entries = append(out.Entries, items[start:end]...)
	}
	return out
}

// ParsePage validates a page route segment against the number of pages.
// It accepts any integral number ("2", " 2 ", "2.0") and returns NotFound for
// everything else.
func ParsePage(requested string, total int) int {
	s := strings.TrimSpace(requested)
	if s == "" {
		return NotFound
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return NotFound
	}
	if f < 1 || f > float64(total) {
		return NotFound
	}
	return int(f)
}

func mustPositive(size int) {
	if size <= 0 {
		panic(fmt.Sprintf("pagination: page size must be positive, got %d", size))
	}
}
