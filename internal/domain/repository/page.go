// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

// SortOrder is one ordering directive of a page request.
type SortOrder struct {
	Property   string // Wire-level property name, e.g. "apptTime".
	Descending bool
}

// Pageable describes the slice of a result set a caller wants.
type Pageable struct {
	Page int // 0-based page index.
	Size int // Page size, always > 0 by the time it reaches a repository.
	Sort []SortOrder
}

// Offset returns the row offset of the requested page.
func (p Pageable) Offset() int {
	return p.Page * p.Size
}

// Page is one slice of a filtered result set together with the total number
// of rows matching the filter.
type Page[T any] struct {
	Content       []T
	TotalElements int64
	Number        int
	Size          int
}

// TotalPages returns how many pages the full result set spans.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}

	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

// HasNext reports whether a page after this one exists.
func (p Page[T]) HasNext() bool {
	return p.Number+1 < p.TotalPages()
}

// HasPrevious reports whether a page before this one exists.
func (p Page[T]) HasPrevious() bool {
	return p.Number > 0
}

// MapPage converts a page's content while preserving the paging metadata.
func MapPage[A, B any](p Page[A], f func(A) B) Page[B] {
	out := Page[B]{
		Content:       make([]B, 0, len(p.Content)),
		TotalElements: p.TotalElements,
		Number:        p.Number,
		Size:          p.Size,
	}
	for _, item := range p.Content {
		out.Content = append(out.Content, f(item))
	}

	return out
}
