package utils

import "tripwise/internal/domain"

// DefaultPageSize matches the card grid of the list pages.
const DefaultPageSize = 6

// Paginate returns the requested page of items. page is 1-based and clamped
// to [1, TotalPages]; a non-positive size falls back to DefaultPageSize.
func Paginate[T any](items []T, page, size int) domain.Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return domain.Page[T]{
		Items: out,
		Pagination: domain.Pagination{
			Page:       page,
			PageSize:   size,
			TotalItems: total,
			TotalPages: pages,
		},
	}
}

// Filter keeps the items for which keep returns true.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
