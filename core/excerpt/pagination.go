// ABOUTME: Pagination utilities for item excerpts
// ABOUTME: Pages are one-based, out-of-range pages are empty

package excerpt

import "textkit/core/domain"

// DefaultItemsPerPage is used when perPage is not positive
const DefaultItemsPerPage = 10

// PaginateItems returns one page of item excerpts
func PaginateItems(items []domain.ItemExcerpt, page, perPage int) []domain.ItemExcerpt {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultItemsPerPage
	}

	start := (page - 1) * perPage
	if start >= len(items) {
		return []domain.ItemExcerpt{}
	}

	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
