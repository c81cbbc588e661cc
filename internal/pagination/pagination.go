// Package pagination computes deterministic page windows over ordered
// sequences.
package pagination

// CommentsPerPage is the fixed page size for the comment moderation listing.
const CommentsPerPage = 10

// Page is one window of a paginated listing.
type Page[T any] struct {
	Items       []T `json:"items"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// Window resolves a requested page against a total count. Malformed pages
// (zero or negative) normalize to 1 rather than erroring; a page beyond
// the end yields limit 0 so the caller returns an empty slice.
func Window(total int64, page, perPage int) (offset, limit, currentPage, totalPages int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	totalPages = int((total + int64(perPage) - 1) / int64(perPage))

	offset = (page - 1) * perPage
	limit = perPage
	if int64(offset) >= total {
		limit = 0
	}
	return offset, limit, page, totalPages
}
