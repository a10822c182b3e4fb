package ports

// PageInfo describes where a page sits in a listing.
type PageInfo struct {
	Total       int64
	Page        int
	Limit       int
	TotalPages  int
	HasNextPage bool
	HasPrevPage bool
}

// NewPageInfo derives the page count and neighbours. limit must be positive.
func NewPageInfo(total int64, page, limit int) PageInfo {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return PageInfo{
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
