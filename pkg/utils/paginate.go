package utils

// PageMeta describes one page of a listing.
type PageMeta struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Paginate slices items into the requested page. Out-of-range page numbers
// clamp to the nearest valid page instead of erroring, so page 0 becomes 1
// and anything past the end returns the last page. An empty input yields a
// single empty page.
func Paginate[T any](items []T, pageSize, page int) ([]T, PageMeta) {
	if pageSize < 1 {
		pageSize = 1
	}

	totalItems := len(items)
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	meta := PageMeta{
		Page:        page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
	return items[start:end], meta
}
