package response

import "cinema-seating/pkg/utils"

type PaginatedResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// Paginate cuts one page out of an in-memory list.
func Paginate[T any](all []T, page, perPage int) *PaginatedResponse[T] {
	if perPage < 1 {
		perPage = 10
	}
	if page < 1 {
		page = 1
	}

	total := len(all)
	start := min(utils.CalculateOffset(page, perPage), total)
	end := min(start+perPage, total)

	data := make([]T, end-start)
	copy(data, all[start:end])

	return &PaginatedResponse[T]{
		Data: data,
		Pagination: PaginationMeta{
			Total:      int64(total),
			Page:       page,
			PerPage:    perPage,
			TotalPages: utils.CalculateTotalPages(int64(total), perPage),
		},
	}
}
