package dto

// PageQuery - параметры постраничного запроса, Page начинается с нуля
type PageQuery struct {
	Page int `validate:"min=0"`
	Size int `validate:"min=1,max=100"`
}

// PageResponse - страница результатов
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// NewPageResponse собирает страницу и считает число страниц
func NewPageResponse[T any](content []T, query PageQuery, total int64) PageResponse[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if query.Size > 0 {
		pages = int((total + int64(query.Size) - 1) / int64(query.Size))
	}
	return PageResponse[T]{
		Content:       content,
		Page:          query.Page,
		Size:          query.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
