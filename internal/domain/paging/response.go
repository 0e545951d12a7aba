package paging

// PagedResponse wraps one page of elements. Size is the number of elements
// actually returned, not the requested page size; Total counts every row
// matching the query without paging.
type PagedResponse[T any] struct {
	Elements []T   `json:"elements"`
	Page     int   `json:"page"`
	Size     int   `json:"size"`
	Total    int64 `json:"total"`
}

// NewPagedResponse builds the envelope. A nil slice is replaced by an empty
// one so it encodes as [].
func NewPagedResponse[T any](elements []T, page int, total int64) *PagedResponse[T] {
	if elements == nil {
		elements = []T{}
	}
	return &PagedResponse[T]{
		Elements: elements,
		Page:     page,
		Size:     len(elements),
		Total:    total,
	}
}
