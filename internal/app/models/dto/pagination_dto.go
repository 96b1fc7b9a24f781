package dto

// PaginationInfo describes the page window of a list response
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}

// ListResponse is the generic paginated list envelope. Count is the
// number of items on this page, TotalItems the size of the full result
// set.
type ListResponse struct {
	Items interface{} `json:"items"`
	Count int         `json:"count"`
	PaginationInfo
}

// NewListResponse builds a list envelope from a page of items
func NewListResponse(items interface{}, count int, pagination PaginationInfo) *ListResponse {
	return &ListResponse{
		Items:          items,
		Count:          count,
		PaginationInfo: pagination,
	}
}
